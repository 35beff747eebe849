package timeline_test

import (
	"testing"
	"time"

	"github.com/romahawk/flowlogix/internal/timeline"
	"github.com/romahawk/flowlogix/pkg/dates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var asOf = time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC) // Monday

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name          string
		etd, eta, ata string
		want          timeline.Result
	}{
		{
			name: "consistent order stays unchanged",
			etd:  "01.07.25", eta: "10.12.25", ata: "",
			want: timeline.Result{ETD: "01.07.25", ETA: "10.12.25", ATA: "", Status: timeline.StatusEnRoute},
		},
		{
			name: "eta derived from min of ata and etd plus 21 days",
			etd:  "15.07.25", eta: "", ata: "20.11.25",
			want: timeline.Result{ETD: "15.07.25", ETA: "05.08.25", ATA: "20.11.25", Status: timeline.StatusArrived},
		},
		{
			name: "etd derived one week before eta",
			etd:  "", eta: "05.06.26", ata: "",
			want: timeline.Result{ETD: "29.05.26", ETA: "05.06.26", ATA: "", Status: timeline.StatusInProcess},
		},
		{
			name: "eta pushed a week past etd when inverted",
			etd:  "10.12.25", eta: "01.12.25", ata: "",
			want: timeline.Result{ETD: "10.12.25", ETA: "17.12.25", ATA: "", Status: timeline.StatusInProcess},
		},
		{
			name: "ata clamped to eta",
			etd:  "01.10.25", eta: "20.12.25", ata: "15.12.25",
			want: timeline.Result{ETD: "01.10.25", ETA: "20.12.25", ATA: "20.12.25", Status: timeline.StatusEnRoute},
		},
		{
			name: "milestone inside current week is en route",
			etd:  "20.11.25", eta: "03.12.25", ata: "",
			want: timeline.Result{ETD: "20.11.25", ETA: "03.12.25", ATA: "", Status: timeline.StatusEnRoute},
		},
		{
			name: "milestone before current week is arrived",
			etd:  "01.10.25", eta: "10.11.25", ata: "12.11.25",
			want: timeline.Result{ETD: "01.10.25", ETA: "10.11.25", ATA: "12.11.25", Status: timeline.StatusArrived},
		},
		{
			name: "future departure is in process",
			etd:  "2026-01-10", eta: "2026-02-01", ata: "",
			want: timeline.Result{ETD: "10.01.26", ETA: "01.02.26", ATA: "", Status: timeline.StatusInProcess},
		},
		{
			name: "everything absent still yields a status",
			etd:  "", eta: "", ata: "",
			want: timeline.Result{Status: timeline.StatusInProcess},
		},
		{
			name: "unparseable input propagates as absent",
			etd:  "soon", eta: "", ata: "",
			want: timeline.Result{Status: timeline.StatusInProcess},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := timeline.Normalize(tc.etd, tc.eta, tc.ata, asOf)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalize_OrderingInvariant(t *testing.T) {
	inputs := [][3]string{
		{"10.12.25", "01.12.25", "05.11.25"},
		{"", "05.06.26", "01.01.26"},
		{"15.07.25", "", "20.11.25"},
		{"2025-03-01", "2025-03-01", "2025-02-01"},
	}

	for _, in := range inputs {
		got := timeline.Normalize(in[0], in[1], in[2], asOf)
		if got.ETD == "" || got.ETA == "" || got.ATA == "" {
			continue
		}
		etd, ok := dates.Parse(got.ETD)
		require.True(t, ok)
		eta, ok := dates.Parse(got.ETA)
		require.True(t, ok)
		ata, ok := dates.Parse(got.ATA)
		require.True(t, ok)

		assert.False(t, eta.Before(etd), "input %v: eta %s before etd %s", in, got.ETA, got.ETD)
		assert.False(t, ata.Before(eta), "input %v: ata %s before eta %s", in, got.ATA, got.ETA)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	first := timeline.Normalize("01.07.25", "10.12.25", "", asOf)
	for range 10 {
		assert.Equal(t, first, timeline.Normalize("01.07.25", "10.12.25", "", asOf))
	}
}
