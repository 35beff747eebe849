// Package timeline enforces the consistency rules between an order's
// milestone dates (ETD, ETA, ATA) and derives its transit status. Every
// write path runs an order through Normalize before persisting it.
package timeline

import (
	"time"

	"github.com/romahawk/flowlogix/pkg/dates"
)

const (
	StatusInProcess = "in process"
	StatusEnRoute   = "en route"
	StatusArrived   = "arrived"
)

// Result holds the normalized milestone dates in storage form. An empty
// string means the date is still unknown.
type Result struct {
	ETD    string
	ETA    string
	ATA    string
	Status string
}

// Normalize applies the timeline rules, in order:
//
//  1. ETA missing but ETD and ATA known: ETA = min(ATA, ETD+21d).
//  2. ETD missing but ETA known: ETD = ETA-7d.
//  3. ETA never at or before ETD: push ETA to ETD+7d.
//  4. ATA never before ETA: clamp ATA to ETA.
//  5. Status from the ISO week (Monday..Sunday) containing asOf.
//
// Absent or unparseable dates simply propagate as absent; every input
// yields some result. The function is pure and deterministic for a given
// asOf.
func Normalize(etd, eta, ata string, asOf time.Time) Result {
	weekStart, weekEnd := isoWeek(asOf)

	etdDate, hasETD := dates.Parse(etd)
	etaDate, hasETA := dates.Parse(eta)
	ataDate, hasATA := dates.Parse(ata)

	if hasETD && !hasETA && hasATA {
		etaDate = minDate(ataDate, etdDate.AddDate(0, 0, 21))
		hasETA = true
	}
	if !hasETD && hasETA {
		etdDate = etaDate.AddDate(0, 0, -7)
		hasETD = true
	}
	if hasETD && hasETA && !etaDate.After(etdDate) {
		etaDate = etdDate.AddDate(0, 0, 7)
	}
	if hasATA && hasETA && ataDate.Before(etaDate) {
		ataDate = etaDate
	}

	milestone, hasMilestone := ataDate, hasATA
	if !hasMilestone {
		milestone, hasMilestone = etaDate, hasETA
	}

	var status string
	switch {
	case hasMilestone && milestone.Before(weekStart):
		status = StatusArrived
	case hasETD && etdDate.After(weekEnd) && hasETA && etaDate.After(weekEnd):
		status = StatusInProcess
	case hasETD && etdDate.Before(weekStart) && hasETA && etaDate.After(weekEnd):
		status = StatusEnRoute
	// The remaining branches overlap; their order is load-bearing.
	case hasMilestone && !milestone.Before(weekStart) && !milestone.After(weekEnd):
		status = StatusEnRoute
	case hasETA && etaDate.After(weekEnd):
		status = StatusInProcess
	case hasETD && etdDate.Before(weekStart):
		status = StatusEnRoute
	default:
		status = StatusInProcess
	}

	return Result{
		ETD:    render(etdDate, hasETD),
		ETA:    render(etaDate, hasETA),
		ATA:    render(ataDate, hasATA),
		Status: status,
	}
}

// isoWeek returns the Monday and Sunday of the ISO week containing t,
// truncated to dates in UTC.
func isoWeek(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	start := day.AddDate(0, 0, -(weekday - 1))
	return start, start.AddDate(0, 0, 6)
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func render(t time.Time, ok bool) string {
	if !ok {
		return ""
	}
	return dates.FormatStorage(t)
}
