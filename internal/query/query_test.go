package query_test

import (
	"net/url"
	"testing"

	"github.com/romahawk/flowlogix/internal/entities"
	"github.com/romahawk/flowlogix/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, rawQuery string) query.Plan {
	t.Helper()
	values, err := url.ParseQuery(rawQuery)
	require.NoError(t, err)
	plan, err := query.ParseParams(values)
	require.NoError(t, err)
	return plan
}

func parseErr(t *testing.T, rawQuery string) *query.ValidationError {
	t.Helper()
	values, err := url.ParseQuery(rawQuery)
	require.NoError(t, err)
	_, err = query.ParseParams(values)
	require.Error(t, err)
	var verr *query.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr
}

func fields(verr *query.ValidationError) []string {
	out := make([]string, 0, len(verr.Details))
	for _, d := range verr.Details {
		out = append(out, d.Field)
	}
	return out
}

func TestParseParams_Defaults(t *testing.T) {
	plan := mustParse(t, "")

	assert.Equal(t, 1, plan.Page)
	assert.Equal(t, 25, plan.PerPage)
	assert.Equal(t, "eta:desc,etd:desc,order_date:desc,id:desc", query.Expression(plan.Sort))
}

func TestParseParams_ExplicitSortGetsTieBreaker(t *testing.T) {
	plan := mustParse(t, "sort=eta:desc,buyer")

	assert.Equal(t, []query.SortKey{
		{Field: "eta", Direction: "desc"},
		{Field: "buyer", Direction: "asc"},
		{Field: "id", Direction: "desc"},
	}, plan.Sort)
}

func TestParseParams_CollectsAllViolations(t *testing.T) {
	verr := parseErr(t, "page=zero&per_page=500&sort=color:asc&filter[year]=1850&bogus=1")

	assert.ElementsMatch(t, []string{"page", "per_page", "sort", "year", "bogus"}, fields(verr))
}

func TestParseParams_MisplacedFilterKey(t *testing.T) {
	verr := parseErr(t, "filter[per_page]=500")

	require.Len(t, verr.Details, 1)
	assert.Equal(t, "per_page", verr.Details[0].Field)
	assert.Equal(t, "unknown parameter", verr.Details[0].Issue)
}

func TestParseParams_FilterLengthLimits(t *testing.T) {
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'x'
	}
	verr := parseErr(t, "filter[q]="+string(long))

	require.Len(t, verr.Details, 1)
	assert.Equal(t, "q", verr.Details[0].Field)
}

func TestParseParamsLenient_DropsBadInput(t *testing.T) {
	values, err := url.ParseQuery("page=zero&per_page=500&sort=color:asc,eta:sideways")
	require.NoError(t, err)

	plan := query.ParseParamsLenient(values)

	assert.Equal(t, 1, plan.Page)
	assert.Equal(t, 100, plan.PerPage)
	assert.Equal(t, "eta:asc,id:desc", query.Expression(plan.Sort))
}

func testOrders() []entities.Order {
	return []entities.Order{
		{ID: 1, OrderNumber: "PO-001", ProductName: "Losartan potassium", Buyer: "Acme Clinics GmbH", Responsible: "Anna Kramer", OrderDate: "01.03.24", ETD: "01.11.25", ETA: "10.12.25", TransitStatus: "en route", Transport: "sea"},
		{ID: 2, OrderNumber: "PO-002", ProductName: "Amlodipine besylate", Buyer: "BioCare AG", Responsible: "Elena Nowak", OrderDate: "15.07.25", ETD: "31.12.25", ETA: "12.01.26", TransitStatus: "in process", Transport: "sea"},
		{ID: 3, OrderNumber: "PO-003", ProductName: "Hydrochlorothiazide", Buyer: "Nova Pharma BV", Responsible: "Anna Kramer", OrderDate: "05.06.25", ETD: "19.11.25", ETA: "10.12.25", ATA: "12.12.25", TransitStatus: "arrived", Transport: "air"},
		{ID: 4, OrderNumber: "PO-004", ProductName: "Omeprazole", Buyer: "Acme Clinics GmbH", Responsible: "Ben Schneider", OrderDate: "20.08.25", ETD: "", ETA: "", TransitStatus: "in process", Transport: "truck"},
		{ID: 5, OrderNumber: "PO-005", ProductName: "Cetirizine", Buyer: "HealthPlus Ltd", Responsible: "Carla Rossi", OrderDate: "02.09.25", ETD: "05.10.25", ETA: "01.11.25", ATA: "03.11.25", TransitStatus: "arrived", Transport: "sea"},
	}
}

func numbers(page query.Page) []string {
	out := make([]string, 0, len(page.Orders))
	for _, o := range page.Orders {
		out = append(out, o.OrderNumber)
	}
	return out
}

func TestApply_Pagination(t *testing.T) {
	plan := mustParse(t, "page=2&per_page=2&sort=order_number:asc")

	page := query.Apply(testOrders(), plan)

	assert.Equal(t, []string{"PO-003", "PO-004"}, numbers(page))
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.PerPage)
}

func TestApply_PageBeyondEndIsEmpty(t *testing.T) {
	plan := mustParse(t, "page=99&per_page=25")

	page := query.Apply(testOrders(), plan)

	assert.Empty(t, page.Orders)
	assert.Equal(t, 5, page.Total)
}

func TestApply_MultiKeyStableSort(t *testing.T) {
	plan := mustParse(t, "sort=eta:desc,buyer:asc&per_page=100")

	page := query.Apply(testOrders(), plan)

	// PO-002 has the latest eta; PO-001 and PO-003 share 10.12.25 and fall
	// back to buyer ascending; PO-005 follows; PO-004 has no eta at all and
	// sorts last on a descending date key.
	assert.Equal(t, []string{"PO-002", "PO-001", "PO-003", "PO-005", "PO-004"}, numbers(page))
}

func TestApply_IDTieBreakerGivesTotalOrder(t *testing.T) {
	plan := mustParse(t, "sort=transport:asc&per_page=100")

	first := query.Apply(testOrders(), plan)
	for range 5 {
		assert.Equal(t, numbers(first), numbers(query.Apply(testOrders(), plan)))
	}

	// Orders 1, 2 and 5 all say "sea"; ids must come out descending.
	assert.Equal(t, []string{"PO-003", "PO-005", "PO-002", "PO-001", "PO-004"}, numbers(first))
}

func TestApply_YearMatchesAnyDateField(t *testing.T) {
	for year, want := range map[string][]string{
		"2024": {"PO-001"},
		"2026": {"PO-002"},
	} {
		plan := mustParse(t, "filter[year]="+year+"&sort=order_number:asc")
		assert.Equal(t, want, numbers(query.Apply(testOrders(), plan)), "year %s", year)
	}

	// PO-002 ordered in 2025 with eta in 2026 shows up for both years.
	plan := mustParse(t, "filter[year]=2025&sort=order_number:asc&per_page=100")
	assert.Contains(t, numbers(query.Apply(testOrders(), plan)), "PO-002")
}

func TestApply_FreeTextSearchAcrossFields(t *testing.T) {
	testCases := []struct {
		q    string
		want []string
	}{
		{"po-003", []string{"PO-003"}},
		{"omepra", []string{"PO-004"}},
		{"anna", []string{"PO-001", "PO-003"}},
		{"acme", []string{"PO-001", "PO-004"}},
		{"no such thing", []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.q, func(t *testing.T) {
			plan := mustParse(t, "sort=order_number:asc&filter[q]="+url.QueryEscape(tc.q))
			page := query.Apply(testOrders(), plan)

			assert.Equal(t, tc.want, numbers(page))
			assert.Equal(t, len(tc.want), page.Total)
		})
	}
}

func TestApply_ExactFilters(t *testing.T) {
	plan := mustParse(t, "filter[transit_status]=arrived&filter[transport]=sea")

	page := query.Apply(testOrders(), plan)

	assert.Equal(t, []string{"PO-005"}, numbers(page))
}

func TestApply_PageNeverExceedsPerPage(t *testing.T) {
	plan := mustParse(t, "per_page=3")

	page := query.Apply(testOrders(), plan)

	assert.LessOrEqual(t, len(page.Orders), page.PerPage)
	assert.LessOrEqual(t, len(page.Orders), page.Total)
}
