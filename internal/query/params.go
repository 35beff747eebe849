// Package query turns untyped list-request parameters into a validated
// plan and applies that plan to a snapshot of orders. It performs no I/O
// and mutates nothing; the same snapshot and parameters always produce
// the same page.
package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultPage    = 1
	defaultPerPage = 25
	maxPerPage     = 100

	maxTextFilterLen  = 100
	maxShortFilterLen = 30

	minYear = 1990
	maxYear = 2100
)

type SortKey struct {
	Field     string
	Direction string // "asc" | "desc"
}

type Filters struct {
	TransitStatus string
	Transport     string
	Buyer         string
	Responsible   string
	Q             string
	Year          int // 0 means not set
}

// Plan is a fully validated query: pagination, sort keys (with the id
// tie-breaker already appended) and filters.
type Plan struct {
	Page    int
	PerPage int
	Sort    []SortKey
	Filters Filters
}

var sortableFields = map[string]bool{
	"eta":            true,
	"etd":            true,
	"ata":            true,
	"order_date":     true,
	"order_number":   true,
	"buyer":          true,
	"responsible":    true,
	"transport":      true,
	"transit_status": true,
}

func defaultSort() []SortKey {
	return []SortKey{
		{Field: "eta", Direction: "desc"},
		{Field: "etd", Direction: "desc"},
		{Field: "order_date", Direction: "desc"},
	}
}

// tieBreaker guarantees a total order regardless of the requested keys.
var tieBreaker = SortKey{Field: "id", Direction: "desc"}

// ParseParams validates raw request parameters strictly: every violation
// is collected and reported together as a *ValidationError, and nothing
// runs unless the whole plan is valid.
func ParseParams(values url.Values) (Plan, error) {
	var verr ValidationError
	plan := Plan{Page: defaultPage, PerPage: defaultPerPage}

	for key := range values {
		if !recognizedParam(key) {
			verr.add(reportName(key), "unknown parameter")
		}
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			verr.add("page", "must be an integer greater than or equal to 1")
		} else {
			plan.Page = page
		}
	}

	if raw := values.Get("per_page"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil || perPage < 1 || perPage > maxPerPage {
			verr.add("per_page", fmt.Sprintf("must be an integer between 1 and %d", maxPerPage))
		} else {
			plan.PerPage = perPage
		}
	}

	plan.Sort = parseSort(values.Get("sort"), &verr)
	plan.Filters = parseFilters(values, &verr)

	if len(verr.Details) > 0 {
		return Plan{}, &verr
	}
	return plan, nil
}

// ParseParamsLenient reproduces the legacy behaviour: bad input is
// silently dropped or clamped instead of rejected. Kept as a
// compatibility toggle for callers that predate strict validation.
func ParseParamsLenient(values url.Values) Plan {
	plan := Plan{Page: defaultPage, PerPage: defaultPerPage}

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 1 {
		plan.Page = page
	}
	if perPage, err := strconv.Atoi(values.Get("per_page")); err == nil {
		plan.PerPage = min(max(perPage, 1), maxPerPage)
	}

	plan.Sort = parseSort(values.Get("sort"), nil)

	plan.Filters = Filters{
		TransitStatus: values.Get("filter[transit_status]"),
		Transport:     values.Get("filter[transport]"),
		Buyer:         values.Get("filter[buyer]"),
		Responsible:   values.Get("filter[responsible]"),
		Q:             values.Get("filter[q]"),
	}
	if year, err := strconv.Atoi(values.Get("filter[year]")); err == nil {
		plan.Filters.Year = year
	}
	return plan
}

// parseSort parses "field:direction,field:direction". With verr == nil it
// runs leniently, dropping invalid items the way the legacy endpoint did.
func parseSort(raw string, verr *ValidationError) []SortKey {
	var keys []SortKey

	for part := range strings.SplitSeq(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		field, direction := part, "asc"
		if before, after, found := strings.Cut(part, ":"); found {
			field = strings.TrimSpace(before)
			direction = strings.ToLower(strings.TrimSpace(after))
		}

		if !sortableFields[field] {
			if verr != nil {
				verr.add("sort", fmt.Sprintf("unknown sort field %q", field))
			}
			continue
		}
		if direction != "asc" && direction != "desc" {
			if verr != nil {
				verr.add("sort", fmt.Sprintf("direction for %q must be asc or desc", field))
			} else {
				direction = "asc"
			}
		}
		keys = append(keys, SortKey{Field: field, Direction: direction})
	}

	if len(keys) == 0 {
		keys = defaultSort()
	}
	return append(keys, tieBreaker)
}

func parseFilters(values url.Values, verr *ValidationError) Filters {
	f := Filters{
		TransitStatus: values.Get("filter[transit_status]"),
		Transport:     values.Get("filter[transport]"),
		Buyer:         values.Get("filter[buyer]"),
		Responsible:   values.Get("filter[responsible]"),
		Q:             values.Get("filter[q]"),
	}

	checkLen := func(field, value string, limit int) {
		if len(value) > limit {
			verr.add(field, fmt.Sprintf("must be at most %d characters", limit))
		}
	}
	checkLen("transit_status", f.TransitStatus, maxShortFilterLen)
	checkLen("transport", f.Transport, maxShortFilterLen)
	checkLen("buyer", f.Buyer, maxTextFilterLen)
	checkLen("responsible", f.Responsible, maxTextFilterLen)
	checkLen("q", f.Q, maxTextFilterLen)

	if raw := values.Get("filter[year]"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < minYear || year > maxYear {
			verr.add("year", fmt.Sprintf("must be an integer between %d and %d", minYear, maxYear))
		} else {
			f.Year = year
		}
	}
	return f
}

var recognizedFilters = map[string]bool{
	"transit_status": true,
	"transport":      true,
	"buyer":          true,
	"responsible":    true,
	"q":              true,
	"year":           true,
}

func recognizedParam(key string) bool {
	switch key {
	case "page", "per_page", "sort":
		return true
	}
	return recognizedFilters[filterName(key)]
}

// filterName extracts x from "filter[x]"; "" if key is not a filter.
func filterName(key string) string {
	if inner, ok := strings.CutPrefix(key, "filter["); ok {
		if name, ok := strings.CutSuffix(inner, "]"); ok {
			return name
		}
	}
	return ""
}

// reportName is the field name used in validation details: the inner name
// for filter[...] keys, the key itself otherwise.
func reportName(key string) string {
	if name := filterName(key); name != "" {
		return name
	}
	return key
}

// Expression renders the effective sort as "field:dir,field:dir".
func Expression(keys []SortKey) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k.Field+":"+k.Direction)
	}
	return strings.Join(parts, ",")
}
