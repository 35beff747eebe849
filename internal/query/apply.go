package query

import (
	"sort"
	"strings"

	"github.com/romahawk/flowlogix/internal/entities"
	"github.com/romahawk/flowlogix/pkg/dates"
)

// Page is one page of orders plus the metadata describing how it was
// produced. Total is the post-filter, pre-pagination count.
type Page struct {
	Orders  []entities.Order
	Page    int
	PerPage int
	Total   int
	Sort    string
	Filters Filters
}

// Apply runs a validated plan against a role-scoped snapshot: exact
// filters, then free-text search, then the year filter, then the stable
// multi-key sort, then the pagination slice. The snapshot itself is not
// modified.
func Apply(orders []entities.Order, plan Plan) Page {
	rows := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if matches(o, plan.Filters) {
			rows = append(rows, o)
		}
	}

	if plan.Filters.Year != 0 {
		kept := rows[:0]
		for _, o := range rows {
			if matchesYear(o, plan.Filters.Year) {
				kept = append(kept, o)
			}
		}
		rows = kept
	}

	sortOrders(rows, plan.Sort)

	total := len(rows)
	start := (plan.Page - 1) * plan.PerPage
	end := min(start+plan.PerPage, total)
	if start > total {
		start, end = total, total
	}

	return Page{
		Orders:  rows[start:end],
		Page:    plan.Page,
		PerPage: plan.PerPage,
		Total:   total,
		Sort:    Expression(plan.Sort),
		Filters: plan.Filters,
	}
}

func matches(o entities.Order, f Filters) bool {
	if f.TransitStatus != "" && o.TransitStatus != f.TransitStatus {
		return false
	}
	if f.Transport != "" && o.Transport != f.Transport {
		return false
	}
	if f.Buyer != "" && o.Buyer != f.Buyer {
		return false
	}
	if f.Responsible != "" && o.Responsible != f.Responsible {
		return false
	}
	if f.Q != "" && !matchesText(o, f.Q) {
		return false
	}
	return true
}

// matchesText is a case-insensitive substring match against any of the
// searchable text fields.
func matchesText(o entities.Order, q string) bool {
	needle := strings.ToLower(strings.TrimSpace(q))
	for _, hay := range []string{o.OrderNumber, o.ProductName, o.Buyer, o.Responsible} {
		if strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}
	return false
}

// matchesYear keeps a record if any of its dates falls in the requested
// year; a record with order_date in 2024 and eta in 2025 matches both.
func matchesYear(o entities.Order, year int) bool {
	for _, field := range []string{o.OrderDate, o.ETD, o.ETA, o.ATA} {
		if d, ok := dates.Parse(field); ok && d.Year() == year {
			return true
		}
	}
	return false
}

var dateSortFields = map[string]bool{
	"eta":        true,
	"etd":        true,
	"ata":        true,
	"order_date": true,
}

// sortOrders applies the sort keys from last to first with a stable sort
// on each, which gives the first listed key final precedence.
func sortOrders(rows []entities.Order, keys []SortKey) {
	for i := len(keys) - 1; i >= 0; i-- {
		key := keys[i]
		desc := key.Direction == "desc"

		var less func(a, b entities.Order) bool
		switch {
		case key.Field == "id":
			less = func(a, b entities.Order) bool { return a.ID < b.ID }
		case dateSortFields[key.Field]:
			less = func(a, b entities.Order) bool {
				return dates.SortKey(textField(a, key.Field)).Before(dates.SortKey(textField(b, key.Field)))
			}
		default:
			less = func(a, b entities.Order) bool {
				return strings.ToLower(textField(a, key.Field)) < strings.ToLower(textField(b, key.Field))
			}
		}

		sort.SliceStable(rows, func(x, y int) bool {
			if desc {
				return less(rows[y], rows[x])
			}
			return less(rows[x], rows[y])
		})
	}
}

func textField(o entities.Order, field string) string {
	switch field {
	case "eta":
		return o.ETA
	case "etd":
		return o.ETD
	case "ata":
		return o.ATA
	case "order_date":
		return o.OrderDate
	case "order_number":
		return o.OrderNumber
	case "buyer":
		return o.Buyer
	case "responsible":
		return o.Responsible
	case "transport":
		return o.Transport
	case "transit_status":
		return o.TransitStatus
	}
	return ""
}
