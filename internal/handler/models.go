package handler

import (
	"github.com/romahawk/flowlogix/internal/entities"
	"github.com/romahawk/flowlogix/internal/query"
	"github.com/romahawk/flowlogix/pkg/dates"
)

// Order is the wire form of a purchase order. True date fields are
// rendered as ISO strings (or "" when unknown); required_delivery is
// free text and passes through untouched.
type Order struct {
	ID               int64   `json:"id"`
	OrderDate        string  `json:"order_date"`
	OrderNumber      string  `json:"order_number"`
	ProductName      string  `json:"product_name"`
	Buyer            string  `json:"buyer"`
	Responsible      string  `json:"responsible"`
	Quantity         float64 `json:"quantity"`
	RequiredDelivery string  `json:"required_delivery"`
	TermsOfDelivery  string  `json:"terms_of_delivery"`
	PaymentDate      string  `json:"payment_date"`
	ETD              string  `json:"etd"`
	ETA              string  `json:"eta"`
	ATA              string  `json:"ata"`
	TransitStatus    string  `json:"transit_status"`
	Transport        string  `json:"transport"`
}

// IngestOrder is the payload consumed from the ingest topic. Dates may be
// in any accepted format; the service normalizes them before saving.
type IngestOrder struct {
	UserID           int64   `json:"user_id" validate:"required"`
	OrderDate        string  `json:"order_date,omitempty"`
	OrderNumber      string  `json:"order_number" validate:"required"`
	ProductName      string  `json:"product_name,omitempty"`
	Buyer            string  `json:"buyer,omitempty"`
	Responsible      string  `json:"responsible,omitempty"`
	Quantity         float64 `json:"quantity" validate:"required,gt=0"`
	RequiredDelivery string  `json:"required_delivery,omitempty"`
	TermsOfDelivery  string  `json:"terms_of_delivery,omitempty"`
	PaymentDate      string  `json:"payment_date,omitempty"`
	ETD              string  `json:"etd,omitempty"`
	ETA              string  `json:"eta,omitempty"`
	ATA              string  `json:"ata,omitempty"`
	Transport        string  `json:"transport,omitempty"`
}

type Meta struct {
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
	Total   int         `json:"total"`
	Sort    string      `json:"sort"`
	Filters MetaFilters `json:"filters"`
}

type MetaFilters struct {
	TransitStatus string `json:"transit_status,omitempty"`
	Transport     string `json:"transport,omitempty"`
	Buyer         string `json:"buyer,omitempty"`
	Responsible   string `json:"responsible,omitempty"`
	Q             string `json:"q,omitempty"`
	Year          int    `json:"year,omitempty"`
}

func OrderToJSON(o entities.Order) Order {
	return Order{
		ID:               o.ID,
		OrderDate:        dates.ToISO(o.OrderDate),
		OrderNumber:      o.OrderNumber,
		ProductName:      o.ProductName,
		Buyer:            o.Buyer,
		Responsible:      o.Responsible,
		Quantity:         o.Quantity,
		RequiredDelivery: o.RequiredDelivery,
		TermsOfDelivery:  o.TermsOfDelivery,
		PaymentDate:      dates.ToISO(o.PaymentDate),
		ETD:              dates.ToISO(o.ETD),
		ETA:              dates.ToISO(o.ETA),
		ATA:              dates.ToISO(o.ATA),
		TransitStatus:    o.TransitStatus,
		Transport:        o.Transport,
	}
}

func OrdersToJSON(orders []entities.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderToJSON(o))
	}
	return out
}

func IngestToEntity(in IngestOrder) entities.Order {
	return entities.Order{
		UserID:           in.UserID,
		OrderDate:        in.OrderDate,
		OrderNumber:      in.OrderNumber,
		ProductName:      in.ProductName,
		Buyer:            in.Buyer,
		Responsible:      in.Responsible,
		Quantity:         in.Quantity,
		RequiredDelivery: in.RequiredDelivery,
		TermsOfDelivery:  in.TermsOfDelivery,
		PaymentDate:      in.PaymentDate,
		ETD:              in.ETD,
		ETA:              in.ETA,
		ATA:              in.ATA,
		Transport:        in.Transport,
	}
}

func MetaFromPage(p query.Page) Meta {
	return Meta{
		Page:    p.Page,
		PerPage: p.PerPage,
		Total:   p.Total,
		Sort:    p.Sort,
		Filters: MetaFilters{
			TransitStatus: p.Filters.TransitStatus,
			Transport:     p.Filters.Transport,
			Buyer:         p.Filters.Buyer,
			Responsible:   p.Filters.Responsible,
			Q:             p.Filters.Q,
			Year:          p.Filters.Year,
		},
	}
}
