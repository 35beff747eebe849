package repo

import (
	"database/sql"
	"time"

	"github.com/romahawk/flowlogix/internal/entities"
)

// Order mirrors the orders table. Date columns are plain text: legacy rows
// predate normalization and may hold any of the accepted formats.
type Order struct {
	ID     int64 `db:"id"`
	UserID int64 `db:"user_id"`

	OrderDate        sql.NullString `db:"order_date"`
	OrderNumber      string         `db:"order_number"`
	ProductName      sql.NullString `db:"product_name"`
	Buyer            sql.NullString `db:"buyer"`
	Responsible      sql.NullString `db:"responsible"`
	Quantity         float64        `db:"quantity"`
	RequiredDelivery sql.NullString `db:"required_delivery"`
	TermsOfDelivery  sql.NullString `db:"terms_of_delivery"`
	PaymentDate      sql.NullString `db:"payment_date"`
	ETD              sql.NullString `db:"etd"`
	ETA              sql.NullString `db:"eta"`
	ATA              sql.NullString `db:"ata"`
	TransitStatus    sql.NullString `db:"transit_status"`
	Transport        sql.NullString `db:"transport"`
}

type ArchivedOrder struct {
	ID              int64 `db:"id"`
	OriginalOrderID int64 `db:"original_order_id"`
	UserID          int64 `db:"user_id"`

	OrderDate        sql.NullString `db:"order_date"`
	OrderNumber      string         `db:"order_number"`
	ProductName      sql.NullString `db:"product_name"`
	Buyer            sql.NullString `db:"buyer"`
	Responsible      sql.NullString `db:"responsible"`
	Quantity         float64        `db:"quantity"`
	RequiredDelivery sql.NullString `db:"required_delivery"`
	TermsOfDelivery  sql.NullString `db:"terms_of_delivery"`
	PaymentDate      sql.NullString `db:"payment_date"`
	ETD              sql.NullString `db:"etd"`
	ETA              sql.NullString `db:"eta"`
	ATA              sql.NullString `db:"ata"`
	TransitStatus    sql.NullString `db:"transit_status"`
	Transport        sql.NullString `db:"transport"`
	Source           sql.NullString `db:"source"`
}

type DeliveredGoods struct {
	ID             int64          `db:"id"`
	UserID         int64          `db:"user_id"`
	OrderNumber    string         `db:"order_number"`
	ProductName    sql.NullString `db:"product_name"`
	Quantity       float64        `db:"quantity"`
	DeliverySource sql.NullString `db:"delivery_source"`
	DeliveryDate   time.Time      `db:"delivery_date"`
	Notes          sql.NullString `db:"notes"`
	Transport      sql.NullString `db:"transport"`
}

func OrderToEntity(o Order) entities.Order {
	return entities.Order{
		ID:               o.ID,
		UserID:           o.UserID,
		OrderDate:        nullStringToString(o.OrderDate),
		OrderNumber:      o.OrderNumber,
		ProductName:      nullStringToString(o.ProductName),
		Buyer:            nullStringToString(o.Buyer),
		Responsible:      nullStringToString(o.Responsible),
		Quantity:         o.Quantity,
		RequiredDelivery: nullStringToString(o.RequiredDelivery),
		TermsOfDelivery:  nullStringToString(o.TermsOfDelivery),
		PaymentDate:      nullStringToString(o.PaymentDate),
		ETD:              nullStringToString(o.ETD),
		ETA:              nullStringToString(o.ETA),
		ATA:              nullStringToString(o.ATA),
		TransitStatus:    nullStringToString(o.TransitStatus),
		Transport:        nullStringToString(o.Transport),
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
