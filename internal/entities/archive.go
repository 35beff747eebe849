package entities

import "time"

// ArchivedOrder is a snapshot of an order taken when it is delivered
// directly from the dashboard.
type ArchivedOrder struct {
	ID              int64
	OriginalOrderID int64
	UserID          int64

	OrderDate        string
	OrderNumber      string
	ProductName      string
	Buyer            string
	Responsible      string
	Quantity         float64
	RequiredDelivery string
	TermsOfDelivery  string
	PaymentDate      string
	ETD              string
	ETA              string
	ATA              string
	TransitStatus    string
	Transport        string
	Source           string
}

type DeliveredGoods struct {
	ID             int64
	UserID         int64
	OrderNumber    string
	ProductName    string
	Quantity       float64
	DeliverySource string
	DeliveryDate   time.Time
	Notes          string
	Transport      string
}
