package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
)

// Order is a purchase order moving through the supply chain.
// Date fields are kept as text in dd.mm.yy storage form; legacy rows may
// carry other formats or free text, so they are normalized on read, never
// reinterpreted in place.
type Order struct {
	ID     int64
	UserID int64

	OrderDate        string
	OrderNumber      string
	ProductName      string
	Buyer            string
	Responsible      string
	Quantity         float64
	RequiredDelivery string // free text ("By Q3 2025"), never a date
	TermsOfDelivery  string
	PaymentDate      string
	ETD              string
	ETA              string
	ATA              string
	TransitStatus    string
	Transport        string
}

// RoleScope limits which orders a request may see.
type RoleScope struct {
	All    bool
	UserID int64
}

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidOrder  = errors.New("invalid order data")
)

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return ErrInvalidOrder
	}
	return nil
}

func init() {
	gob.Register(Order{})
}
