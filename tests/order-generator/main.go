package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type Order struct {
	UserID           int64   `json:"user_id"`
	OrderDate        string  `json:"order_date,omitempty"`
	OrderNumber      string  `json:"order_number"`
	ProductName      string  `json:"product_name,omitempty"`
	Buyer            string  `json:"buyer,omitempty"`
	Responsible      string  `json:"responsible,omitempty"`
	Quantity         float64 `json:"quantity"`
	RequiredDelivery string  `json:"required_delivery,omitempty"`
	TermsOfDelivery  string  `json:"terms_of_delivery,omitempty"`
	PaymentDate      string  `json:"payment_date,omitempty"`
	ETD              string  `json:"etd,omitempty"`
	ETA              string  `json:"eta,omitempty"`
	ATA              string  `json:"ata,omitempty"`
	Transport        string  `json:"transport,omitempty"`
}

var (
	buyers     = []string{"Acme GmbH", "Nordwind AB", "Baltic Trade OU", "Helios SA"}
	products   = []string{"Steel fasteners", "PVC granulate", "Bearing kits", "Copper wire"}
	transports = []string{"sea", "air", "truck", "rail"}
	incoterms  = []string{"FOB", "CIF", "EXW", "DAP"}
)

// randomDate returns a date near now in one of the formats upstream
// sheets actually contain, including the messy ones.
func randomDate() string {
	d := time.Now().AddDate(0, 0, rand.Intn(120)-60)
	switch rand.Intn(4) {
	case 0:
		return d.Format("2006-01-02")
	case 1:
		return d.Format("02.01.06")
	case 2:
		return d.Format("02.01.2006")
	default:
		return d.Format("02/01/2006")
	}
}

func maybe(s string) string {
	if rand.Intn(3) == 0 {
		return ""
	}
	return s
}

func generateRandomOrder(seq int) Order {
	return Order{
		UserID:           int64(1 + rand.Intn(5)),
		OrderDate:        randomDate(),
		OrderNumber:      fmt.Sprintf("PO-%d-%03d", time.Now().Year(), seq),
		ProductName:      products[rand.Intn(len(products))],
		Buyer:            buyers[rand.Intn(len(buyers))],
		Responsible:      fmt.Sprintf("manager%d", 1+rand.Intn(4)),
		Quantity:         float64(rand.Intn(5000)+100) / 10,
		RequiredDelivery: maybe(fmt.Sprintf("week %d", 1+rand.Intn(52))),
		TermsOfDelivery:  incoterms[rand.Intn(len(incoterms))],
		PaymentDate:      maybe(randomDate()),
		ETD:              maybe(randomDate()),
		ETA:              maybe(randomDate()),
		ATA:              maybe(randomDate()),
		Transport:        transports[rand.Intn(len(transports))],
	}
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "purchase-orders",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	seq := 0
	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			seq++
			order := generateRandomOrder(seq)
			data, _ := json.Marshal(order)
			writer.WriteMessages(context.Background(), kafka.Message{Value: data})
			log.Println("order generated", order.OrderNumber)
		case <-ctx.Done():
			return
		}
	}
}
