// Package seed fills an empty store with demo purchase orders so a fresh
// install has something to show on the dashboard.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/romahawk/flowlogix/internal/entities"
	"github.com/romahawk/flowlogix/pkg/dates"

	"golang.org/x/sync/errgroup"
)

type OrderWriter interface {
	SaveOrder(ctx context.Context, order entities.Order) error
	CountOrders(ctx context.Context) (int, error)
}

type Seeder struct {
	logger *slog.Logger
	svc    OrderWriter
	userID int64
	count  int
}

func New(logger *slog.Logger, svc OrderWriter, userID int64, count int) *Seeder {
	return &Seeder{
		logger: logger.With(slog.String("component", "seed")),
		svc:    svc,
		userID: userID,
		count:  count,
	}
}

var (
	buyers       = []string{"Acme Clinics GmbH", "HealthPlus Ltd", "BioCare AG", "Nova Pharma BV", "Medico Supplies Sp. z o.o.", "Wellness Partners SA", "PharmaLogis GmbH"}
	responsibles = []string{"Anna Kramer", "Ben Schneider", "Carla Rossi", "David Weber", "Elena Nowak", "Felix Bauer"}
	incoterms    = []string{"EXW", "FCA", "CPT", "CIP", "DAP", "DPU", "DDP", "FAS", "FOB", "CFR", "CIF"}
	transports   = []string{"sea", "air", "truck"}
	products     = []string{"Losartan potassium", "Amlodipine besylate", "Hydrochlorothiazide", "Omeprazole 20 mg", "Cetirizine HCl 10 mg", "Metformin HCl 500 mg", "Amoxicillin trihydrate"}
)

const saveConcurrency = 8

// Start seeds demo orders when the store is empty. SaveOrder runs the
// timeline rules, so the generated rows come out with consistent
// milestones and a derived status.
func (s *Seeder) Start(ctx context.Context) error {
	count, err := s.svc.CountOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to count orders: %w", err)
	}
	if count > 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(saveConcurrency)

	today := time.Now()
	for i := range s.count {
		order := s.randomOrder(i+1, today)
		g.Go(func() error {
			return s.svc.SaveOrder(ctx, order)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to seed orders: %w", err)
	}

	s.logger.Info("seeded demo orders", slog.Int("count", s.count))
	return nil
}

func (s *Seeder) randomOrder(idx int, today time.Time) entities.Order {
	year := today.Year()

	// ETD roughly within ±120 days of today, ETA 5..30 days later. A
	// minority of orders already carries an ATA near the ETA.
	etd := today.AddDate(0, 0, rand.Intn(241)-120)
	eta := etd.AddDate(0, 0, 5+rand.Intn(26))

	ata := ""
	if rand.Intn(100) < 15 {
		ata = dates.FormatStorage(eta.AddDate(0, 0, rand.Intn(15)-7))
	}

	return entities.Order{
		UserID:      s.userID,
		OrderDate:   dates.FormatStorage(today.AddDate(0, 0, -rand.Intn(150))),
		OrderNumber: fmt.Sprintf("PO-%d-%03d", year, idx),
		ProductName: pick(products),
		Buyer:       pick(buyers),
		Responsible: pick(responsibles),
		Quantity:    float64(10 + rand.Intn(1991)),
		RequiredDelivery: pick([]string{
			"ASAP",
			fmt.Sprintf("By Q%d %d", 1+rand.Intn(4), year),
			fmt.Sprintf("By %s %d", today.Month(), year),
		}),
		TermsOfDelivery: pick(incoterms),
		PaymentDate:     dates.FormatStorage(today.AddDate(0, 0, rand.Intn(121)-60)),
		ETD:             dates.FormatStorage(etd),
		ETA:             dates.FormatStorage(eta),
		ATA:             ata,
		Transport:       pick(transports),
	}
}

func pick(values []string) string {
	return values[rand.Intn(len(values))]
}
