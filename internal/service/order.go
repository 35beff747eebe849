package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/romahawk/flowlogix/internal/entities"
	"github.com/romahawk/flowlogix/internal/query"
	"github.com/romahawk/flowlogix/internal/timeline"
	"github.com/romahawk/flowlogix/pkg/dates"
	"github.com/romahawk/flowlogix/pkg/trm"
	"github.com/romahawk/flowlogix/pkg/utils"
)

var ErrPermissionDenied = errors.New("permission denied")

type OrderRepo interface {
	ListOrders(ctx context.Context, scope entities.RoleScope) ([]entities.Order, error)
	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	SaveOrder(ctx context.Context, o entities.Order) error
	UpdateOrder(ctx context.Context, o entities.Order) error
	DeleteOrder(ctx context.Context, id int64) error
	CountOrders(ctx context.Context) (int, error)
	SaveArchivedOrder(ctx context.Context, a entities.ArchivedOrder) error
	SaveDeliveredGoods(ctx context.Context, g entities.DeliveredGoods) error
}

type Cache interface {
	Get(key int64) ([]byte, bool)
	Set(key int64, value []byte)
	Invalidate(key int64)
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	cache     Cache
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, cache Cache) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
	}
}

var writeRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

// SaveOrder normalizes the order's dates, enforces the timeline rules and
// persists the result. Every write path goes through here so stored rows
// are always consistent.
func (s *orderService) SaveOrder(ctx context.Context, order entities.Order) error {
	order = normalizeOrder(order, time.Now())

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.SaveOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			s.logger.Debug("order saved", "order_number", order.OrderNumber)
			return nil
		})
	}

	return utils.Retry(writeRetry, fn)
}

// UpdateOrder re-runs the timeline rules and overwrites the stored row.
func (s *orderService) UpdateOrder(ctx context.Context, order entities.Order) error {
	order = normalizeOrder(order, time.Now())

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			return s.repo.UpdateOrder(ctx, order)
		})
	}
	if err := utils.Retry(writeRetry, fn); err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	s.cache.Invalidate(order.ID)
	return nil
}

// ListOrders fetches the role-scoped snapshot and runs the query plan
// over it.
func (s *orderService) ListOrders(ctx context.Context, scope entities.RoleScope, plan query.Plan) (query.Page, error) {
	var orders []entities.Order
	fn := func() error {
		var err error
		orders, err = s.repo.ListOrders(ctx, scope)
		return err
	}
	if err := utils.Retry(writeRetry, fn); err != nil {
		return query.Page{}, fmt.Errorf("failed to list orders: %w", err)
	}

	return query.Apply(orders, plan), nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	if data, ok := s.cache.Get(id); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.Int64("id", id), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, id)
		return err
	}
	if err := utils.Retry(writeRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.Int64("id", id), slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(id, data)
	return order, nil
}

// DeliverOrder archives an order and records the delivery in a single
// transaction, then removes it from the active set.
func (s *orderService) DeliverOrder(ctx context.Context, id, actorID int64, canEdit bool) error {
	order, err := s.GetOrderByID(ctx, id)
	if err != nil {
		return err
	}
	if !canEdit && order.UserID != actorID {
		return ErrPermissionDenied
	}
	if order.OrderNumber == "" {
		return entities.ErrInvalidOrder
	}

	archived := entities.ArchivedOrder{
		OriginalOrderID:  order.ID,
		UserID:           order.UserID,
		OrderDate:        order.OrderDate,
		OrderNumber:      order.OrderNumber,
		ProductName:      order.ProductName,
		Buyer:            order.Buyer,
		Responsible:      order.Responsible,
		Quantity:         order.Quantity,
		RequiredDelivery: order.RequiredDelivery,
		TermsOfDelivery:  order.TermsOfDelivery,
		PaymentDate:      order.PaymentDate,
		ETD:              order.ETD,
		ETA:              order.ETA,
		ATA:              order.ATA,
		TransitStatus:    order.TransitStatus,
		Transport:        order.Transport,
		Source:           "dashboard",
	}
	delivered := entities.DeliveredGoods{
		UserID:         order.UserID,
		OrderNumber:    order.OrderNumber,
		ProductName:    order.ProductName,
		Quantity:       order.Quantity,
		DeliverySource: "Direct from Transit",
		DeliveryDate:   time.Now(),
		Notes:          "Delivered directly from dashboard",
		Transport:      order.Transport,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.SaveArchivedOrder(ctx, archived); err != nil {
			return fmt.Errorf("failed to archive order: %w", err)
		}
		if err := s.repo.SaveDeliveredGoods(ctx, delivered); err != nil {
			return fmt.Errorf("failed to save delivered goods: %w", err)
		}
		if err := s.repo.DeleteOrder(ctx, order.ID); err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(order.ID)
	s.logger.Info("order delivered", slog.String("order_number", order.OrderNumber))
	return nil
}

func (s *orderService) CountOrders(ctx context.Context) (int, error) {
	return s.repo.CountOrders(ctx)
}

// WarmUpCache preloads up to count orders so the first dashboard reads
// after a restart hit the cache.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.ListOrders(ctx, entities.RoleScope{All: true})
	if err != nil {
		return fmt.Errorf("failed to warm up cache: %w", err)
	}
	if len(orders) > count {
		orders = orders[:count]
	}
	for _, order := range orders {
		data, err := order.Marshal()
		if err != nil {
			return err
		}
		s.cache.Set(order.ID, data)
	}
	return nil
}

// normalizeOrder brings every date field to storage form and derives the
// transit status. RequiredDelivery is free text and is left alone.
func normalizeOrder(order entities.Order, asOf time.Time) entities.Order {
	order.OrderDate = dates.ToStorage(order.OrderDate)
	order.PaymentDate = dates.ToStorage(order.PaymentDate)

	res := timeline.Normalize(order.ETD, order.ETA, order.ATA, asOf)
	order.ETD = res.ETD
	order.ETA = res.ETA
	order.ATA = res.ATA
	order.TransitStatus = res.Status
	return order
}
