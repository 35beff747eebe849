package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"testing"

	"github.com/romahawk/flowlogix/internal/entities"
	"github.com/romahawk/flowlogix/internal/query"
	"github.com/romahawk/flowlogix/internal/service"
	mocks "github.com/romahawk/flowlogix/internal/service/mocks"
	"github.com/romahawk/flowlogix/internal/timeline"
	txMocks "github.com/romahawk/flowlogix/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_SaveOrder(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo)

	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		order        entities.Order
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:  "OK",
			order: entities.Order{ID: 1, OrderNumber: "PO-2025-001"},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
			},
			wantErr: nil,
		},
		{
			name:  "SaveOrder fails",
			order: entities.Order{ID: 1, OrderNumber: "PO-2025-001"},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Return(dbError)
			},
			wantErr: dbError,
		},
		{
			name:  "Retry works (first attempt fails, second succeeds)",
			order: entities.Order{ID: 1, OrderNumber: "PO-2025-001"},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Once().Return(errors.New("temporary error"))
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Once().Return(nil)
			},
			wantErr: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					})

			tc.mockBehavior(orderRepo)

			svc := service.NewOrderService(logger, tx, orderRepo, cache)

			err := svc.SaveOrder(context.Background(), tc.order)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestOrderService_SaveOrder_Normalizes(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	cache := mocks.NewMockCache(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			})

	var saved entities.Order
	orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
		Run(func(_ context.Context, o entities.Order) {
			saved = o
		}).Return(nil)

	svc := service.NewOrderService(logger, tx, orderRepo, cache)

	err := svc.SaveOrder(context.Background(), entities.Order{
		OrderNumber:      "PO-2025-042",
		OrderDate:        "2025-07-01",
		ETD:              "2025-07-15",
		ATA:              "2025-07-30",
		RequiredDelivery: "ASAP, week 32",
	})
	require.NoError(t, err)

	assert.Equal(t, "01.07.25", saved.OrderDate)
	assert.Equal(t, "15.07.25", saved.ETD)
	assert.Equal(t, "30.07.25", saved.ETA, "missing ETA is derived from ETD and ATA")
	assert.Equal(t, "30.07.25", saved.ATA)
	assert.Equal(t, timeline.StatusArrived, saved.TransitStatus)
	assert.Equal(t, "ASAP, week 32", saved.RequiredDelivery, "free text is never touched")
}

func TestOrderService_GetOrderByID(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache)

	validOrder := entities.Order{ID: 123, UserID: 1, OrderNumber: "PO-2025-001"}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		orderID      int64
		mockBehavior MockBehavior
		wantErr      error
		want         entities.Order
	}{
		{
			name:    "success from cache",
			orderID: 123,
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get(int64(123)).
					Return(validData, true).Once()
			},
			want: validOrder,
		},
		{
			name:    "cache hit but unmarshal fails",
			orderID: 123,
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get(int64(123)).
					Return([]byte("broken"), true).Once()
			},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name:    "success from repo and set to cache",
			orderID: 123,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get(int64(123)).
					Return(nil, false).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, int64(123)).
					Return(validOrder, nil).Once()
				cache.EXPECT().
					Set(int64(123), validData).
					Return().Once()
			},
			want: validOrder,
		},
		{
			name:    "not found in repo",
			orderID: 404,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get(int64(404)).
					Return(nil, false).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, int64(404)).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "second attempt from repo",
			orderID: 123,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get(int64(123)).
					Return(nil, false).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, int64(123)).
					Return(entities.Order{}, errors.New("some error")).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, int64(123)).
					Return(validOrder, nil).Once()
				cache.EXPECT().
					Set(int64(123), validData).
					Return().Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(orderRepo, cache)

			svc := service.NewOrderService(logger, tx, orderRepo, cache)

			got, err := svc.GetOrderByID(context.Background(), tc.orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	cache := mocks.NewMockCache(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	orders := []entities.Order{
		{ID: 1, OrderNumber: "PO-001", ETA: "10.03.25"},
		{ID: 2, OrderNumber: "PO-002", ETA: "20.04.25"},
		{ID: 3, OrderNumber: "PO-003", ETA: "05.01.25"},
	}
	scope := entities.RoleScope{UserID: 7}
	orderRepo.EXPECT().
		ListOrders(mock.Anything, scope).
		Return(orders, nil).Once()

	plan, err := query.ParseParams(url.Values{})
	require.NoError(t, err)

	svc := service.NewOrderService(logger, tx, orderRepo, cache)

	page, err := svc.ListOrders(context.Background(), scope, plan)
	require.NoError(t, err)

	assert.Equal(t, 3, page.Total)
	got := make([]string, 0, len(page.Orders))
	for _, o := range page.Orders {
		got = append(got, o.OrderNumber)
	}
	assert.Equal(t, []string{"PO-002", "PO-001", "PO-003"}, got, "newest ETA first by default")
}

func TestOrderService_DeliverOrder(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache)

	dbError := errors.New("db error")
	order := entities.Order{ID: 5, UserID: 7, OrderNumber: "PO-2025-005", ProductName: "Widgets"}
	orderData, err := order.Marshal()
	require.NoError(t, err)

	fetched := func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
		cache.EXPECT().Get(int64(5)).Return(orderData, true).Once()
	}

	testCases := []struct {
		name         string
		actorID      int64
		canEdit      bool
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:    "OK as owner",
			actorID: 7,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				fetched(orderRepo, cache)
				orderRepo.EXPECT().SaveArchivedOrder(mock.Anything, mock.Anything).Return(nil).Once()
				orderRepo.EXPECT().SaveDeliveredGoods(mock.Anything, mock.Anything).Return(nil).Once()
				orderRepo.EXPECT().DeleteOrder(mock.Anything, int64(5)).Return(nil).Once()
				cache.EXPECT().Invalidate(int64(5)).Return().Once()
			},
		},
		{
			name:    "OK as editor",
			actorID: 99,
			canEdit: true,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				fetched(orderRepo, cache)
				orderRepo.EXPECT().SaveArchivedOrder(mock.Anything, mock.Anything).Return(nil).Once()
				orderRepo.EXPECT().SaveDeliveredGoods(mock.Anything, mock.Anything).Return(nil).Once()
				orderRepo.EXPECT().DeleteOrder(mock.Anything, int64(5)).Return(nil).Once()
				cache.EXPECT().Invalidate(int64(5)).Return().Once()
			},
		},
		{
			name:         "foreign order without edit rights",
			actorID:      99,
			mockBehavior: fetched,
			wantErr:      service.ErrPermissionDenied,
		},
		{
			name:    "not found",
			actorID: 7,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(int64(5)).Return(nil, false).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, int64(5)).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "archive fails",
			actorID: 7,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				fetched(orderRepo, cache)
				orderRepo.EXPECT().SaveArchivedOrder(mock.Anything, mock.Anything).Return(dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					}).Maybe()

			tc.mockBehavior(orderRepo, cache)

			svc := service.NewOrderService(logger, tx, orderRepo, cache)

			err := svc.DeliverOrder(context.Background(), 5, tc.actorID, tc.canEdit)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
