package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/romahawk/flowlogix/internal/entities"
	"github.com/romahawk/flowlogix/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type ordersRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewOrdersRepo(db *sqlx.DB) *ordersRepo {
	return &ordersRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var orderColumns = []string{
	"id", "user_id", "order_date", "order_number", "product_name",
	"buyer", "responsible", "quantity", "required_delivery",
	"terms_of_delivery", "payment_date", "etd", "eta", "ata",
	"transit_status", "transport",
}

// ListOrders returns the role-scoped snapshot the query engine runs over.
// Filtering and ordering happen engine-side because the date columns are
// free-form text the database cannot compare.
func (r *ordersRepo) ListOrders(ctx context.Context, scope entities.RoleScope) ([]entities.Order, error) {
	builder := r.qb.Select(orderColumns...).From("orders")
	if !scope.All {
		builder = builder.Where(sq.Eq{"user_id": scope.UserID})
	}
	query, args := builder.OrderBy("id").MustSql()

	var rows []Order
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	orders := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, OrderToEntity(row))
	}
	return orders, nil
}

func (r *ordersRepo) GetOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var row Order
	if err := r.getContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Order{}, entities.ErrOrderNotFound
		}
		return entities.Order{}, fmt.Errorf("failed to select order: %w", err)
	}
	return OrderToEntity(row), nil
}

// SaveOrder is idempotent on order_number so redelivered ingest messages
// do not create duplicates.
func (r *ordersRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns("user_id", "order_date", "order_number", "product_name",
			"buyer", "responsible", "quantity", "required_delivery",
			"terms_of_delivery", "payment_date", "etd", "eta", "ata",
			"transit_status", "transport").
		Values(o.UserID, toNull(o.OrderDate), o.OrderNumber, toNull(o.ProductName),
			toNull(o.Buyer), toNull(o.Responsible), o.Quantity, toNull(o.RequiredDelivery),
			toNull(o.TermsOfDelivery), toNull(o.PaymentDate), toNull(o.ETD), toNull(o.ETA), toNull(o.ATA),
			toNull(o.TransitStatus), toNull(o.Transport)).
		Suffix("ON CONFLICT (order_number) DO NOTHING").
		MustSql()

	if err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *ordersRepo) UpdateOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Update("orders").
		Set("order_date", toNull(o.OrderDate)).
		Set("order_number", o.OrderNumber).
		Set("product_name", toNull(o.ProductName)).
		Set("buyer", toNull(o.Buyer)).
		Set("responsible", toNull(o.Responsible)).
		Set("quantity", o.Quantity).
		Set("required_delivery", toNull(o.RequiredDelivery)).
		Set("terms_of_delivery", toNull(o.TermsOfDelivery)).
		Set("payment_date", toNull(o.PaymentDate)).
		Set("etd", toNull(o.ETD)).
		Set("eta", toNull(o.ETA)).
		Set("ata", toNull(o.ATA)).
		Set("transit_status", toNull(o.TransitStatus)).
		Set("transport", toNull(o.Transport)).
		Where(sq.Eq{"id": o.ID}).
		MustSql()

	if err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	return nil
}

func (r *ordersRepo) DeleteOrder(ctx context.Context, id int64) error {
	query, args := r.qb.Delete("orders").Where(sq.Eq{"id": id}).MustSql()

	if err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

func (r *ordersRepo) CountOrders(ctx context.Context) (int, error) {
	query, args := r.qb.Select("count(*)").From("orders").MustSql()

	var count int
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

func (r *ordersRepo) SaveArchivedOrder(ctx context.Context, a entities.ArchivedOrder) error {
	query, args := r.qb.Insert("archived_orders").
		Columns("original_order_id", "user_id", "order_date", "order_number",
			"product_name", "buyer", "responsible", "quantity",
			"required_delivery", "terms_of_delivery", "payment_date",
			"etd", "eta", "ata", "transit_status", "transport", "source").
		Values(a.OriginalOrderID, a.UserID, toNull(a.OrderDate), a.OrderNumber,
			toNull(a.ProductName), toNull(a.Buyer), toNull(a.Responsible), a.Quantity,
			toNull(a.RequiredDelivery), toNull(a.TermsOfDelivery), toNull(a.PaymentDate),
			toNull(a.ETD), toNull(a.ETA), toNull(a.ATA), toNull(a.TransitStatus),
			toNull(a.Transport), toNull(a.Source)).
		MustSql()

	if err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert archived order: %w", err)
	}
	return nil
}

func (r *ordersRepo) SaveDeliveredGoods(ctx context.Context, g entities.DeliveredGoods) error {
	query, args := r.qb.Insert("delivered_goods").
		Columns("user_id", "order_number", "product_name", "quantity",
			"delivery_source", "delivery_date", "notes", "transport").
		Values(g.UserID, g.OrderNumber, toNull(g.ProductName), g.Quantity,
			toNull(g.DeliverySource), g.DeliveryDate, toNull(g.Notes), toNull(g.Transport)).
		MustSql()

	if err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert delivered goods: %w", err)
	}
	return nil
}

func toNull(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Query helpers pick the transaction from ctx when one is running.

func (r *ordersRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}

func (r *ordersRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *ordersRepo) execContext(ctx context.Context, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		_, err := tx.ExecContext(ctx, query, args...)
		return err
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}
