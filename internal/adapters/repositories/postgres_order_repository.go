package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/master-racoon/hackathon-last-mile/internal/domain"
	"github.com/master-racoon/hackathon-last-mile/internal/ports"
)

// Postgres-backed implementation of the OrderRepository port.
type PostgresOrderRepository struct{ DB *sql.DB }

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{DB: db}
}

const orderColumns = `
	order_id, order_number, customer_name, requested_delivery_date,
	origin_country, origin_region, destination_country, destination_region,
	gross_weight_kg, net_weight_kg, total_width, delivery_method,
	vehicle_type_id, status, load_date, lead_time_days, estimated_arrival,
	notes, created_at, updated_at`

func scanOrder(s interface{ Scan(...any) error }) (*domain.Order, error) {
	var (
		o              domain.Order
		customerName   sql.NullString
		gross          sql.NullFloat64
		net            sql.NullFloat64
		width          sql.NullFloat64
		deliveryMethod sql.NullInt64
		vehicleTypeID  sql.NullInt64
		loadDate       sql.NullTime
		leadTimeDays   sql.NullInt64
		eta            sql.NullTime
		notes          sql.NullString
	)

	err := s.Scan(
		&o.OrderID, &o.OrderNumber, &customerName, &o.RequestedDeliveryDate,
		&o.OriginCountry, &o.OriginRegion, &o.DestinationCountry, &o.DestinationRegion,
		&gross, &net, &width, &deliveryMethod,
		&vehicleTypeID, &o.Status, &loadDate, &leadTimeDays, &eta,
		&notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	o.CustomerName = customerName.String
	o.GrossWeightKg = floatPtr(gross)
	o.NetWeightKg = floatPtr(net)
	o.TotalWidth = floatPtr(width)
	o.DeliveryMethod = intPtr(deliveryMethod)
	o.VehicleTypeID = intPtr(vehicleTypeID)
	o.LoadDate = timePtr(loadDate)
	o.LeadTimeDays = intPtr(leadTimeDays)
	o.EstimatedArrival = timePtr(eta)
	o.Notes = notes.String
	return &o, nil
}

func (r *PostgresOrderRepository) ListOrders(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]*domain.Order, error) {
	if r.DB == nil {
		return nil, errors.New("order repository: DB is nil")
	}

	query := `SELECT` + orderColumns + `
	FROM orders
	WHERE ($1 = '' OR status = $1)
	ORDER BY created_at DESC, order_id DESC
	OFFSET $2 LIMIT $3;`

	rows, err := r.DB.QueryContext(ctx, query, string(status), offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list orders: query orders table: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *PostgresOrderRepository) ListOpenOrders(ctx context.Context) ([]*domain.Order, error) {
	if r.DB == nil {
		return nil, errors.New("order repository: DB is nil")
	}

	query := `SELECT` + orderColumns + `
	FROM orders
	WHERE status = ANY($1::text[])
	ORDER BY order_id;`

	open := domain.OpenStatuses()
	statuses := make([]string, len(open))
	for i, s := range open {
		statuses[i] = string(s)
	}

	rows, err := r.DB.QueryContext(ctx, query, statuses)
	if err != nil {
		return nil, fmt.Errorf("list open orders: query orders table: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

func collectOrders(rows *sql.Rows) ([]*domain.Order, error) {
	orders := make([]*domain.Order, 0, 64)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order row iteration: %w", err)
	}
	return orders, nil
}

func (r *PostgresOrderRepository) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	query := `SELECT` + orderColumns + ` FROM orders WHERE order_id = $1;`

	o, err := scanOrder(r.DB.QueryRowContext(ctx, query, orderID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", orderID, err)
	}
	return o, nil
}

func (r *PostgresOrderRepository) GetOrderByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	query := `SELECT` + orderColumns + ` FROM orders WHERE order_number = $1;`

	o, err := scanOrder(r.DB.QueryRowContext(ctx, query, orderNumber))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order by number %q: %w", orderNumber, err)
	}
	return o, nil
}

func (r *PostgresOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	query := `
	INSERT INTO orders (
		order_number, customer_name, requested_delivery_date,
		origin_country, origin_region, destination_country, destination_region,
		gross_weight_kg, net_weight_kg, total_width, delivery_method,
		vehicle_type_id, status, load_date, lead_time_days, estimated_arrival, notes
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	RETURNING order_id, created_at, updated_at;`

	status := order.Status
	if status == "" {
		status = domain.StatusPending
	}

	err := r.DB.QueryRowContext(ctx, query,
		order.OrderNumber, order.CustomerName, order.RequestedDeliveryDate,
		order.OriginCountry, order.OriginRegion, order.DestinationCountry, order.DestinationRegion,
		nullFloat(order.GrossWeightKg), nullFloat(order.NetWeightKg), nullFloat(order.TotalWidth),
		nullInt(order.DeliveryMethod), nullInt(order.VehicleTypeID), string(status),
		nullTime(order.LoadDate), nullInt(order.LeadTimeDays), nullTime(order.EstimatedArrival),
		order.Notes,
	).Scan(&order.OrderID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create order %q: %w", order.OrderNumber, err)
	}

	order.Status = status
	return order, nil
}

func (r *PostgresOrderRepository) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	query := `
	UPDATE orders SET
		customer_name = $2, requested_delivery_date = $3,
		origin_country = $4, origin_region = $5,
		destination_country = $6, destination_region = $7,
		gross_weight_kg = $8, net_weight_kg = $9, total_width = $10,
		delivery_method = $11, vehicle_type_id = $12, status = $13,
		load_date = $14, lead_time_days = $15, estimated_arrival = $16,
		notes = $17, updated_at = now()
	WHERE order_id = $1
	RETURNING updated_at;`

	err := r.DB.QueryRowContext(ctx, query,
		order.OrderID, order.CustomerName, order.RequestedDeliveryDate,
		order.OriginCountry, order.OriginRegion,
		order.DestinationCountry, order.DestinationRegion,
		nullFloat(order.GrossWeightKg), nullFloat(order.NetWeightKg), nullFloat(order.TotalWidth),
		nullInt(order.DeliveryMethod), nullInt(order.VehicleTypeID), string(order.Status),
		nullTime(order.LoadDate), nullInt(order.LeadTimeDays), nullTime(order.EstimatedArrival),
		order.Notes,
	).Scan(&order.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update order %d: %w", order.OrderID, err)
	}
	return order, nil
}

func (r *PostgresOrderRepository) UpdateOrderStatus(ctx context.Context, orderID int, status domain.OrderStatus) error {
	query := `UPDATE orders SET status = $2, updated_at = now() WHERE order_id = $1;`

	res, err := r.DB.ExecContext(ctx, query, orderID, string(status))
	if err != nil {
		return fmt.Errorf("update order %d status: %w", orderID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update order %d status: rows affected: %w", orderID, err)
	}
	if n == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *PostgresOrderRepository) DeleteOrder(ctx context.Context, orderID int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM orders WHERE order_id = $1;`, orderID)
	if err != nil {
		return fmt.Errorf("delete order %d: %w", orderID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete order %d: rows affected: %w", orderID, err)
	}
	if n == 0 {
		return ports.ErrNotFound
	}
	return nil
}
