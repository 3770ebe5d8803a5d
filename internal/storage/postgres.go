package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"tableside-orders/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) ListProducts(restaurantID int) ([]domain.Product, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, name, COALESCE(description, ''), base_price, COALESCE(image_url, ''), created_at
		FROM products
		WHERE restaurant_id = $1 AND name <> $2
		ORDER BY created_at DESC`, restaurantID, domain.PriorityProductName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.RestaurantID, &p.Name, &p.Description, &p.BasePrice, &p.ImageURL, &p.CreatedAt); err != nil {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *PostgresRepository) GetProduct(restaurantID, productID int) (*domain.Product, error) {
	var p domain.Product
	err := r.DB.QueryRow(`
		SELECT id, restaurant_id, name, COALESCE(description, ''), base_price, COALESCE(image_url, ''), created_at
		FROM products
		WHERE id = $1 AND restaurant_id = $2`, productID, restaurantID).
		Scan(&p.ID, &p.RestaurantID, &p.Name, &p.Description, &p.BasePrice, &p.ImageURL, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) GetVariantOptions(productID int) ([]domain.VariantOption, error) {
	rows, err := r.DB.Query(`
		SELECT id, product_id, name, position
		FROM variant_options
		WHERE product_id = $1
		ORDER BY position`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []domain.VariantOption
	for rows.Next() {
		var opt domain.VariantOption
		if err := rows.Scan(&opt.ID, &opt.ProductID, &opt.Name, &opt.Position); err != nil {
			continue
		}
		options = append(options, opt)
	}
	return options, nil
}

func (r *PostgresRepository) GetOptionValues(optionID int) ([]domain.OptionValue, error) {
	rows, err := r.DB.Query(`
		SELECT id, option_id, value, position
		FROM option_values
		WHERE option_id = $1
		ORDER BY position`, optionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []domain.OptionValue
	for rows.Next() {
		var v domain.OptionValue
		if err := rows.Scan(&v.ID, &v.OptionID, &v.Value, &v.Position); err != nil {
			continue
		}
		values = append(values, v)
	}
	return values, nil
}

// GetAvailableVariants returns only purchasable variants, in display order.
// The option_values column holds the ordered name/value pairs as JSON.
func (r *PostgresRepository) GetAvailableVariants(productID int) ([]domain.Variant, error) {
	rows, err := r.DB.Query(`
		SELECT id, product_id, title, price_override, COALESCE(option_values, '[]'), is_available, position
		FROM variants
		WHERE product_id = $1 AND is_available = TRUE
		ORDER BY position`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var variants []domain.Variant
	for rows.Next() {
		var v domain.Variant
		var rawValues []byte
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Title, &v.PriceOverride, &rawValues, &v.IsAvailable, &v.Position); err != nil {
			continue
		}
		if err := json.Unmarshal(rawValues, &v.OptionValues); err != nil {
			continue
		}
		variants = append(variants, v)
	}
	return variants, nil
}

func (r *PostgresRepository) InsertOrder(order *domain.Order) error {
	return r.DB.QueryRow(`
		INSERT INTO orders (restaurant_id, table_number, room_id, customer_name, customer_notes, status, total_amount, is_priority_order, priority_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		order.RestaurantID, order.TableNumber, order.RoomID, order.CustomerName, order.CustomerNotes,
		order.Status, order.TotalAmount, order.IsPriorityOrder, order.PriorityAmount).
		Scan(&order.ID, &order.CreatedAt)
}

// InsertOrderItems writes item rows one by one; the order store exposes no
// multi-table transaction, a failure leaves already-written rows in place.
func (r *PostgresRepository) InsertOrderItems(orderID int, items []domain.OrderItem) error {
	for i := range items {
		if err := r.DB.QueryRow(`
			INSERT INTO order_items (order_id, product_id, product_name, variant_title, unit_price, quantity, subtotal, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`,
			orderID, items[i].ProductID, items[i].ProductName, items[i].VariantTitle,
			items[i].UnitPrice, items[i].Quantity, items[i].Subtotal, items[i].Notes).
			Scan(&items[i].ID); err != nil {
			return err
		}
		items[i].OrderID = orderID
	}
	return nil
}

func (r *PostgresRepository) FindProductByName(restaurantID int, name string) (*domain.Product, error) {
	var p domain.Product
	err := r.DB.QueryRow(`
		SELECT id, restaurant_id, name, COALESCE(description, ''), base_price, COALESCE(image_url, ''), created_at
		FROM products
		WHERE restaurant_id = $1 AND name = $2`, restaurantID, name).
		Scan(&p.ID, &p.RestaurantID, &p.Name, &p.Description, &p.BasePrice, &p.ImageURL, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) InsertProduct(product *domain.Product) error {
	return r.DB.QueryRow(`
		INSERT INTO products (restaurant_id, name, description, base_price, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		product.RestaurantID, product.Name, product.Description, product.BasePrice, product.ImageURL).
		Scan(&product.ID, &product.CreatedAt)
}

func (r *PostgresRepository) GetRoomsAndTables(restaurantID int) ([]domain.Room, []domain.Table, error) {
	roomRows, err := r.DB.Query(`
		SELECT id, restaurant_id, name
		FROM rooms
		WHERE restaurant_id = $1
		ORDER BY id`, restaurantID)
	if err != nil {
		return nil, nil, err
	}
	defer roomRows.Close()

	var rooms []domain.Room
	for roomRows.Next() {
		var room domain.Room
		if err := roomRows.Scan(&room.ID, &room.RestaurantID, &room.Name); err != nil {
			continue
		}
		rooms = append(rooms, room)
	}

	tableRows, err := r.DB.Query(`
		SELECT t.id, t.room_id, t.number
		FROM tables t
		JOIN rooms rm ON t.room_id = rm.id
		WHERE rm.restaurant_id = $1
		ORDER BY t.room_id, t.number`, restaurantID)
	if err != nil {
		return nil, nil, err
	}
	defer tableRows.Close()

	var tables []domain.Table
	for tableRows.Next() {
		var table domain.Table
		if err := tableRows.Scan(&table.ID, &table.RoomID, &table.Number); err != nil {
			continue
		}
		tables = append(tables, table)
	}

	return rooms, tables, nil
}

func (r *PostgresRepository) GetOrderSettings(restaurantID int) (*domain.OrderSettings, error) {
	var settings domain.OrderSettings
	err := r.DB.QueryRow(`
		SELECT orders_enabled, priority_enabled, priority_amount
		FROM restaurant_settings
		WHERE restaurant_id = $1`, restaurantID).
		Scan(&settings.OrdersEnabled, &settings.Priority.Enabled, &settings.Priority.SurchargeAmount)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *PostgresRepository) GetOrder(orderID int) (*domain.Order, error) {
	var order domain.Order
	if err := r.DB.QueryRow(`
		SELECT id, restaurant_id, table_number, room_id, COALESCE(customer_name, ''), COALESCE(customer_notes, ''), status, total_amount, is_priority_order, priority_amount, created_at
		FROM orders WHERE id = $1`, orderID).
		Scan(&order.ID, &order.RestaurantID, &order.TableNumber, &order.RoomID, &order.CustomerName,
			&order.CustomerNotes, &order.Status, &order.TotalAmount, &order.IsPriorityOrder,
			&order.PriorityAmount, &order.CreatedAt); err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT id, order_id, product_id, product_name, COALESCE(variant_title, ''), unit_price, quantity, subtotal, COALESCE(notes, '')
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.VariantTitle,
			&item.UnitPrice, &item.Quantity, &item.Subtotal, &item.Notes); err != nil {
			continue
		}
		order.Items = append(order.Items, item)
	}
	return &order, nil
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec(`UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode); err != nil {
		return nil, err
	}
	return qrCode, nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			restaurant_id INT NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			base_price NUMERIC(10,2) NOT NULL DEFAULT 0,
			image_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS variant_options (
			id SERIAL PRIMARY KEY,
			product_id INT NOT NULL REFERENCES products(id),
			name TEXT NOT NULL,
			position INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS option_values (
			id SERIAL PRIMARY KEY,
			option_id INT NOT NULL REFERENCES variant_options(id),
			value TEXT NOT NULL,
			position INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS variants (
			id SERIAL PRIMARY KEY,
			product_id INT NOT NULL REFERENCES products(id),
			title TEXT NOT NULL,
			price_override NUMERIC(10,2),
			option_values JSONB,
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			position INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS rooms (
			id SERIAL PRIMARY KEY,
			restaurant_id INT NOT NULL,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tables (
			id SERIAL PRIMARY KEY,
			room_id INT NOT NULL REFERENCES rooms(id),
			number INT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS restaurant_settings (
			restaurant_id INT PRIMARY KEY,
			orders_enabled BOOLEAN NOT NULL DEFAULT TRUE,
			priority_enabled BOOLEAN NOT NULL DEFAULT FALSE,
			priority_amount NUMERIC(10,2) NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			restaurant_id INT NOT NULL,
			table_number INT NOT NULL,
			room_id INT,
			customer_name TEXT,
			customer_notes TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			total_amount NUMERIC(10,2) NOT NULL,
			is_priority_order BOOLEAN NOT NULL DEFAULT FALSE,
			priority_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INT NOT NULL,
			product_id INT NOT NULL,
			product_name TEXT NOT NULL,
			variant_title TEXT,
			unit_price NUMERIC(10,2) NOT NULL,
			quantity INT NOT NULL,
			subtotal NUMERIC(10,2) NOT NULL,
			notes TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
