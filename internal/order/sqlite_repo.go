package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/MikeMC777/comandas/internal/storage"
)

// SQLiteRepo stores orders in the local SQLite database.
type SQLiteRepo struct{ db *sql.DB }

func NewSQLiteRepo(db *sql.DB) *SQLiteRepo { return &SQLiteRepo{db: db} }

func (r *SQLiteRepo) Append(ctx context.Context, o Order) error {
	ctx, cancel := context.WithTimeout(ctx, storage.Timeout)
	defer cancel()

	payload, err := json.Marshal(o)
	if err != nil {
		return storage.Wrap("encode order", err)
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO orders (id, customer_name, total, discount, payload, created_at)
		VALUES (?,?,?,?,?,?)
		ON CONFLICT (id) DO NOTHING
	`, o.ID, o.CustomerName, o.TotalPrice.StringFixed(2), o.Discount, string(payload), o.CreatedAt.UTC().UnixMilli())
	if err != nil {
		return storage.Wrap("append order", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAlreadyExists
	}
	return nil
}

func (r *SQLiteRepo) List(ctx context.Context, limit, offset int) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, storage.Timeout)
	defer cancel()

	limit, offset = clampPage(limit, offset)
	rows, err := r.db.QueryContext(ctx, `
		SELECT payload FROM orders
		ORDER BY seq DESC LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, storage.Wrap("list orders", err)
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, storage.Wrap("scan order", err)
		}
		var o Order
		if err := json.Unmarshal([]byte(payload), &o); err != nil {
			return nil, storage.Wrap("parse order", err)
		}
		out = append(out, o)
	}
	return out, storage.Wrap("list orders", rows.Err())
}

func (r *SQLiteRepo) Get(ctx context.Context, id string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, storage.Timeout)
	defer cancel()

	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM orders WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storage.Wrap("get order", err)
	}
	var o Order
	if err := json.Unmarshal([]byte(payload), &o); err != nil {
		return nil, storage.Wrap("parse order", err)
	}
	return &o, nil
}
