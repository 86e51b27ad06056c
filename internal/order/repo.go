package order

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeMC777/comandas/internal/storage"
	"github.com/MikeMC777/comandas/internal/storage/jsonfile"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrAlreadyExists = errors.New("order already exists")
)

// Repository stores submitted orders. Orders are appended once and never
// updated or deleted.
type Repository interface {
	Append(ctx context.Context, o Order) error
	// List returns the newest orders first.
	List(ctx context.Context, limit, offset int) ([]Order, error)
	Get(ctx context.Context, id string) (*Order, error)
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// FileRepo keeps every order in one JSON array file.
type FileRepo struct{ file *jsonfile.Collection[Order] }

func NewFileRepo(path string) *FileRepo {
	return &FileRepo{file: jsonfile.NewCollection[Order](path)}
}

func (r *FileRepo) Append(ctx context.Context, o Order) error {
	return r.file.Mutate(ctx, func(orders []Order) ([]Order, error) {
		for _, prev := range orders {
			if prev.ID == o.ID {
				return nil, ErrAlreadyExists
			}
		}
		return append(orders, o), nil
	})
}

func (r *FileRepo) List(ctx context.Context, limit, offset int) ([]Order, error) {
	limit, offset = clampPage(limit, offset)
	orders, err := r.file.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := []Order{}
	for i := len(orders) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, orders[i])
	}
	return out, nil
}

func (r *FileRepo) Get(ctx context.Context, id string) (*Order, error) {
	orders, err := r.file.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, ErrNotFound
}

// PGRepo stores each order as a row with the full order in a JSONB column.
type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Append(ctx context.Context, o Order) error {
	ctx, cancel := context.WithTimeout(ctx, storage.Timeout)
	defer cancel()

	payload, err := json.Marshal(o)
	if err != nil {
		return storage.Wrap("encode order", err)
	}
	tag, err := r.db.Exec(ctx, `
		INSERT INTO orders (id, customer_name, total, discount, payload, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO NOTHING
	`, o.ID, o.CustomerName, o.TotalPrice.StringFixed(2), o.Discount, payload, o.CreatedAt)
	if err != nil {
		return storage.Wrap("append order", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAlreadyExists
	}
	return nil
}

func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, storage.Timeout)
	defer cancel()

	limit, offset = clampPage(limit, offset)
	rows, err := r.db.Query(ctx, `
		SELECT payload FROM orders
		ORDER BY seq DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, storage.Wrap("list orders", err)
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, storage.Wrap("scan order", err)
		}
		var o Order
		if err := json.Unmarshal(payload, &o); err != nil {
			return nil, storage.Wrap("parse order", err)
		}
		out = append(out, o)
	}
	return out, storage.Wrap("list orders", rows.Err())
}

func (r *PGRepo) Get(ctx context.Context, id string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, storage.Timeout)
	defer cancel()

	var payload []byte
	err := r.db.QueryRow(ctx, `SELECT payload FROM orders WHERE id=$1`, id).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storage.Wrap("get order", err)
	}
	var o Order
	if err := json.Unmarshal(payload, &o); err != nil {
		return nil, storage.Wrap("parse order", err)
	}
	return &o, nil
}
