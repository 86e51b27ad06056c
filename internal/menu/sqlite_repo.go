package menu

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/MikeMC777/comandas/internal/storage"
)

// SQLiteRepo is the Postgres layout on a local SQLite file.
type SQLiteRepo struct{ db *sql.DB }

func NewSQLiteRepo(db *sql.DB) *SQLiteRepo { return &SQLiteRepo{db: db} }

func (r *SQLiteRepo) List(ctx context.Context) ([]MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, storage.Timeout)
	defer cancel()
	return listSQLite(ctx, r.db)
}

type sqlQueryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func listSQLite(ctx context.Context, q sqlQueryer) ([]MenuItem, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, product, description, item_group, options
		FROM menu_items
		ORDER BY seq
	`)
	if err != nil {
		return nil, storage.Wrap("list menu", err)
	}
	defer rows.Close()

	out := []MenuItem{}
	for rows.Next() {
		var (
			it   MenuItem
			opts string
		)
		if err := rows.Scan(&it.ID, &it.Product, &it.Description, &it.Group, &opts); err != nil {
			return nil, storage.Wrap("scan menu", err)
		}
		if err := json.Unmarshal([]byte(opts), &it.Options); err != nil {
			return nil, storage.Wrap("parse menu options", err)
		}
		out = append(out, it)
	}
	return out, storage.Wrap("list menu", rows.Err())
}

func (r *SQLiteRepo) Add(ctx context.Context, item MenuItem) (MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, storage.Timeout)
	defer cancel()

	ensureID(&item)
	opts, err := json.Marshal(item.Options)
	if err != nil {
		return MenuItem{}, storage.Wrap("encode menu options", err)
	}
	now := time.Now().UTC().UnixMilli()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO menu_items (id, product, description, item_group, options, created_at, updated_at)
		VALUES (?,?,?,?,?,?,?)
		ON CONFLICT (id) DO NOTHING
	`, item.ID, item.Product, item.Description, string(item.Group), string(opts), now, now)
	if err != nil {
		return MenuItem{}, storage.Wrap("add menu item", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return MenuItem{}, ErrAlreadyExists
	}
	return item, nil
}

func (r *SQLiteRepo) Update(ctx context.Context, items []MenuItem) ([]MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, storage.Timeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storage.Wrap("update menu", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().UnixMilli()
	for _, it := range items {
		opts, err := json.Marshal(it.Options)
		if err != nil {
			return nil, storage.Wrap("encode menu options", err)
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE menu_items
			SET product = ?, description = ?, item_group = ?, options = ?, updated_at = ?
			WHERE id = ?
		`, it.Product, it.Description, string(it.Group), string(opts), now, it.ID); err != nil {
			return nil, storage.Wrap("update menu item", err)
		}
	}
	out, err := listSQLite(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, storage.Wrap("update menu", err)
	}
	return out, nil
}

func (r *SQLiteRepo) Remove(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, storage.Timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = ?`, id)
	if err != nil {
		return storage.Wrap("remove menu item", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
