// File: internal/menu/repo.go
// Repository interface for the menu plus its JSON file and PostgreSQL
// implementations.
package menu

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeMC777/comandas/internal/storage"
	"github.com/MikeMC777/comandas/internal/storage/jsonfile"
)

var (
	ErrNotFound      = errors.New("menu item not found")
	ErrAlreadyExists = errors.New("menu item already exists")
)

// Repository persists the menu. Implementations serialize their writers.
type Repository interface {
	List(ctx context.Context) ([]MenuItem, error)
	// Add stores item, assigning an id when it has none.
	Add(ctx context.Context, item MenuItem) (MenuItem, error)
	// Update replaces every stored item whose id matches one in items and
	// returns the whole menu. Unknown ids are ignored.
	Update(ctx context.Context, items []MenuItem) ([]MenuItem, error)
	Remove(ctx context.Context, id string) error
}

func ensureID(item *MenuItem) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
}

// FileRepo keeps the menu in a JSON array file.
type FileRepo struct{ file *jsonfile.Collection[MenuItem] }

func NewFileRepo(path string) *FileRepo {
	return &FileRepo{file: jsonfile.NewCollection[MenuItem](path)}
}

func (r *FileRepo) List(ctx context.Context) ([]MenuItem, error) {
	return r.file.Load(ctx)
}

func (r *FileRepo) Add(ctx context.Context, item MenuItem) (MenuItem, error) {
	ensureID(&item)
	err := r.file.Mutate(ctx, func(items []MenuItem) ([]MenuItem, error) {
		if _, ok := Find(items, item.ID); ok {
			return nil, ErrAlreadyExists
		}
		return append(items, item), nil
	})
	if err != nil {
		return MenuItem{}, err
	}
	return item, nil
}

func (r *FileRepo) Update(ctx context.Context, updated []MenuItem) ([]MenuItem, error) {
	var out []MenuItem
	err := r.file.Mutate(ctx, func(items []MenuItem) ([]MenuItem, error) {
		for i, it := range items {
			if u, ok := Find(updated, it.ID); ok {
				items[i] = u
			}
		}
		out = items
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *FileRepo) Remove(ctx context.Context, id string) error {
	return r.file.Mutate(ctx, func(items []MenuItem) ([]MenuItem, error) {
		out := items[:0]
		found := false
		for _, it := range items {
			if it.ID == id {
				found = true
				continue
			}
			out = append(out, it)
		}
		if !found {
			return nil, ErrNotFound
		}
		return out, nil
	})
}

// PGRepo keeps one row per menu item; options are a JSONB column.
type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) List(ctx context.Context) ([]MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, storage.Timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `
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
			opts []byte
		)
		if err := rows.Scan(&it.ID, &it.Product, &it.Description, &it.Group, &opts); err != nil {
			return nil, storage.Wrap("scan menu", err)
		}
		if err := json.Unmarshal(opts, &it.Options); err != nil {
			return nil, storage.Wrap("parse menu options", err)
		}
		out = append(out, it)
	}
	return out, storage.Wrap("list menu", rows.Err())
}

func (r *PGRepo) Add(ctx context.Context, item MenuItem) (MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, storage.Timeout)
	defer cancel()

	ensureID(&item)
	opts, err := json.Marshal(item.Options)
	if err != nil {
		return MenuItem{}, storage.Wrap("encode menu options", err)
	}
	tag, err := r.db.Exec(ctx, `
		INSERT INTO menu_items (id, product, description, item_group, options, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,NOW(),NOW())
		ON CONFLICT (id) DO NOTHING
	`, item.ID, item.Product, item.Description, string(item.Group), opts)
	if err != nil {
		return MenuItem{}, storage.Wrap("add menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return MenuItem{}, ErrAlreadyExists
	}
	return item, nil
}

func (r *PGRepo) Update(ctx context.Context, items []MenuItem) ([]MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, storage.Timeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, storage.Wrap("update menu", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, it := range items {
		opts, err := json.Marshal(it.Options)
		if err != nil {
			return nil, storage.Wrap("encode menu options", err)
		}
		if _, err := tx.Exec(ctx, `
			UPDATE menu_items
			SET product = $2, description = $3, item_group = $4, options = $5, updated_at = NOW()
			WHERE id = $1
		`, it.ID, it.Product, it.Description, string(it.Group), opts); err != nil {
			return nil, storage.Wrap("update menu item", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, storage.Wrap("update menu", err)
	}
	return r.List(ctx)
}

func (r *PGRepo) Remove(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, storage.Timeout)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id=$1`, id)
	if err != nil {
		return storage.Wrap("remove menu item", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
