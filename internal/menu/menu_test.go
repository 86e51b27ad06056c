package menu

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func opt(typ, price string) Option {
	return Option{Type: typ, Price: decimal.RequireFromString(price)}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		item    MenuItem
		wantErr string
	}{
		{
			name: "valid item",
			item: MenuItem{Product: " Hamburguesa ", Group: "clasicas", Options: []Option{opt("Sencilla", "50"), opt("Doble", "70")}},
		},
		{
			name:    "missing product",
			item:    MenuItem{Group: GroupClasicas, Options: []Option{opt("Sencilla", "50")}},
			wantErr: "product",
		},
		{
			name:    "unknown group",
			item:    MenuItem{Product: "Pizza", Group: "PIZZAS", Options: []Option{opt("Grande", "90")}},
			wantErr: "group",
		},
		{
			name:    "no options",
			item:    MenuItem{Product: "Agua", Group: GroupBebidas},
			wantErr: "options",
		},
		{
			name:    "duplicate option type",
			item:    MenuItem{Product: "Papas", Group: GroupFritas, Options: []Option{opt("Chica", "20"), opt("Chica", "25")}},
			wantErr: "options[1].type",
		},
		{
			name:    "negative price",
			item:    MenuItem{Product: "Papas", Group: GroupFritas, Options: []Option{opt("Chica", "-1")}},
			wantErr: "options[0].price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.item)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected err: %v", err)
				}
				if got.Product != "Hamburguesa" || got.Group != GroupClasicas {
					t.Fatalf("not normalized: %+v", got)
				}
				return
			}
			var ve ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err=%v, want ValidationError", err)
			}
			if ve.Field != tt.wantErr {
				t.Fatalf("field=%s, want %s", ve.Field, tt.wantErr)
			}
		})
	}
}

func TestGrouped(t *testing.T) {
	items := []MenuItem{
		{ID: "1", Product: "Coca", Group: GroupBebidas},
		{ID: "2", Product: "Clasica", Group: GroupClasicas},
		{ID: "3", Product: "Queso", Group: GroupExtras},
		{ID: "4", Product: "Combo 1", Group: GroupCombos},
		{ID: "5", Product: "Tocino", Group: GroupExtras},
	}
	g := Grouped(items)
	if len(g.Sections) != len(DisplayGroups) {
		t.Fatalf("sections=%d", len(g.Sections))
	}
	if g.Sections[0].Group != GroupCombos || g.Sections[0].Items[0].ID != "4" {
		t.Fatalf("first section=%+v", g.Sections[0])
	}
	if len(g.Extras) != 2 || g.Extras[1].Product != "Tocino" {
		t.Fatalf("extras=%+v", g.Extras)
	}
	if _, ok := FindExtra(items, "Queso"); !ok {
		t.Fatalf("Queso not found")
	}
	if _, ok := FindExtra(items, "Coca"); ok {
		t.Fatalf("Coca is not an extra")
	}
}

func TestFileRepo_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewFileRepo(filepath.Join(t.TempDir(), "menu.json"))

	burger, err := repo.Add(ctx, MenuItem{Product: "Hamburguesa", Group: GroupClasicas, Options: []Option{opt("Sencilla", "50")}})
	if err != nil {
		t.Fatal(err)
	}
	if burger.ID == "" {
		t.Fatalf("id not assigned")
	}
	if _, err := repo.Add(ctx, burger); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("err=%v", err)
	}
	fries, err := repo.Add(ctx, MenuItem{Product: "Papas", Group: GroupFritas, Options: []Option{opt("Chica", "20")}})
	if err != nil {
		t.Fatal(err)
	}

	burger.Options = []Option{opt("Sencilla", "55")}
	all, err := repo.Update(ctx, []MenuItem{burger, {ID: "ghost", Product: "x"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("len=%d", len(all))
	}
	if !all[0].Options[0].Price.Equal(decimal.NewFromInt(55)) {
		t.Fatalf("price not updated: %+v", all[0])
	}

	if err := repo.Remove(ctx, fries.ID); err != nil {
		t.Fatal(err)
	}
	if err := repo.Remove(ctx, fries.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v", err)
	}
	left, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(left) != 1 || left[0].ID != burger.ID {
		t.Fatalf("left=%+v", left)
	}
}
