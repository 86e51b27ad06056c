package pricing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestLinePrice(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		extras  []string
		qty     int
		want    string
		wantErr error
	}{
		{name: "no extras", base: "50", qty: 1, want: "50"},
		{name: "extras times quantity", base: "50", extras: []string{"5", "7.5"}, qty: 2, want: "125"},
		{name: "cents stay exact", base: "0.10", extras: []string{"0.20"}, qty: 3, want: "0.9"},
		{name: "zero quantity", base: "50", qty: 0, wantErr: ErrInvalidQuantity},
		{name: "negative quantity", base: "50", qty: -2, wantErr: ErrInvalidQuantity},
		{name: "negative base", base: "-1", qty: 1, wantErr: ErrNegativePrice},
		{name: "negative extra", base: "1", extras: []string{"-0.5"}, qty: 1, wantErr: ErrNegativePrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var extras []decimal.Decimal
			for _, e := range tt.extras {
				extras = append(extras, d(e))
			}
			got, err := LinePrice(d(tt.base), extras, tt.qty)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err=%v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if !got.Equal(d(tt.want)) {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestLinePrice_Monotonic(t *testing.T) {
	base := d("12.50")
	prev := decimal.Zero
	for q := 1; q <= 10; q++ {
		got, err := LinePrice(base, []decimal.Decimal{d("1.25")}, q)
		if err != nil {
			t.Fatal(err)
		}
		if got.LessThan(prev) {
			t.Fatalf("q=%d: %s < %s", q, got, prev)
		}
		prev = got
	}

	prev = decimal.Zero
	for _, extra := range []string{"0", "0.01", "1", "3.5", "100"} {
		got, err := LinePrice(base, []decimal.Decimal{d(extra)}, 2)
		if err != nil {
			t.Fatal(err)
		}
		if got.LessThan(prev) {
			t.Fatalf("extra=%s: %s < %s", extra, got, prev)
		}
		prev = got
	}
}

func TestOrderTotal(t *testing.T) {
	lines := []decimal.Decimal{d("120"), d("80")}
	for _, tt := range []struct {
		pct  int
		want string
	}{
		{0, "200"}, {5, "190"}, {10, "180"}, {15, "170"}, {20, "160"}, {25, "150"},
	} {
		got, err := OrderTotal(lines, tt.pct)
		if err != nil {
			t.Fatalf("pct=%d: %v", tt.pct, err)
		}
		if !got.Equal(d(tt.want)) {
			t.Fatalf("pct=%d: got %s, want %s", tt.pct, got, tt.want)
		}
		if Display(got) != d(tt.want).StringFixed(2) {
			t.Fatalf("display=%s", Display(got))
		}
	}
}

func TestOrderTotal_MatchesFormula(t *testing.T) {
	lines := []decimal.Decimal{d("33.33"), d("0.01"), d("17.99")}
	sum := Sum(lines)
	for _, pct := range Discounts {
		got, err := OrderTotal(lines, pct)
		if err != nil {
			t.Fatal(err)
		}
		want := sum.Mul(decimal.NewFromInt(int64(100 - pct))).Div(decimal.NewFromInt(100))
		if !got.Equal(want) {
			t.Fatalf("pct=%d: got %s, want %s", pct, got, want)
		}
		if got.IsNegative() {
			t.Fatalf("pct=%d: negative total %s", pct, got)
		}
	}
}

func TestOrderTotal_InvalidDiscount(t *testing.T) {
	for _, pct := range []int{-5, 1, 7, 30, 100} {
		if _, err := OrderTotal([]decimal.Decimal{d("10")}, pct); !errors.Is(err, ErrInvalidDiscount) {
			t.Fatalf("pct=%d: err=%v", pct, err)
		}
	}
}

func TestOrderTotal_Empty(t *testing.T) {
	got, err := OrderTotal(nil, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsZero() {
		t.Fatalf("got %s", got)
	}
}

func TestAdjustQuantity(t *testing.T) {
	unit, err := UnitPrice(d("50"), []decimal.Decimal{d("5")})
	if err != nil {
		t.Fatal(err)
	}
	final, delta, err := AdjustQuantity(unit, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !final.Equal(d("165")) {
		t.Fatalf("final=%s", final)
	}
	if !delta.Equal(d("110")) {
		t.Fatalf("delta=%s", delta)
	}

	final, delta, err = AdjustQuantity(unit, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !final.Equal(d("110")) || !delta.Equal(d("-55")) {
		t.Fatalf("final=%s delta=%s", final, delta)
	}

	if _, _, err := AdjustQuantity(unit, 1, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("err=%v", err)
	}
}
