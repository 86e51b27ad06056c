package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/comandas/internal/httpx"
	"github.com/MikeMC777/comandas/internal/menu"
	"github.com/MikeMC777/comandas/internal/order"
	"github.com/MikeMC777/comandas/internal/pricing"
	"github.com/MikeMC777/comandas/internal/ticket"
)

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
	log.SetOutput(io.Discard)
}

//
// ---------- STUBS & FAKES ----------
//

// recordingPrinter implements order.Printer in memory.
type recordingPrinter struct {
	mu      sync.Mutex
	printed []string
	err     error
}

func (p *recordingPrinter) PrintOrder(ctx context.Context, o order.Order) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.printed = append(p.printed, o.ID)
	return nil
}

func (p *recordingPrinter) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.printed)
}

type testApp struct {
	router  *gin.Engine
	menus   *menu.FileRepo
	svc     *order.Service
	printer *recordingPrinter
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	dir := t.TempDir()
	lg := slog.New(slog.NewTextHandler(io.Discard, nil))
	printer := &recordingPrinter{}
	menus := menu.NewFileRepo(filepath.Join(dir, "menu.json"))
	svc := order.NewService(order.NewFileRepo(filepath.Join(dir, "orders.json")), printer, lg)
	t.Cleanup(svc.Wait)

	r := newRouter(routerDeps{
		log:       lg,
		menus:     menus,
		orders:    svc,
		drafts:    order.NewDraftStore(),
		formatter: ticket.Formatter{ShopName: "La Casita Azul"},
		width:     32,
	})
	return &testApp{router: r, menus: menus, svc: svc, printer: printer}
}

func (a *testApp) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("invalid json: %v body=%s", err, w.Body.String())
	}
	return v
}

func seedMenu(t *testing.T, a *testApp) (burger, cheese menu.MenuItem) {
	t.Helper()
	ctx := context.Background()
	var err error
	burger, err = a.menus.Add(ctx, menu.MenuItem{Product: "Hamburguesa", Group: menu.GroupClasicas, Options: []menu.Option{
		{Type: "Sencilla", Price: decimal.RequireFromString("50")},
		{Type: "Doble", Price: decimal.RequireFromString("70")},
	}})
	if err != nil {
		t.Fatal(err)
	}
	cheese, err = a.menus.Add(ctx, menu.MenuItem{Product: "Queso", Group: menu.GroupExtras, Options: []menu.Option{
		{Type: "Porcion", Price: decimal.RequireFromString("5")},
	}})
	if err != nil {
		t.Fatal(err)
	}
	return burger, cheese
}

const orderBody = `{
	"customerName": "Juan Perez",
	"address": "Calle Falsa 123",
	"phone": "555-1234",
	"paymentMethod": ["Efectivo"],
	"discount": 10,
	"totalPrice": "1.00",
	"items": [
		{"product": "Hamburguesa", "selectedOption": "Sencilla", "selectedPrice": 50,
		 "extras": [{"product": "Queso", "price": 5}], "quantity": 2, "finalPrice": 1},
		{"product": "Papas", "selectedOption": "Chica", "selectedPrice": "30", "extras": [], "quantity": 1}
	]
}`

//
// ---------- MENU ----------
//

func TestMenu_AddUpdateRemove(t *testing.T) {
	a := newTestApp(t)

	w := a.do(t, http.MethodPost, "/menu/add", `{"product":" Combo 1 ","group":"combos","options":[{"type":"Normal","price":"120.50"}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	added := decode[menu.MenuItem](t, w)
	if added.ID == "" || added.Product != "Combo 1" || added.Group != menu.GroupCombos {
		t.Fatalf("added=%+v", added)
	}

	added.Description = "Hamburguesa, papas y bebida"
	body, _ := json.Marshal(menu.UpdateRequest{UpdatedItems: []menu.MenuItem{added}})
	w = a.do(t, http.MethodPost, "/menu/update", string(body))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	all := decode[[]menu.MenuItem](t, w)
	if len(all) != 1 || all[0].Description != added.Description {
		t.Fatalf("all=%+v", all)
	}

	w = a.do(t, http.MethodPost, "/menu/remove", fmt.Sprintf(`{"id":%q}`, added.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	w = a.do(t, http.MethodPost, "/menu/remove", fmt.Sprintf(`{"id":%q}`, added.ID))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s (want 404)", w.Code, w.Body.String())
	}

	w = a.do(t, http.MethodGet, "/menu", "")
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestMenu_AddInvalid(t *testing.T) {
	a := newTestApp(t)
	tests := []struct {
		name string
		body string
	}{
		{"bad json", `{`},
		{"no product", `{"group":"COMBOS","options":[{"type":"Normal","price":"1"}]}`},
		{"unknown group", `{"product":"X","group":"SOPAS","options":[{"type":"Normal","price":"1"}]}`},
		{"no options", `{"product":"X","group":"COMBOS","options":[]}`},
		{"negative price", `{"product":"X","group":"COMBOS","options":[{"type":"Normal","price":"-1"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := a.do(t, http.MethodPost, "/menu/add", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status=%d body=%s (want 400)", w.Code, w.Body.String())
			}
		})
	}
}

func TestMenu_Groups(t *testing.T) {
	a := newTestApp(t)
	seedMenu(t, a)

	w := a.do(t, http.MethodGet, "/menu/groups", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	g := decode[menu.GroupedResponse](t, w)
	if len(g.Extras) != 1 || g.Extras[0].Product != "Queso" {
		t.Fatalf("extras=%+v", g.Extras)
	}
}

//
// ---------- ORDERS ----------
//

func TestPlaceOrder_HappyPath(t *testing.T) {
	a := newTestApp(t)

	w := a.do(t, http.MethodPost, "/orders/add", orderBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	placed := decode[order.Order](t, w)
	// (50+5)*2 + 30 = 140, minus 10%
	if pricing.Display(placed.TotalPrice) != "126.00" {
		t.Fatalf("total=%s", placed.TotalPrice)
	}
	if pricing.Display(placed.Items[0].FinalPrice) != "110.00" {
		t.Fatalf("finalPrice=%s", placed.Items[0].FinalPrice)
	}

	a.svc.Wait()
	if a.printer.count() != 1 {
		t.Fatalf("printed=%d", a.printer.count())
	}

	w = a.do(t, http.MethodGet, "/orders/"+placed.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	w = a.do(t, http.MethodGet, "/orders?limit=5", "")
	if list := decode[[]order.Order](t, w); len(list) != 1 || list[0].ID != placed.ID {
		t.Fatalf("list=%+v", list)
	}
}

func TestPlaceOrder_Invalid(t *testing.T) {
	a := newTestApp(t)
	tests := []struct {
		name string
		body string
	}{
		{"no items", `{"customerName":"A","address":"B","paymentMethod":["QR"],"items":[]}`},
		{"no payment", strings.Replace(orderBody, `["Efectivo"]`, `[]`, 1)},
		{"bad discount", strings.Replace(orderBody, `"discount": 10`, `"discount": 12`, 1)},
		{"zero quantity", strings.Replace(orderBody, `"quantity": 2`, `"quantity": 0`, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := a.do(t, http.MethodPost, "/orders/add", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status=%d body=%s (want 400)", w.Code, w.Body.String())
			}
		})
	}
	a.svc.Wait()
	if a.printer.count() != 0 {
		t.Fatalf("rejected orders were printed")
	}
}

func TestPlaceOrder_PrintFailureStillCreated(t *testing.T) {
	a := newTestApp(t)
	a.printer.err = errors.New("device not found")

	w := a.do(t, http.MethodPost, "/orders/add", orderBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	placed := decode[order.Order](t, w)
	a.svc.Wait()

	w = a.do(t, http.MethodPost, "/orders/"+placed.ID+"/print", "")
	if w.Code != http.StatusInternalServerError && w.Code != http.StatusBadGateway {
		t.Fatalf("status=%d body=%s (reprint must report the failure)", w.Code, w.Body.String())
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	a := newTestApp(t)
	for _, path := range []string{"/orders/missing", "/orders/missing/ticket"} {
		w := a.do(t, http.MethodGet, path, "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("%s status=%d body=%s (want 404)", path, w.Code, w.Body.String())
		}
	}
}

func TestOrderTicket(t *testing.T) {
	a := newTestApp(t)
	placed := decode[order.Order](t, a.do(t, http.MethodPost, "/orders/add", orderBody))

	w := a.do(t, http.MethodGet, "/orders/"+placed.ID+"/ticket", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	for _, want := range []string{"La Casita Azul", "Descuento: 10%", "Total: $126.00"} {
		if !strings.Contains(w.Body.String(), want) {
			t.Fatalf("ticket missing %q:\n%s", want, w.Body.String())
		}
	}

	w = a.do(t, http.MethodGet, "/orders/"+placed.ID+"/ticket?format=json", "")
	var lines []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &lines); err != nil || len(lines) == 0 {
		t.Fatalf("lines err=%v body=%s", err, w.Body.String())
	}
	if lines[0]["align"] != "center" {
		t.Fatalf("header=%v", lines[0])
	}
}

//
// ---------- PRICING & DRAFTS ----------
//

func TestQuote(t *testing.T) {
	a := newTestApp(t)
	burger, _ := seedMenu(t, a)

	body := fmt.Sprintf(`{"menuItemId":%q,"option":"Doble","extras":[{"product":"Queso"}],"quantity":3}`, burger.ID)
	w := a.do(t, http.MethodPost, "/pricing/quote", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	q := decode[order.QuoteResponse](t, w)
	if pricing.Display(q.UnitPrice) != "75.00" || pricing.Display(q.Item.FinalPrice) != "225.00" {
		t.Fatalf("quote=%+v", q)
	}

	w = a.do(t, http.MethodPost, "/pricing/quote", `{"menuItemId":"nope"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s (want 404)", w.Code, w.Body.String())
	}
	w = a.do(t, http.MethodPost, "/pricing/quote", fmt.Sprintf(`{"menuItemId":%q,"quantity":-1}`, burger.ID))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s (want 400)", w.Code, w.Body.String())
	}
}

func TestDraft_ComposeAndSubmit(t *testing.T) {
	a := newTestApp(t)
	burger, _ := seedMenu(t, a)

	d := decode[order.DraftView](t, a.do(t, http.MethodPost, "/drafts", ""))
	base := "/drafts/" + d.ID

	add := fmt.Sprintf(`{"menuItemId":%q,"extras":[{"product":"Queso"}]}`, burger.ID)
	a.do(t, http.MethodPost, base+"/items", add)
	w := a.do(t, http.MethodPost, base+"/items", add)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	v := decode[order.DraftView](t, w)
	if len(v.Items) != 1 || v.Items[0].Quantity != 2 || pricing.Display(v.Subtotal) != "110.00" {
		t.Fatalf("draft=%+v", v)
	}

	w = a.do(t, http.MethodPut, base+"/items/0", `{"quantity":4}`)
	v = decode[order.DraftView](t, w)
	if pricing.Display(v.Subtotal) != "220.00" {
		t.Fatalf("subtotal=%s", v.Subtotal)
	}
	if w := a.do(t, http.MethodPut, base+"/items/3", `{"quantity":1}`); w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s (want 400)", w.Code, w.Body.String())
	}

	w = a.do(t, http.MethodPut, base, `{"customerName":"Ana","address":"Calle 1","paymentMethod":["QR"],"discount":25}`)
	v = decode[order.DraftView](t, w)
	if pricing.Display(v.Total) != "165.00" {
		t.Fatalf("total=%s", v.Total)
	}

	w = a.do(t, http.MethodGet, base+"/ticket", "")
	if !strings.Contains(w.Body.String(), "Total: $165.00") {
		t.Fatalf("ticket:\n%s", w.Body.String())
	}

	w = a.do(t, http.MethodPost, base+"/submit", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if placed := decode[order.Order](t, w); pricing.Display(placed.TotalPrice) != "165.00" {
		t.Fatalf("total=%s", placed.TotalPrice)
	}
	if w := a.do(t, http.MethodGet, base, ""); w.Code != http.StatusNotFound {
		t.Fatalf("submitted draft still open: status=%d", w.Code)
	}
	if w := a.do(t, http.MethodPost, base+"/submit", ""); w.Code != http.StatusNotFound {
		t.Fatalf("draft submitted twice: status=%d body=%s", w.Code, w.Body.String())
	}
	a.svc.Wait()
	if a.printer.count() != 1 {
		t.Fatalf("printed=%d", a.printer.count())
	}
}

func TestDraft_Reset(t *testing.T) {
	a := newTestApp(t)
	burger, _ := seedMenu(t, a)

	d := decode[order.DraftView](t, a.do(t, http.MethodPost, "/drafts", ""))
	base := "/drafts/" + d.ID
	a.do(t, http.MethodPost, base+"/items", fmt.Sprintf(`{"menuItemId":%q}`, burger.ID))
	a.do(t, http.MethodPut, base, `{"customerName":"Ana","paymentMethod":["QR"],"discount":10}`)

	w := a.do(t, http.MethodPost, base+"/reset", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	v := decode[order.DraftView](t, w)
	if v.ID != d.ID || v.CustomerName != "" || len(v.Items) != 0 || len(v.PaymentMethod) != 0 || v.Discount != 0 {
		t.Fatalf("draft=%+v", v)
	}
	if !v.Total.IsZero() {
		t.Fatalf("total=%s", v.Total)
	}

	if w := a.do(t, http.MethodPost, "/drafts/missing/reset", ""); w.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s (want 404)", w.Code, w.Body.String())
	}
}

func TestDraft_SubmitIncompleteKeepsDraft(t *testing.T) {
	a := newTestApp(t)
	d := decode[order.DraftView](t, a.do(t, http.MethodPost, "/drafts", ""))

	w := a.do(t, http.MethodPost, "/drafts/"+d.ID+"/submit", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s (want 400)", w.Code, w.Body.String())
	}
	if w := a.do(t, http.MethodGet, "/drafts/"+d.ID, ""); w.Code != http.StatusOK {
		t.Fatalf("draft lost after failed submit: status=%d", w.Code)
	}
	if w := a.do(t, http.MethodDelete, "/drafts/"+d.ID, ""); w.Code != http.StatusNoContent {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestBinding_ErrorsNameFields(t *testing.T) {
	a := newTestApp(t)
	d := decode[order.DraftView](t, a.do(t, http.MethodPost, "/drafts", ""))

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   string
	}{
		{"remove without id", http.MethodPost, "/menu/remove", `{}`, "id is required"},
		{"menu option without type", http.MethodPost, "/menu/add",
			`{"product":"X","group":"COMBOS","options":[{"price":"1"}]}`, "options[0].type is required"},
		{"zero draft quantity", http.MethodPut, "/drafts/" + d.ID + "/items/0", `{"quantity":0}`, "quantity must be at least 1"},
		{"unknown payment method", http.MethodPost, "/orders/add",
			strings.Replace(orderBody, `["Efectivo"]`, `["Tarjeta"]`, 1), "paymentMethod[0] must be one of Efectivo, QR"},
		{"order line without quantity", http.MethodPost, "/orders/add",
			strings.Replace(orderBody, `"quantity": 2`, `"quantity": 0`, 1), "items[0].quantity must be at least 1"},
		{"draft discount", http.MethodPut, "/drafts/" + d.ID, `{"discount":12}`, "discount must be one of 0, 5, 10, 15, 20, 25"},
		{"draft item without product", http.MethodPost, "/drafts/" + d.ID + "/items", `{"option":"Doble"}`, "menuItemId is required"},
		{"malformed", http.MethodPost, "/menu/remove", `{"id":`, "invalid json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := a.do(t, tt.method, tt.path, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status=%d body=%s (want 400)", w.Code, w.Body.String())
			}
			if got := decode[httpx.HTTPError](t, w).Error; !strings.Contains(got, tt.want) {
				t.Fatalf("error=%q, want %q", got, tt.want)
			}
		})
	}
}

func TestHealthz(t *testing.T) {
	a := newTestApp(t)
	w := a.do(t, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK || w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("status=%d rid=%q", w.Code, w.Header().Get("X-Request-ID"))
	}
}
