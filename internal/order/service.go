package order

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MikeMC777/comandas/internal/pricing"
)

var ErrNoPrinter = errors.New("no printer configured")

// Printer sends an order to the receipt printer.
type Printer interface {
	PrintOrder(ctx context.Context, o Order) error
}

// PrintTimeout bounds one background print job.
const PrintTimeout = 30 * time.Second

// Service places orders: it validates and prices them, appends them to the
// repository and then prints the ticket.
//
// Printing is best effort. It starts only after the order is stored, runs in
// the background and its failure is logged, never reported to the caller: an
// order whose ticket did not print is still placed.
type Service struct {
	repo    Repository
	printer Printer
	log     *slog.Logger
	now     func() time.Time

	wg sync.WaitGroup
}

func NewService(repo Repository, printer Printer, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, printer: printer, log: log, now: time.Now}
}

// Place validates o, computes its total, stores it and queues its ticket.
// The stored order is returned.
func (s *Service) Place(ctx context.Context, o Order) (Order, error) {
	o.CustomerName = strings.TrimSpace(o.CustomerName)
	o.Address = strings.TrimSpace(o.Address)
	o.Phone = strings.TrimSpace(o.Phone)
	o.Comments = strings.TrimSpace(o.Comments)

	if err := Validate(&o); err != nil {
		return Order{}, err
	}
	total, err := pricing.OrderTotal(finalPrices(o.Items), o.Discount)
	if err != nil {
		return Order{}, ValidationError{Field: "totalPrice", Message: err.Error()}
	}
	o.TotalPrice = total
	o.ID = uuid.NewString()
	o.CreatedAt = s.now().UTC()

	if err := s.repo.Append(ctx, o); err != nil {
		s.log.Error("order append failed", "order_id", o.ID, "err", err)
		return Order{}, err
	}
	s.log.Info("order placed",
		"order_id", o.ID,
		"items", len(o.Items),
		"discount", o.Discount,
		"total", pricing.Display(o.TotalPrice),
	)

	s.printAsync(o)
	return o, nil
}

func (s *Service) printAsync(o Order) {
	if s.printer == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), PrintTimeout)
		defer cancel()
		if err := s.printer.PrintOrder(ctx, o); err != nil {
			s.log.Error("ticket print failed", "order_id", o.ID, "err", err)
			return
		}
		s.log.Info("ticket printed", "order_id", o.ID)
	}()
}

// Reprint prints the ticket of a stored order again, synchronously, and
// reports the outcome.
func (s *Service) Reprint(ctx context.Context, id string) error {
	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if s.printer == nil {
		return ErrNoPrinter
	}
	if err := s.printer.PrintOrder(ctx, *o); err != nil {
		s.log.Error("ticket reprint failed", "order_id", id, "err", err)
		return err
	}
	return nil
}

// Get returns a stored order.
func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	return s.repo.Get(ctx, id)
}

// List returns stored orders, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Order, error) {
	return s.repo.List(ctx, limit, offset)
}

// Wait blocks until queued tickets finish printing.
func (s *Service) Wait() { s.wg.Wait() }
