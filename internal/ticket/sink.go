package ticket

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/MikeMC777/comandas/internal/order"
)

// ErrPrintFailed wraps every failure to open, write to or cut on a printer.
var ErrPrintFailed = errors.New("print failed")

func printFailed(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPrintFailed, op, err)
}

// Sink receives a formatted ticket.
type Sink interface {
	Print(ctx context.Context, lines []Line) error
}

// NopSink discards tickets.
type NopSink struct{}

func (NopSink) Print(context.Context, []Line) error { return nil }

// TextFileSink appends the plain-text rendering of each ticket to a file.
type TextFileSink struct {
	Path  string
	Width int

	mu sync.Mutex
}

func (s *TextFileSink) Print(ctx context.Context, lines []Line) error {
	if err := ctx.Err(); err != nil {
		return printFailed("text sink", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return printFailed("open "+s.Path, err)
	}
	defer f.Close()
	if _, err := io.WriteString(f, Render(lines, s.Width)+"\n"); err != nil {
		return printFailed("write "+s.Path, err)
	}
	return nil
}

type Device string

const (
	DeviceUSB     Device = "usb"
	DeviceNetwork Device = "network"
	DeviceFile    Device = "file"
)

// Printer is an ESC/POS receipt printer. Jobs are sent one at a time; the
// device is opened for each job and closed after the cut.
type Printer struct {
	Device  Device
	Address string
	Port    int
	Width   int
	Timeout time.Duration

	mu sync.Mutex
}

func (p *Printer) Print(ctx context.Context, lines []Line) error {
	job, err := Encode(lines, p.Width)
	if err != nil {
		return printFailed("encode", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	w, err := p.open(ctx)
	if err != nil {
		return printFailed("open "+string(p.Device), err)
	}
	if _, err := w.Write(job); err != nil {
		w.Close()
		return printFailed("write", err)
	}
	if err := w.Close(); err != nil {
		return printFailed("close", err)
	}
	return nil
}

func (p *Printer) open(ctx context.Context) (io.WriteCloser, error) {
	switch p.Device {
	case DeviceUSB:
		return os.OpenFile(p.Address, os.O_WRONLY, 0)
	case DeviceFile:
		return os.OpenFile(p.Address, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	case DeviceNetwork:
		timeout := p.Timeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		port := p.Port
		if port == 0 {
			port = 9100
		}
		d := net.Dialer{Timeout: timeout}
		conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(p.Address, strconv.Itoa(port)))
		if err != nil {
			return nil, err
		}
		if deadline, ok := ctx.Deadline(); ok {
			_ = conn.SetWriteDeadline(deadline)
		}
		return conn, nil
	default:
		return nil, fmt.Errorf("unsupported printer device %q", p.Device)
	}
}

// OrderPrinter formats orders and hands them to a sink.
type OrderPrinter struct {
	Formatter Formatter
	Sink      Sink
}

func (p OrderPrinter) PrintOrder(ctx context.Context, o order.Order) error {
	return p.Sink.Print(ctx, p.Formatter.Format(o))
}
