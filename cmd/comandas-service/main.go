package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	_ "github.com/MikeMC777/comandas/docs"
	"github.com/MikeMC777/comandas/internal/config"
	"github.com/MikeMC777/comandas/internal/httpx"
	"github.com/MikeMC777/comandas/internal/logger"
	"github.com/MikeMC777/comandas/internal/menu"
	"github.com/MikeMC777/comandas/internal/order"
	"github.com/MikeMC777/comandas/internal/storage/postgres"
	"github.com/MikeMC777/comandas/internal/storage/sqlite"
	"github.com/MikeMC777/comandas/internal/ticket"
)

const serviceName = "comandas-service"

// @title       Comandas API
// @version     1.0
// @description Order taking, pricing and ticket printing for the counter.
// @BasePath    /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[config] %v", err)
	}
	lg := logger.New(serviceName, cfg.LogLevel)
	cfg.Log(lg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil {
		lg.Error("service stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, lg *slog.Logger) error {
	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close()

	formatter := ticket.Formatter{ShopName: cfg.ShopName, QRPayload: cfg.TicketQRPayload}
	var printer order.Printer
	if sink := newSink(cfg); sink != nil {
		printer = ticket.OrderPrinter{Formatter: formatter, Sink: sink}
	}
	svc := order.NewService(st.orders, printer, lg)

	gin.SetMode(cfg.GinMode)
	r := newRouter(routerDeps{
		log:       lg,
		menus:     st.menus,
		orders:    svc,
		drafts:    order.NewDraftStore(),
		formatter: formatter,
		width:     cfg.TicketWidth,
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r, ReadHeaderTimeout: 10 * time.Second}

	lis, err := net.Listen("tcp", cfg.GRPCHealthAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.GRPCHealthAddr, err)
	}
	gs := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)

	errc := make(chan error, 2)
	go func() {
		lg.Info("grpc health listening", "addr", cfg.GRPCHealthAddr)
		errc <- gs.Serve(lis)
	}()
	go func() {
		lg.Info("http listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errc:
		lg.Error("server failed", "err", err)
	}

	lg.Info("shutting down")
	hs.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("http shutdown", "err", err)
	}
	gs.GracefulStop()
	svc.Wait()
	return nil
}

type routerDeps struct {
	log       *slog.Logger
	menus     menu.Repository
	orders    *order.Service
	drafts    *order.DraftStore
	formatter ticket.Formatter
	width     int
}

func newRouter(d routerDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(d.log))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	r.GET("/menu", listMenuHandler(d.menus))
	r.GET("/menu/groups", groupedMenuHandler(d.menus))
	r.POST("/menu/add", addMenuItemHandler(d.menus))
	r.POST("/menu/update", updateMenuHandler(d.menus))
	r.POST("/menu/remove", removeMenuItemHandler(d.menus))

	r.POST("/pricing/quote", quoteHandler(d.menus))

	r.POST("/orders/add", placeOrderHandler(d.orders))
	r.GET("/orders", listOrdersHandler(d.orders))
	r.GET("/orders/:id", getOrderHandler(d.orders))
	r.GET("/orders/:id/ticket", orderTicketHandler(d.orders, d.formatter, d.width))
	r.POST("/orders/:id/print", reprintOrderHandler(d.orders))

	r.POST("/drafts", createDraftHandler(d.drafts))
	r.GET("/drafts/:id", getDraftHandler(d.drafts))
	r.PUT("/drafts/:id", updateDraftHandler(d.drafts))
	r.DELETE("/drafts/:id", deleteDraftHandler(d.drafts))
	r.POST("/drafts/:id/reset", resetDraftHandler(d.drafts))
	r.POST("/drafts/:id/items", addDraftItemHandler(d.drafts, d.menus))
	r.PUT("/drafts/:id/items/:index", setDraftItemQuantityHandler(d.drafts))
	r.DELETE("/drafts/:id/items/:index", removeDraftItemHandler(d.drafts))
	r.GET("/drafts/:id/ticket", draftTicketHandler(d.drafts, d.formatter, d.width))
	r.POST("/drafts/:id/submit", submitDraftHandler(d.drafts, d.orders))
	return r
}

type stores struct {
	menus  menu.Repository
	orders order.Repository
	close  func()
}

func openStores(ctx context.Context, cfg config.Config) (stores, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		pool, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return stores{}, err
		}
		return stores{menus: menu.NewPGRepo(pool), orders: order.NewPGRepo(pool), close: pool.Close}, nil
	case config.StoreSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return stores{}, err
		}
		return stores{menus: menu.NewSQLiteRepo(db), orders: order.NewSQLiteRepo(db), close: func() { _ = db.Close() }}, nil
	default:
		return stores{
			menus:  menu.NewFileRepo(cfg.MenuFile),
			orders: order.NewFileRepo(cfg.OrdersFile),
			close:  func() {},
		}, nil
	}
}

// newSink returns nil when printing is disabled.
func newSink(cfg config.Config) ticket.Sink {
	switch cfg.PrinterKind {
	case config.PrinterUSB:
		return &ticket.Printer{Device: ticket.DeviceUSB, Address: cfg.PrinterAddress, Width: cfg.TicketWidth}
	case config.PrinterNetwork:
		return &ticket.Printer{Device: ticket.DeviceNetwork, Address: cfg.PrinterAddress, Port: cfg.PrinterPort, Width: cfg.TicketWidth}
	case config.PrinterFile:
		return &ticket.Printer{Device: ticket.DeviceFile, Address: cfg.PrinterAddress, Width: cfg.TicketWidth}
	case config.PrinterText:
		return &ticket.TextFileSink{Path: cfg.PrinterAddress, Width: cfg.TicketWidth}
	default:
		return nil
	}
}
