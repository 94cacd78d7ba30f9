package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/JeremiasReinoso/MiFelisa/internal/config"
	"github.com/JeremiasReinoso/MiFelisa/internal/health"
	"github.com/JeremiasReinoso/MiFelisa/internal/httpapi"
	"github.com/JeremiasReinoso/MiFelisa/internal/session"
	"github.com/JeremiasReinoso/MiFelisa/internal/storehours"
)

const (
	sweepInterval   = 5 * time.Minute
	shutdownTimeout = 10 * time.Second
)

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the storefront HTTP API and health server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, cfg)
		},
	}
}

func (a *app) serve(ctx context.Context, cfg config.Config) error {
	st, err := loadStore(cfg, a.logger)
	if err != nil {
		return err
	}

	healthServer := health.NewServer(a.logger)
	conn, err := grpc.NewClient(
		net.JoinHostPort("127.0.0.1", cfg.Port),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return fmt.Errorf("failed to dial health server: %w", err)
	}
	defer conn.Close()

	registry := session.NewRegistry(session.RegistryConfig{
		Catalog:  st.catalog,
		Composer: st.composer,
		Logger:   a.logger,
		TTL:      cfg.SessionTTL,
	})
	mux, err := httpapi.NewMux(httpapi.Config{
		Registry:     registry,
		Hours:        st.hours,
		HealthClient: grpc_health_v1.NewHealthClient(conn),
		Logger:       a.logger,
	})
	if err != nil {
		return err
	}
	httpServer := &http.Server{
		Addr:              net.JoinHostPort("", cfg.HTTPPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	a.logger.Info("storefront starting",
		zap.String("port", cfg.Port),
		zap.String("http_port", cfg.HTTPPort),
		zap.Int("products", st.catalog.Len()),
		zap.Stringer("hours", st.hours),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return healthServer.Run(gctx, net.JoinHostPort("", cfg.Port))
	})
	g.Go(func() error {
		return serveHTTP(gctx, httpServer, a.logger)
	})
	g.Go(func() error {
		storehours.Watch(gctx, st.hours, cfg.StatusInterval, time.Now, trackOrders(healthServer, a.logger))
		return nil
	})
	g.Go(func() error {
		registry.RunSweeper(gctx, sweepInterval)
		return nil
	})

	err = g.Wait()
	a.logger.Info("storefront stopped", zap.Error(err))
	return err
}

func serveHTTP(ctx context.Context, srv *http.Server, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to serve http: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http: %w", err)
	}
	return <-errCh
}

// trackOrders mirrors the store status into the orders health service and
// logs every open/close transition.
func trackOrders(hs *health.Server, logger *zap.Logger) func(storehours.Status) {
	seen := false
	var open bool
	return func(st storehours.Status) {
		hs.SetOrdersOpen(st.Open)
		if seen && st.Open == open {
			return
		}
		seen, open = true, st.Open
		logger.Info("store status changed", zap.Bool("open", st.Open), zap.String("text", st.Text))
	}
}
