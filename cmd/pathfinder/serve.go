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

	"gaia-pathfinder/internal/adapter/httpapi"
	"gaia-pathfinder/internal/di"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API (/invoke, /health)",
	RunE:  runServe,
}

var (
	addrFlag      string
	accessLogFlag bool
)

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "Listen address (overrides HTTP_ADDR)")
	serveCmd.Flags().BoolVar(&accessLogFlag, "access-log", true, "Log one line per HTTP request")
}

func runServe(cmd *cobra.Command, args []string) error {
	settings := loadSettings()
	if addrFlag != "" {
		settings.HTTPAddr = addrFlag
	}

	log, err := newLogger(settings)
	if err != nil {
		return err
	}
	defer log.Close()

	handler := httpapi.NewHandler(settings.ActiveModel(), log)
	srv := &http.Server{
		Handler:           httpapi.NewRouter(handler, httpapi.RouterOptions{AccessLog: accessLogFlag}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", settings.HTTPAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", settings.HTTPAddr, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	log.Info("Server listening", "addr", ln.Addr().String(), "provider", settings.Provider(), "model", settings.ActiveModel())

	// /health reports not_initialized until this completes. A configuration
	// error leaves the server up and /invoke answering 503.
	container, err := di.NewContainer(settings, log)
	if err != nil {
		log.Error("Failed to initialize agent", "error", err)
	} else {
		handler.SetRunner(container.Agent)
		log.Info("Agent initialized", "max_iterations", settings.MaxAgentIterations)
	}

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
