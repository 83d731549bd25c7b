package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	server, err := InitializeServer()
	if err != nil {
		log.Fatal(fmt.Sprintf("could not create server: %s", err))
	}

	// cancelled on shutdown so that open event streams are ended
	baseCtx, cancelRequests := context.WithCancel(context.Background())
	defer cancelRequests()

	httpServer := &http.Server{
		Addr:        fmt.Sprintf(":%s", server.Port),
		Handler:     server.Engine,
		BaseContext: func(net.Listener) context.Context { return baseCtx },
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		log.Printf("starting server at: localhost:%s", server.Port)
		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			return errors.Wrap(err, "could not start server")
		}
		return nil
	})
	g.Go(func() error {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(signals)

		select {
		case sig := <-signals:
			log.Printf("received %s, shutting down", sig)
		case <-ctx.Done():
		}

		closeErr := server.Close()
		cancelRequests()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return multierr.Combine(closeErr, errors.Wrap(httpServer.Shutdown(shutdownCtx), "could not shut down server"))
	})

	if err := g.Wait(); err != nil {
		log.Fatal(fmt.Sprintf("server stopped with error: %s", err))
	}
	log.Print("server stopped")
}
