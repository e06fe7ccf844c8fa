// Package commands defines the blogql subcommands.
package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"zombiezen.com/go/graphql-server/graphql"
	"zombiezen.com/go/graphql-server/graphqlhttp"

	"github.com/tsaacod/Tugas3-EAI/internal/config"
	"github.com/tsaacod/Tugas3-EAI/internal/graph"
	"github.com/tsaacod/Tugas3-EAI/internal/store"
)

// ServeCmd starts the GraphQL HTTP server.
func ServeCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the GraphQL HTTP server",
		Long: `Start an HTTP server that exposes the users/posts GraphQL API
at /graphql. The schema is created on startup if it does not exist.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			return runServer(cfg)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "port to listen on")
	return cmd
}

func runServer(cfg config.Config) error {
	st, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if err := st.Migrate(); err != nil {
		return err
	}
	srv, err := graph.NewServer(st)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      newMux(srv),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		fmt.Printf("GraphQL endpoint: http://localhost:%d/graphql\n", cfg.Port)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		fmt.Println("\nShutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}
	return nil
}

// newMux mounts the GraphQL handler on its endpoint path.
func newMux(srv *graphql.Server) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/graphql", graphqlhttp.NewHandler(srv))
	return mux
}
