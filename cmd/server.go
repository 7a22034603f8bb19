package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/avatars/internal/avatars"
	"github.com/ziadkadry99/avatars/internal/server"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the avatar HTTP server",
	Long:  `Starts the HTTP server that renders recolored avatars at /avatar/{characterId}.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = serverPort
		}
		logger := cfg.Log.NewLogger()

		svc, cleanup, err := buildService(cfg, logger, cfg.RecordRenders)
		if err != nil {
			return err
		}
		defer cleanup()

		// A configured max-age of zero turns caching off.
		cacheMaxAge := cfg.CacheMaxAgeSeconds
		if cacheMaxAge == 0 {
			cacheMaxAge = -1
		}

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		}, logger)
		avatars.RegisterRoutes(srv.Router(), svc, avatars.RouteOptions{
			CacheMaxAge: cacheMaxAge,
			Logger:      logger,
		})

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "avatars server v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Templates: %s\n", templateLocation(cfg))
		if cfg.RecordRenders {
			fmt.Fprintf(os.Stderr, "  Render log: %s\n", cfg.DatabasePath)
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serverCmd)
}
