package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/recviz/internal/server"
	"github.com/matzehuels/recviz/pkg/cache"
	"github.com/matzehuels/recviz/pkg/pipeline"
)

// serveCommand creates the serve command, which runs the visualization
// pipeline behind an HTTP form UI. When redis_addr is configured the
// artifact cache is shared across instances; otherwise the file cache
// is used.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the visualizer over HTTP",
		Long: `Serve the visualizer over HTTP.

Starts a web server with a form-based UI. Submitting a problem renders
the interactive state tree inline.

Examples:
  recviz serve
  recviz serve --addr :9090`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store := c.serveCache(ctx)
			runner := pipeline.NewRunner(store, c.Logger)
			defer runner.Close()

			srv := &http.Server{
				Addr:              addr,
				Handler:           server.New(runner, c.Logger).Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Info("listening", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return err
				}
				return ctx.Err()
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

// serveCache picks the cache backend for serve mode. Redis when
// configured, file cache otherwise, null cache if neither works.
func (c *CLI) serveCache(ctx context.Context) cache.Cache {
	if c.Config.RedisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, c.Config.RedisAddr)
		if err != nil {
			printWarning("redis at %s unavailable, falling back to file cache", c.Config.RedisAddr)
			c.Logger.Debug("redis connect failed", "addr", c.Config.RedisAddr, "err", err)
		} else {
			return rc
		}
	}
	return newCache(false, c.Config)
}
