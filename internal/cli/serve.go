package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/ahuangsnail/quire/pkg/api"
	"github.com/ahuangsnail/quire/pkg/cache"
	"github.com/ahuangsnail/quire/pkg/pipeline"
	"github.com/ahuangsnail/quire/pkg/store"
)

// shutdownTimeout bounds how long in-flight requests may run after the
// server receives a stop signal.
const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		mongoURI  string
		mongoDB   string
		redisAddr string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP typesetting API",
		Long: `Run the HTTP typesetting API.

The server exposes one-shot typesetting at POST /typeset and a document
store under /documents. Documents are held in memory unless a MongoDB
connection URI is provided.

By default the artifact cache is the local file cache shared with the
other CLI commands. Pass --redis to share the cache across server
instances instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, mongoURI, mongoDB, redisAddr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&mongoURI, "mongo", "", "MongoDB connection URI (in-memory store if empty)")
	cmd.Flags().StringVar(&mongoDB, "mongo-db", "", "MongoDB database name")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for a shared cache (local file cache if empty)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe starts the HTTP server and blocks until ctx is cancelled or the
// listener fails.
func (c *CLI) runServe(ctx context.Context, addr, mongoURI, mongoDB, redisAddr string, noCache bool) error {
	runner, cacheName, err := c.newServeRunner(ctx, redisAddr, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	st, storeName, err := newStore(ctx, mongoURI, mongoDB)
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer st.Close(context.Background())

	server := &http.Server{
		Addr:              addr,
		Handler:           api.NewServer(api.Config{Runner: runner, Store: st, Logger: c.Logger}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	printSuccess("Quire API listening")
	printLink(displayURL(addr))
	printKeyValue("Store", storeName)
	printKeyValue("Cache", cacheName)
	printNewline()
	printNextStep("Typeset", fmt.Sprintf("curl -X POST --data-binary @doc.toml %s/typeset", displayURL(addr)))

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("server started", "addr", addr, "store", storeName)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		printWarning("Shutdown timed out, closing connections")
		return server.Close()
	}

	printNewline()
	printSuccess("Server stopped")
	return nil
}

// newServeRunner picks the cache backend for the server. An empty Redis
// address selects the same file cache the other commands use; --no-cache
// wins over --redis.
func (c *CLI) newServeRunner(ctx context.Context, redisAddr string, noCache bool) (*pipeline.Runner, string, error) {
	if noCache || redisAddr == "" {
		runner, err := c.newRunner(noCache)
		return runner, cacheDescription(noCache), err
	}
	rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr})
	if err != nil {
		return nil, "", err
	}
	return pipeline.NewRunner(rc, nil, c.Logger), "redis (" + redisAddr + ")", nil
}

// newStore picks the document store backend. An empty URI selects the
// in-memory store.
func newStore(ctx context.Context, mongoURI, mongoDB string) (store.Store, string, error) {
	if mongoURI == "" {
		return store.NewMemoryStore(), "memory", nil
	}
	ms, err := store.NewMongoStore(ctx, store.MongoConfig{URI: mongoURI, Database: mongoDB})
	if err != nil {
		return nil, "", err
	}
	return ms, "mongodb", nil
}

// cacheDescription names the cache backing for startup output.
func cacheDescription(noCache bool) string {
	if noCache {
		return "disabled"
	}
	dir, err := cacheDir()
	if err != nil {
		return "disabled"
	}
	return dir
}

// displayURL turns a listen address into a clickable URL. Wildcard and
// empty hosts are shown as localhost.
func displayURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}
