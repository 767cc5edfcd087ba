// Package mcp provides an MCP (Model Context Protocol) server that exposes
// tokenized text views as tools.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	lru "github.com/hashicorp/golang-lru/v2"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nvandessel/textview/internal/logging"
	"github.com/nvandessel/textview/internal/ratelimit"
	"github.com/nvandessel/textview/internal/textview"
	"github.com/nvandessel/textview/internal/tokenize"
)

// Server wraps the MCP SDK server and provides textview tools.
type Server struct {
	server       *sdk.Server
	opts         textview.Options
	logger       *slog.Logger
	toolLimiters ratelimit.ToolLimiters
	views        *lru.Cache[viewKey, *textview.TokenizedText]
}

// viewKey identifies a cached view. Repr limits are fixed per server.
type viewKey struct {
	text string
	mode tokenize.Mode
}

// DefaultViewCacheSize is the number of tokenized texts kept for reuse
// across tool calls.
const DefaultViewCacheSize = 128

// Config holds server configuration.
type Config struct {
	Name    string           // Server name (e.g., "textview")
	Version string           // Server version
	Options textview.Options // Default tokenization and repr settings
	Logger  *slog.Logger     // Operational logger; nil discards

	// ViewCacheSize bounds the view cache. Zero means DefaultViewCacheSize.
	ViewCacheSize int
}

// NewServer creates a new MCP server with textview tools registered.
func NewServer(cfg *Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	cacheSize := cfg.ViewCacheSize
	if cacheSize <= 0 {
		cacheSize = DefaultViewCacheSize
	}
	views, err := lru.New[viewKey, *textview.TokenizedText](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating view cache: %w", err)
	}

	mcpServer := sdk.NewServer(&sdk.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, &sdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, req *sdk.InitializedRequest) {
			logger.Debug("mcp client initialized")
		},
	})

	s := &Server{
		server:       mcpServer,
		opts:         cfg.Options,
		logger:       logger,
		toolLimiters: ratelimit.NewToolLimiters(),
		views:        views,
	}

	s.registerTools()

	return s, nil
}

// Run serves over stdio until the client disconnects, ctx is cancelled,
// or the process receives a shutdown signal.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	notifySignals(sigChan)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			s.logger.Info("shutting down mcp server")
			cancel()
		case <-ctx.Done():
		}
	}()

	return s.server.Run(ctx, &sdk.StdioTransport{})
}
