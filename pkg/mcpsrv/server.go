package mcpsrv

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/wetrace/internal/config"
	"github.com/usestring/wetrace/internal/logging"
	"github.com/usestring/wetrace/internal/mcp"
	"github.com/usestring/wetrace/internal/mcp/tools"
	"github.com/usestring/wetrace/internal/query"
	"github.com/usestring/wetrace/pkg/client"
)

// Server is the Wetrace MCP server.
type Server struct {
	internal   *mcp.Server
	deps       *Deps
	logCleanup func() error
}

// NewServer creates a new MCP server with the builtin Wetrace tools.
//
// The client parameter is required and provides access to the Wetrace API.
// Configuration is read from the environment unless WithConfig is given.
func NewServer(c *client.Client, opts ...Option) (*Server, error) {
	if c == nil {
		return nil, fmt.Errorf("client is required")
	}

	cfg := &serverConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.config == nil {
		cfg.config = config.Load()
	}

	logCleanup := func() error { return nil }
	if cfg.logLevel != "" || cfg.logFile != "" {
		logCfg := logging.Config{
			Level:      cfg.config.LogLevel,
			Format:     cfg.config.LogFormat,
			FilePath:   cfg.config.LogFile,
			MaxSizeMB:  cfg.config.LogMaxSizeMB,
			MaxBackups: cfg.config.LogMaxBackups,
			MaxAgeDays: cfg.config.LogMaxAgeDays,
			Compress:   cfg.config.LogCompress,
		}
		if cfg.logLevel != "" {
			logCfg.Level = cfg.logLevel
		}
		if cfg.logFile != "" {
			logCfg.FilePath = cfg.logFile
		}
		cleanup, err := logging.Setup(logCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to setup logging: %w", err)
		}
		logCleanup = cleanup
	}

	engine, err := query.NewEngine(cfg.config.QueryCacheMaxItems)
	if err != nil {
		return nil, fmt.Errorf("failed to create query engine: %w", err)
	}

	toolDeps := &tools.Deps{Client: c, Config: cfg.config, Query: engine}
	deps := &Deps{Client: c, Config: cfg.config, Query: engine}

	var internalOpts []mcp.ServerOption
	if !cfg.disableBuiltinTools {
		internalOpts = append(internalOpts, mcp.WithBuiltinTools())
	}
	if !cfg.disableBuiltinPrompts {
		internalOpts = append(internalOpts, mcp.WithBuiltinPrompts())
	}
	for _, fn := range cfg.registrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(fn))
	}
	for _, fn := range cfg.deferredToolRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(func(srv *sdkmcp.Server) {
			fn(srv, deps)
		}))
	}

	internal, err := mcp.NewServer(toolDeps, internalOpts...)
	if err != nil {
		_ = logCleanup()
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	return &Server{internal: internal, deps: deps, logCleanup: logCleanup}, nil
}

// Run serves MCP over stdio until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.internal.Run(ctx)
}

// Close cleans up server resources.
func (s *Server) Close() error {
	if s.logCleanup != nil {
		return s.logCleanup()
	}
	return nil
}

// Deps returns the dependencies for building custom tools.
func (s *Server) Deps() *Deps {
	return s.deps
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *sdkmcp.Server {
	return s.internal.MCPServer()
}
