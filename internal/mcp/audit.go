package mcp

import (
	"context"
	"log/slog"
	"time"
)

// auditTool logs one tool invocation at debug level.
func (s *Server) auditTool(ctx context.Context, toolName string, start time.Time, err error, attrs ...slog.Attr) {
	status := "success"
	if err != nil {
		status = "error"
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	attrs = append(attrs,
		slog.String("tool", toolName),
		slog.String("status", status),
		slog.Duration("duration", time.Since(start)),
	)
	s.logger.LogAttrs(ctx, slog.LevelDebug, "mcp tool call", attrs...)
}
