// Package mcp exposes the workout program to MCP clients.
package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("FitProgram", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("FitProgram home workout server. Look up the generated multi-week program by day or week, check completion progress, and find the next workout. Progress is scoped to the authenticated user."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetWorkoutByDay, Handler: h.getWorkoutByDay},
		server.ServerTool{Tool: toolGetWorkoutsByWeek, Handler: h.getWorkoutsByWeek},
		server.ServerTool{Tool: toolGetWorkoutProgress, Handler: h.getWorkoutProgress},
		server.ServerTool{Tool: toolGetProgramSummary, Handler: h.getProgramSummary},
		server.ServerTool{Tool: toolGetNextWorkout, Handler: h.getNextWorkout},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resProgram, Handler: h.program},
		server.ServerResource{Resource: resSummary, Handler: h.summary},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resProgram = mcp.NewResource(
	"fitprogram://program",
	"Workout Program",
	mcp.WithResourceDescription("Every day of the generated program with exercises, prescriptions, durations and calorie estimates"),
	mcp.WithMIMEType("application/json"),
)

var resSummary = mcp.NewResource(
	"fitprogram://summary",
	"Program Summary",
	mcp.WithResourceDescription("Completed and remaining minutes, calories and days across the whole program"),
	mcp.WithMIMEType("application/json"),
)
