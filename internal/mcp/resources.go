package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) program(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	view, err := h.ds.Program(ctx)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, view)
}

func (h *handlers) summary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)

	summary, err := h.ds.Summary(ctx, 0, uid)
	if err != nil {
		return nil, err
	}

	next, err := h.ds.NextWorkout(ctx, uid)
	if err != nil {
		h.log.Warn("summary: next workout failed", "error", err)
	}

	return jsonResource(req.Params.URI, map[string]any{
		"summary": summary,
		"next":    next,
	})
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
