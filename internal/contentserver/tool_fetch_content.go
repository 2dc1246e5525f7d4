package contentserver

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_ingest/internal/engine"
	"github.com/anatolykoptev/go_ingest/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerFetchContent(server *mcp.Server, n *engine.Normalizer) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_content",
		Description: "Fetch a URL and return its content as text for the conversation context. HTML pages become markdown (tables and comments removed), PDFs become plain text, YouTube videos become an SRT transcript. Other content types are rejected.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.FetchContentInput) (*mcp.CallToolResult, engine.FetchContentOutput, error) {
		rawURL := strings.TrimSpace(input.URL)
		if rawURL == "" {
			return nil, engine.FetchContentOutput{}, errors.New("url is required")
		}
		c, err := n.FetchContentFromURL(ctx, rawURL)
		if err != nil {
			slog.Warn("fetch_content failed", slog.String("url", rawURL), slog.Any("error", err))
			return nil, engine.FetchContentOutput{}, err
		}
		return nil, toolutil.BuildOutput(c, toolutil.ContentLimit(input.MaxLength)), nil
	})
}
