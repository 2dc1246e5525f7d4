package contentserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/anatolykoptev/go_ingest/internal/engine"
	"github.com/anatolykoptev/go_ingest/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// maxBatchURLs bounds a single fetch_contents call.
const maxBatchURLs = 20

func registerFetchContents(server *mcp.Server, n *engine.Normalizer) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_contents",
		Description: "Fetch several URLs in parallel (HTML, PDF or YouTube) and return one item per URL, in input order. A failing URL reports its error without affecting the others.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.FetchContentsInput) (*mcp.CallToolResult, engine.FetchContentsOutput, error) {
		if len(input.URLs) == 0 {
			return nil, engine.FetchContentsOutput{}, errors.New("urls is required")
		}
		if len(input.URLs) > maxBatchURLs {
			return nil, engine.FetchContentsOutput{}, fmt.Errorf("at most %d urls per call", maxBatchURLs)
		}
		items := toolutil.FetchContentsParallel(ctx, n, input.URLs,
			engine.Cfg.MaxParallelFetches, toolutil.ContentLimit(input.MaxLength))
		return nil, engine.FetchContentsOutput{Items: items}, nil
	})
}
