package contentserver

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_ingest/internal/engine"
	"github.com/anatolykoptev/go_ingest/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerExtractPDF(server *mcp.Server, n *engine.Normalizer) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_pdf",
		Description: "Extract plain text from an uploaded PDF file (base64-encoded). No network access.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input engine.ExtractPDFInput) (*mcp.CallToolResult, engine.FetchContentOutput, error) {
		if strings.TrimSpace(input.Data) == "" {
			return nil, engine.FetchContentOutput{}, errors.New("data is required")
		}
		data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(input.Data))
		if err != nil {
			return nil, engine.FetchContentOutput{}, fmt.Errorf("data is not valid base64: %w", err)
		}
		c, err := n.ExtractPDFFromBuffer(data)
		if err != nil {
			return nil, engine.FetchContentOutput{}, err
		}
		return nil, toolutil.BuildOutput(c, toolutil.ContentLimit(input.MaxLength)), nil
	})
}
