package contentserver

import (
	"github.com/anatolykoptev/go_ingest/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers the content ingestion tools on the given MCP server:
// fetch_content, fetch_contents, extract_pdf.
func RegisterTools(server *mcp.Server, n *engine.Normalizer) {
	registerFetchContent(server, n)
	registerFetchContents(server, n)
	registerExtractPDF(server, n)
}
