// go_ingest — content ingestion MCP server.
//
// Normalizes HTML pages, PDF documents and YouTube videos into plain text or
// markdown for a chat context window. Exposes three MCP tools: fetch_content,
// fetch_contents, extract_pdf. Runs as HTTP MCP server or stdio transport.
package main

import (
	"log/slog"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_ingest/internal/contentserver"
	"github.com/anatolykoptev/go_ingest/internal/engine"
	"github.com/anatolykoptev/go_ingest/internal/engine/sources"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8892")
)

func main() {
	n := initEngine()

	slog.Info("starting go_ingest",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_ingest",
		Version: version,
	}, nil)

	contentserver.RegisterTools(server, n)
	slog.Info("tools registered", slog.Int("count", 3))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_ingest",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 300 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() *engine.Normalizer {
	engine.Init(engine.Config{
		FetchTimeout:          env.Duration("FETCH_TIMEOUT", 30*time.Second),
		MaxBodyBytes:          int64(env.Int("MAX_BODY_BYTES", 20*1024*1024)),
		MaxContentChars:       env.Int("MAX_CONTENT_CHARS", 0),
		MaxParallelFetches:    env.Int("MAX_PARALLEL_FETCHES", 4),
		YouTubeCaptionsSource: env.Str("YOUTUBE_CAPTIONS_SOURCE", "watch"),
		YouTubeLangs:          env.List("YOUTUBE_LANGS", "en"),
	})
	c := *engine.Cfg

	provider := sources.NewProvider(c.YouTubeCaptionsSource, c.HTTPClient, c.YouTubeLangs)
	slog.Info("youtube captions provider", slog.String("source", c.YouTubeCaptionsSource),
		slog.Any("langs", c.YouTubeLangs))

	return engine.NewNormalizer(c, sources.NewTranscriptExtractor(provider))
}
