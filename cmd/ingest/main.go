// Package main provides the ingest command-line tool.
//
// It runs the same normalization pipeline as the MCP server against a single
// URL or a local PDF file and prints the result to stdout.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go_ingest/internal/engine"
	"github.com/anatolykoptev/go_ingest/internal/engine/sources"
	"github.com/anatolykoptev/go_ingest/internal/toolutil"
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	maxLength  int
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Normalize web pages, PDFs and YouTube videos into text",
	Long: "ingest fetches a URL (HTML page, PDF document or YouTube video) or reads a local PDF " +
		"and prints its content as markdown, plain text or SRT captions.",
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print the full result as JSON")
	rootCmd.PersistentFlags().IntVarP(&maxLength, "max-length", "n", 0, "Truncate content to this many characters (0 = configured default)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newNormalizer() *engine.Normalizer {
	engine.Init(engine.Config{
		FetchTimeout:          env.Duration("FETCH_TIMEOUT", 30*time.Second),
		MaxBodyBytes:          int64(env.Int("MAX_BODY_BYTES", 20*1024*1024)),
		MaxContentChars:       env.Int("MAX_CONTENT_CHARS", 0),
		YouTubeCaptionsSource: env.Str("YOUTUBE_CAPTIONS_SOURCE", "watch"),
		YouTubeLangs:          env.List("YOUTUBE_LANGS", "en"),
	})
	c := *engine.Cfg
	provider := sources.NewProvider(c.YouTubeCaptionsSource, c.HTTPClient, c.YouTubeLangs)
	return engine.NewNormalizer(c, sources.NewTranscriptExtractor(provider))
}

func printResult(w io.Writer, c *engine.ExtractedContent) error {
	out := toolutil.BuildOutput(c, toolutil.ContentLimit(maxLength))
	if !jsonOutput {
		_, err := fmt.Fprintln(w, out.Content)
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
