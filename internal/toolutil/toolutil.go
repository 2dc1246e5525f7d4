// Package toolutil provides shared helper functions for the go_ingest MCP tools and CLI.
package toolutil

import (
	"context"
	"unicode/utf8"

	"github.com/anatolykoptev/go_ingest/internal/engine"
	"golang.org/x/sync/errgroup"
)

// ContentLimit resolves a per-call max_length against the configured default.
// 0 means no limit.
func ContentLimit(maxLength int) int {
	if maxLength > 0 {
		return maxLength
	}
	return engine.Cfg.MaxContentChars
}

// BuildOutput converts an extraction result into the tool output, capping Content
// at limit runes. Size keeps describing the source payload.
func BuildOutput(c *engine.ExtractedContent, limit int) engine.FetchContentOutput {
	out := engine.FetchContentOutput{
		URL:     c.URL,
		Title:   c.Title,
		Content: c.Content,
		Size:    c.Size,
		Type:    c.Type,
		Label:   c.Label(),
	}
	if limit > 0 && utf8.RuneCountInString(c.Content) > limit {
		out.Content = engine.TruncateRunes(c.Content, limit, "...")
		out.Truncated = true
	}
	return out
}

// FetchContentsParallel runs FetchContentFromURL for every URL with at most
// parallel requests in flight. Items keep input order; a failed URL carries its
// error text and does not affect the others.
func FetchContentsParallel(ctx context.Context, n *engine.Normalizer, urls []string, parallel, limit int) []engine.FetchContentsItem {
	items := make([]engine.FetchContentsItem, len(urls))
	var g errgroup.Group
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i, u := range urls {
		items[i].URL = u
		g.Go(func() error {
			c, err := n.FetchContentFromURL(ctx, u)
			if err != nil {
				items[i].Error = err.Error()
				return nil
			}
			out := BuildOutput(c, limit)
			items[i].Result = &out
			return nil
		})
	}
	_ = g.Wait()
	return items
}
