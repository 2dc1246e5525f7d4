package sources

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anatolykoptev/go_ingest/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoID(t *testing.T) {
	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{url: "https://youtube.com/watch?v=dQw4w9WgXcQ&t=42s", want: "dQw4w9WgXcQ"},
		{url: "youtube.com/watch?v=abc123", want: "abc123"},
		{url: "https://youtube.com?v=noslash", want: "noslash"},
		{url: "https://m.youtube.com/watch?feature=share&v=xyz", want: "xyz"},
		{url: "https://youtu.be/dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{url: "https://youtu.be/dQw4w9WgXcQ?si=tracking", want: "dQw4w9WgXcQ"},
		{url: "https://www.youtube.com/shorts/short1", want: "short1"},
		{url: "https://www.youtube.com/embed/emb1", want: "emb1"},
		{url: "https://www.youtube.com/live/live1", want: "live1"},
		{url: "https://youtu.be/", wantErr: true},
		{url: "https://www.youtube.com/watch", wantErr: true},
		{url: "https://www.youtube.com/watch?v=", wantErr: true},
		{url: "https://www.youtube.com/channel/UC123", wantErr: true},
		{url: "https://www.youtube.com/", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := VideoID(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, engine.ErrInvalidInput))
				assert.Equal(t, "invalid YouTube URL", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type fakeProvider struct {
	segs  []Segment
	err   error
	calls int
}

func (f *fakeProvider) FetchSegments(_ context.Context, _ string) ([]Segment, error) {
	f.calls++
	return f.segs, f.err
}

func TestTranscriptExtractor(t *testing.T) {
	t.Run("formats provider segments", func(t *testing.T) {
		p := &fakeProvider{segs: []Segment{{Start: 0, Duration: time.Second, Text: "Hi"}}}
		got, err := NewTranscriptExtractor(p).Extract(context.Background(), "https://www.youtube.com/watch?v=abc")
		require.NoError(t, err)
		assert.Equal(t, "1\n00:00:00,000 --> 00:00:01,000\nHi\n\n", got)
	})

	t.Run("missing id skips provider", func(t *testing.T) {
		p := &fakeProvider{}
		_, err := NewTranscriptExtractor(p).Extract(context.Background(), "https://youtu.be/")
		assert.ErrorIs(t, err, engine.ErrInvalidInput)
		assert.Zero(t, p.calls)
	})

	t.Run("provider error", func(t *testing.T) {
		p := &fakeProvider{err: errors.New("captions disabled")}
		_, err := NewTranscriptExtractor(p).Extract(context.Background(), "https://youtube.com/watch?v=abc")
		assert.ErrorIs(t, err, engine.ErrTranscriptUnavailable)
		assert.Contains(t, err.Error(), "captions disabled")
		assert.Equal(t, 1, p.calls, "no retry")
	})

	t.Run("empty transcript", func(t *testing.T) {
		p := &fakeProvider{}
		_, err := NewTranscriptExtractor(p).Extract(context.Background(), "https://youtube.com/watch?v=abc")
		assert.ErrorIs(t, err, engine.ErrTranscriptUnavailable)
	})
}

func TestNewProvider(t *testing.T) {
	assert.IsType(t, &PlayerProvider{}, NewProvider("player", nil, nil))
	assert.IsType(t, &PlayerProvider{}, NewProvider("PLAYER", nil, nil))
	assert.IsType(t, &WatchPageProvider{}, NewProvider("watch", nil, nil))
	assert.IsType(t, &WatchPageProvider{}, NewProvider("", nil, nil))
}
