package engine

import "testing"

func TestIsYouTubeURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"https://youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"http://youtube.com/watch?v=abc", true},
		{"youtube.com/watch?v=abc", true},
		{"www.youtube.com/watch?v=abc", true},
		{"https://m.youtube.com/watch?v=abc", true},
		{"https://youtu.be/dQw4w9WgXcQ", true},
		{"https://youtu.be/", true},
		{"youtu.be/abc", true},
		{"HTTPS://WWW.YOUTUBE.COM/watch?v=abc", true},
		{"https://youtube.com?v=abc", true},
		{"https://www.youtube.com#t=10", true},
		{"https://youtube.com", true},
		{"https://youtube.company.com/watch?v=abc", false},
		{"https://example.com/watch?v=abc", false},
		{"https://notyoutube.com/watch?v=abc", false},
		{"https://youtube.com.evil.org/watch?v=abc", false},
		{"https://example.com/?next=youtube.com", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := IsYouTubeURL(tt.url); got != tt.want {
				t.Errorf("IsYouTubeURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestSniff(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		contentType string
		want        Kind
	}{
		{"html", "https://example.com", "text/html; charset=utf-8", KindHTML},
		{"html uppercase", "https://example.com", "Text/HTML", KindHTML},
		{"pdf", "https://example.com/a.pdf", "application/pdf", KindPDF},
		{"json", "https://example.com/api", "application/json", KindUnsupported},
		{"empty content type", "https://example.com", "", KindUnsupported},
		{"xhtml is not html", "https://example.com", "application/xhtml+xml", KindUnsupported},
		{"youtube with html", "https://www.youtube.com/watch?v=abc", "text/html", KindYouTube},
		{"youtube with pdf", "https://youtube.com/watch?v=abc", "application/pdf", KindYouTube},
		{"youtube with json", "https://youtu.be/abc", "application/json", KindYouTube},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sniff(tt.url, tt.contentType); got != tt.want {
				t.Errorf("Sniff(%q, %q) = %s, want %s", tt.url, tt.contentType, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	kinds := map[Kind]string{
		KindUnsupported: "unsupported",
		KindHTML:        "html",
		KindPDF:         "pdf",
		KindYouTube:     "youtube",
		Kind(42):        "unsupported",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
