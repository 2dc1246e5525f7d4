package engine

import (
	"regexp"
	"strings"
)

// Kind is the content category a target resolves to. The set is closed:
// every Kind has exactly one extraction path in Normalizer.
type Kind int

const (
	KindUnsupported Kind = iota // default
	KindHTML
	KindPDF
	KindYouTube
)

func (k Kind) String() string {
	switch k {
	case KindHTML:
		return "html"
	case KindPDF:
		return "pdf"
	case KindYouTube:
		return "youtube"
	default:
		return "unsupported"
	}
}

// youTubeURLRe matches youtube.com and youtu.be links, with or without scheme and www.
var youTubeURLRe = regexp.MustCompile(`(?i)^(https?://)?(www\.|m\.)?(youtube\.com|youtu\.be)([/?#].*)?$`)

// IsYouTubeURL reports whether rawURL points at YouTube.
func IsYouTubeURL(rawURL string) bool {
	return youTubeURLRe.MatchString(strings.TrimSpace(rawURL))
}

// Sniff classifies a fetched target. YouTube links win over the declared
// content type; otherwise the Content-Type header decides. No body sniffing.
func Sniff(rawURL, contentType string) Kind {
	if IsYouTubeURL(rawURL) {
		return KindYouTube
	}
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "text/html"):
		return KindHTML
	case strings.Contains(ct, "application/pdf"):
		return KindPDF
	}
	return KindUnsupported
}
