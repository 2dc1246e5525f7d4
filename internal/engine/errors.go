package engine

import "errors"

// Failure kinds surfaced by the normalization pipeline. Callers match them with errors.Is;
// extra detail is attached by wrapping.
var (
	ErrFetchFailure          = errors.New("failure fetching content from provided URL")
	ErrUnsupportedType       = errors.New("URL provided is not a PDF or HTML document")
	ErrInvalidInput          = errors.New("invalid YouTube URL")
	ErrTranscriptUnavailable = errors.New("transcript unavailable")
	ErrConversionFailure     = errors.New("failure converting HTML to markdown")
	ErrPDFParseFailure       = errors.New("failure parsing PDF document")
)
