// Package webfetch retrieves web pages under a bounded deadline and reduces
// HTML, JSON, or plain responses to readable text for context assembly.
package webfetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"articlegen/internal/textnorm"
	"articlegen/internal/types"
)

// DefaultTimeout bounds a single URL fetch end to end.
const DefaultTimeout = 15 * time.Second

// DefaultUserAgent identifies the fetcher to remote servers.
const DefaultUserAgent = "Mozilla/5.0 (compatible; articlegen/1.0; +article content fetcher)"

// MaxTextLength caps reduced web text, in runes.
const MaxTextLength = 10000

// TruncationMarker is appended to capped web text.
const TruncationMarker = "[Web content truncated...]"

// maxBodyBytes caps how much of a response body is read before reduction.
const maxBodyBytes = 2 << 20

// Reducer turns a raw HTML document into readable text.
type Reducer interface {
	Reduce(html string) string
}

// Options configures a Fetcher. Zero values fall back to defaults.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Client    *http.Client
	Reducer   Reducer
}

// Fetcher retrieves a URL and reduces the response to bounded text.
type Fetcher struct {
	client    *http.Client
	reducer   Reducer
	timeout   time.Duration
	userAgent string
	log       zerolog.Logger
}

// New creates a Fetcher. Pass nil opts for defaults; the default reducer is
// the regex heuristic, swap in NewDOMReducer for a full HTML parse.
func New(logger zerolog.Logger, opts *Options) *Fetcher {
	if opts == nil {
		opts = &Options{}
	}
	f := &Fetcher{
		client:    opts.Client,
		reducer:   opts.Reducer,
		timeout:   opts.Timeout,
		userAgent: opts.UserAgent,
		log:       logger,
	}
	if f.client == nil {
		f.client = &http.Client{}
	}
	if f.reducer == nil {
		f.reducer = NewHeuristicReducer()
	}
	if f.timeout <= 0 {
		f.timeout = DefaultTimeout
	}
	if f.userAgent == "" {
		f.userAgent = DefaultUserAgent
	}
	return f
}

// Fetch retrieves the URL and returns its normalized, capped text.
//
// The URL is validated before any network I/O; the request runs under the
// fetcher's deadline and the caller's context, whichever cancels first.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*types.ExtractedText, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" ||
		(parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, &InvalidURLError{URL: rawURL}
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &InvalidURLError{URL: rawURL}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html, application/json, text/plain, */*")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, f.requestError(rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, f.requestError(rawURL, err)
	}

	text := f.reduce(resp.Header.Get("Content-Type"), body)
	normalized := textnorm.Normalize(text)
	capped, truncated := textnorm.Truncate(normalized, MaxTextLength, TruncationMarker)

	f.log.Debug().
		Str("url", rawURL).
		Int("raw_bytes", len(body)).
		Int("text_len", utf8.RuneCountInString(capped)).
		Bool("truncated", truncated).
		Msg("fetched URL content")

	return &types.ExtractedText{
		SourceKind:     types.SourceURL,
		Text:           capped,
		OriginalLength: utf8.RuneCountInString(normalized),
		Truncated:      truncated,
	}, nil
}

// reduce dispatches on the response content type: JSON is pretty-printed so
// the model sees its structure, HTML goes through the reducer, and anything
// else is taken as raw text.
func (f *Fetcher) reduce(contentType string, body []byte) string {
	switch {
	case strings.Contains(contentType, "application/json"):
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, body, "", "  "); err == nil {
			return pretty.String()
		}
		return string(body)
	case strings.Contains(contentType, "text/html"):
		return f.reducer.Reduce(string(body))
	default:
		return string(body)
	}
}

func (f *Fetcher) requestError(rawURL string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{URL: rawURL, Timeout: f.timeout}
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &TimeoutError{URL: rawURL, Timeout: f.timeout}
	}
	return &NetworkError{URL: rawURL, Cause: err}
}
