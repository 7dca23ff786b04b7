// Package fetch retrieves document content from files, URLs, and stdin.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Size limits to keep a single document from exhausting memory.
// TODO: make these configurable once streaming analysis lands
const (
	MaxFileSizeBytes = 50 * 1024 * 1024  // local files and stdin
	MaxHTTPSizeBytes = 100 * 1024 * 1024 // HTTP bodies, which may lack Content-Length
)

// HTTPRequestTimeout bounds the whole request; the phase timeouts below
// are derived from it.
const HTTPRequestTimeout = 30 * time.Second

var (
	httpDialTimeout           = HTTPRequestTimeout / 6
	httpTLSTimeout            = HTTPRequestTimeout / 6
	httpResponseHeaderTimeout = HTTPRequestTimeout / 2
)

// httpClient is shared across fetches; safe for concurrent use.
var httpClient = &http.Client{
	Timeout: HTTPRequestTimeout,
	Transport: &http.Transport{
		Dial: (&net.Dialer{
			Timeout: httpDialTimeout,
		}).Dial,
		TLSHandshakeTimeout:   httpTLSTimeout,
		ResponseHeaderTimeout: httpResponseHeaderTimeout,
		DisableKeepAlives:     true,
	},
}

// IsURL reports whether the source should be fetched over HTTP.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// limitedReadCloser enforces a byte budget on an underlying reader.
type limitedReadCloser struct {
	io.ReadCloser
	n      int64
	source string
}

func (l *limitedReadCloser) Read(p []byte) (n int, err error) {
	if l.n <= 0 {
		return 0, fmt.Errorf("content from %q exceeds size limit", l.source)
	}
	if int64(len(p)) > l.n {
		p = p[:l.n]
	}
	n, err = l.ReadCloser.Read(p)
	l.n -= int64(n)
	return
}

// GetContent opens a source for reading. Three source kinds are
// supported:
//   - "-" reads standard input
//   - "http://" and "https://" prefixes fetch over HTTP
//   - anything else is treated as a local file path
//
// ctx cancels in-flight HTTP requests; local reads ignore it.
func GetContent(ctx context.Context, source string) (io.ReadCloser, error) {
	switch {
	case source == "-":
		return &limitedReadCloser{
			ReadCloser: os.Stdin,
			n:          MaxFileSizeBytes,
			source:     "stdin",
		}, nil
	case IsURL(source):
		return fetchURL(ctx, source)
	default:
		return fetchFile(source)
	}
}

// ReadAll fetches a source and drains it into memory. Most extraction
// paths need random access (PDF, DOCX), so this is the common entry
// point for the analysis pipeline.
func ReadAll(ctx context.Context, source string) ([]byte, error) {
	rc, err := GetContent(ctx, source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", source, err)
	}
	return data, nil
}

func fetchURL(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %q: %w", url, err)
	}
	req.Header.Set("User-Agent", "stylo/0.1")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %q: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP request for %q failed: %s", url, resp.Status)
	}

	// reject oversized bodies up front when the server declares a length
	if cl := resp.Header.Get("Content-Length"); cl != "" {
		if size, err := strconv.ParseInt(cl, 10, 64); err == nil && size > MaxHTTPSizeBytes {
			resp.Body.Close()
			return nil, fmt.Errorf("HTTP content too large (%d bytes > %d byte limit)",
				size, MaxHTTPSizeBytes)
		}
	}

	return &limitedReadCloser{
		ReadCloser: resp.Body,
		n:          MaxHTTPSizeBytes,
		source:     url,
	}, nil
}

func fetchFile(path string) (io.ReadCloser, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file %q does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("accessing file %q: %w", path, err)
	}

	if info.Size() > MaxFileSizeBytes {
		return nil, fmt.Errorf("file %q is too large (%d bytes > %d byte limit)",
			path, info.Size(), MaxFileSizeBytes)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %q: %w", path, err)
	}
	return file, nil
}
