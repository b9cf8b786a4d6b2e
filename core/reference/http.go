package reference

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"product-alternatives/core/table"
)

// SheetPlaceholder is replaced by the sheet name in HTTP source URLs.
const SheetPlaceholder = "{sheet}"

// HTTPSource downloads the inventory workbook, or a per-sheet CSV export, over HTTP.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates a source for url with the given request timeout.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Name() string {
	return KindHTTP
}

// Fetch downloads the document. A text/csv response is decoded as CSV,
// anything else as a workbook from which the sheet is read.
func (s *HTTPSource) Fetch(ctx context.Context, sheet string) (*table.Table, error) {
	url := strings.ReplaceAll(s.url, SheetPlaceholder, sheet)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download reference: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("reference download returned %s", resp.Status)
	}

	if isCSV(resp.Header.Get("Content-Type")) {
		return table.ReadCSV(resp.Body)
	}
	return table.ReadXLSX(resp.Body, sheet)
}

func isCSV(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.HasPrefix(ct, "text/csv") || strings.HasPrefix(ct, "application/csv")
}
