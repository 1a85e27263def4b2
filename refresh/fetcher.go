package refresh

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rashed-commits/uae-market-intel/models"
)

// Fetcher obtains the latest signal snapshot from the upstream feed.
type Fetcher interface {
	Fetch(ctx context.Context) ([]models.Signal, error)
}

// HTTPFetcher reads the feed endpoint described in the data source
// contract: a JSON object whose "signals" field holds the snapshot.
type HTTPFetcher struct {
	url    string
	client *http.Client
}

func NewHTTPFetcher(url string, timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPFetcher{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context) ([]models.Signal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	var feed models.Feed
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	// A payload without a signals field is a valid empty snapshot.
	if feed.Signals == nil {
		return []models.Signal{}, nil
	}
	return feed.Signals, nil
}
