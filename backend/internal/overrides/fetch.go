package overrides

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"monsterdex/backend/internal/dex"
	"monsterdex/backend/pkg/errors"
	"monsterdex/backend/pkg/logger"
)

// Fetcher retrieves curated nickname override rows, either from a published
// spreadsheet page or from a local CSV export. Both sources produce the same
// positional rows; validation happens later at apply time.
type Fetcher struct {
	url    string
	path   string
	client *http.Client
	logger *zap.Logger
}

// NewFetcher creates a fetcher. Both sources are optional; with neither
// configured Fetch returns no rows, since overrides are a curation layer,
// not required data.
func NewFetcher(url, path string) *Fetcher {
	return &Fetcher{
		url:    url,
		path:   path,
		client: &http.Client{Timeout: 2 * time.Minute},
		logger: logger.Named("overrides"),
	}
}

// Fetch returns the raw override rows for one rebuild. A configured source
// that cannot be reached is an error, so a rebuild does not silently drop
// every curated nickname.
func (f *Fetcher) Fetch(ctx context.Context) ([]dex.OverrideRow, error) {
	switch {
	case f.url != "":
		return f.fetchPublished(ctx)
	case f.path != "":
		return f.readCSVFile()
	default:
		return nil, nil
	}
}

func (f *Fetcher) fetchPublished(ctx context.Context) ([]dex.OverrideRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, errors.NewFeedUnavailable(f.url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.NewFeedUnavailable(f.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewFeedUnavailable(f.url, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	rows, err := parsePublishedTable(resp.Body)
	if err != nil {
		return nil, errors.NewFeedUnavailable(f.url, err)
	}

	f.logger.Debug("Override rows fetched",
		zap.String("url", f.url),
		zap.Int("rows", len(rows)),
	)
	return rows, nil
}
