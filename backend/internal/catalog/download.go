package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"monsterdex/backend/pkg/errors"
)

// download replaces the local database file with a fresh copy from the feed
// URL. The copy lands in a temp file first so a failed transfer never
// clobbers the previous database.
func (l *Loader) download(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return errors.NewFeedUnavailable(l.url, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return errors.NewFeedUnavailable(l.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.NewFeedUnavailable(l.url, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.NewFeedUnavailable(l.path, err)
	}

	tmp, err := os.CreateTemp(dir, "catalog-*.db")
	if err != nil {
		return errors.NewFeedUnavailable(l.path, err)
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.NewFeedUnavailable(l.url, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.NewFeedUnavailable(l.path, err)
	}

	if err := os.Rename(tmp.Name(), l.path); err != nil {
		os.Remove(tmp.Name())
		return errors.NewFeedUnavailable(l.path, err)
	}

	l.logger.Info("Catalog database downloaded",
		zap.String("url", l.url),
		zap.String("path", l.path),
	)
	return nil
}
