package dictionary

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

// RemoteSource downloads a dictionary file over HTTP. The downloaded file is
// kept in a disk cache and reused by later loads.
type RemoteSource struct {
	url              string
	httpClient       *resty.Client
	fileCache        *FileCache
	maxRetryAttempts uint
}

func NewRemoteSource(url string, cacheDirectory string, retryAttempts uint) *RemoteSource {
	return &RemoteSource{
		url:              url,
		httpClient:       resty.New(),
		fileCache:        NewFileCache(cacheDirectory),
		maxRetryAttempts: retryAttempts,
	}
}

func (s *RemoteSource) Close() error {
	return s.httpClient.Close()
}

// cacheName derives a stable file name from the URL.
func (s *RemoteSource) cacheName() string {
	sum := sha256.Sum256([]byte(s.url))
	return hex.EncodeToString(sum[:8])
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	if strings.Contains(errStr, "response error 5") || strings.Contains(errStr, "response error 429") {
		return true
	}
	return false
}

func (s *RemoteSource) download(ctx context.Context) ([]byte, error) {
	var body []byte
	if err := retry.Do(
		func() error {
			response, err := s.httpClient.R().
				SetContext(ctx).
				Get(s.url)
			if err != nil {
				return fmt.Errorf("httpClient.Get > %w", err)
			}
			if response.StatusCode() != http.StatusOK {
				err := fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			body = []byte(response.String())
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(s.maxRetryAttempts+1),
		retry.Delay(100*time.Millisecond),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Info("Retrying dictionary download",
				"attempt", n+1,
				"url", s.url,
				"error", err)
		}),
	); err != nil {
		return nil, err
	}
	return body, nil
}

func (s *RemoteSource) Load(ctx context.Context) (*Dictionary, error) {
	contents, err := s.fileCache.cache(s.cacheName(), func() ([]byte, error) {
		return s.download(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("fileCache.cache > %w", err)
	}
	d, err := Parse(bytes.NewReader(contents))
	if err != nil {
		return nil, fmt.Errorf("Parse(%s) > %w", s.url, err)
	}
	return d, nil
}
