package fetch

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ytget/xkcd-viewer/internal/model"
)

// HTTP constants
const (
	DefaultBaseURL = "https://xkcd.com"
	DefaultTimeout = 15 * time.Second
	InfoFileName   = "info.0.json"

	// MaxBodySize bounds the response body read for a single comic
	MaxBodySize = 1 << 20
)

// Service fetches comics over HTTP
type Service struct {
	baseURL string
	client  *http.Client
}

// NewService creates a new fetch service. An empty baseURL uses DefaultBaseURL,
// a non-positive timeout uses DefaultTimeout.
func NewService(baseURL string, timeout time.Duration) *Service {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// ComicURL returns the metadata URL for a comic number
func (s *Service) ComicURL(number int) string {
	return s.baseURL + "/" + strconv.Itoa(number) + "/" + InfoFileName
}

// LatestURL returns the metadata URL of the latest comic
func (s *Service) LatestURL() string {
	return s.baseURL + "/" + InfoFileName
}

// Fetch retrieves a comic by number
func (s *Service) Fetch(ctx context.Context, number int) (model.Comic, error) {
	return s.get(ctx, s.ComicURL(number))
}

// FetchLatest retrieves the latest comic
func (s *Service) FetchLatest(ctx context.Context) (model.Comic, error) {
	return s.get(ctx, s.LatestURL())
}

// get performs a single GET and decodes the body
func (s *Service) get(ctx context.Context, url string) (model.Comic, error) {
	log.Printf("Fetching comic: %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.Comic{}, &Error{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return model.Comic{}, &Error{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxBodySize))
		return model.Comic{}, &Error{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return model.Comic{}, &Error{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}

	comic, err := model.DecodeComic(body)
	if err != nil {
		return model.Comic{}, &Error{URL: url, Err: err}
	}

	log.Printf("Fetched comic %d (%q) from %s", comic.Number, comic.Title, url)
	return comic, nil
}
