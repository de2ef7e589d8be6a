package fetch

import (
	"context"

	"github.com/ytget/xkcd-viewer/internal/model"
)

// Fetcher defines the interface for the comic fetch service.
type Fetcher interface {
	// Fetch retrieves the comic with the given number. The number is not
	// validated; callers pass a positive integer.
	Fetch(ctx context.Context, number int) (model.Comic, error)

	// FetchLatest retrieves the most recently published comic
	FetchLatest(ctx context.Context) (model.Comic, error)
}
