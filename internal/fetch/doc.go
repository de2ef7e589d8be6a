package fetch

// Package fetch retrieves comic metadata from the xkcd JSON endpoint. One
// request is issued per fetch with no retry; every failure is reported as
// ErrFetchFailed. Task wraps a fetch in an awaitable handle so callers can
// resume on their own goroutine.
