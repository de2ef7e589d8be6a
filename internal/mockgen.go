package internal

//go:generate mockgen -destination=./mocks/fetcher_mock.go -package=mocks github.com/ytget/xkcd-viewer/internal/fetch Fetcher
//go:generate mockgen -destination=./mocks/store_mock.go -package=mocks github.com/ytget/xkcd-viewer/internal/store Store
