package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ytget/xkcd-viewer/internal/fetch"
	"github.com/ytget/xkcd-viewer/internal/model"
	"github.com/ytget/xkcd-viewer/internal/store"
	"github.com/ytget/xkcd-viewer/internal/viewer"
	"github.com/ytget/xkcd-viewer/internal/xkcdtest"
)

var woodpecker = model.Comic{
	Number:      614,
	Title:       "Woodpecker",
	Description: "If you don't have an extension cord I can get that too.",
	ImageURL:    "https://imgs.xkcd.com/comics/woodpecker.png",
}

func TestRun_PrintsComic(t *testing.T) {
	server := xkcdtest.NewServer(t, woodpecker)

	var out bytes.Buffer
	if err := run(context.Background(), []string{"-endpoint", server.URL, "614"}, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	comic, err := model.DecodeComic(out.Bytes())
	if err != nil {
		t.Fatalf("Output is not a comic: %v\n%s", err, out.String())
	}
	if comic != woodpecker {
		t.Errorf("Expected %+v, got %+v", woodpecker, comic)
	}
}

func TestRun_LatestAndSave(t *testing.T) {
	server := xkcdtest.NewServer(t, model.Comic{Number: 353, Title: "Python"}, woodpecker)
	path := filepath.Join(t.TempDir(), "last_comic.json")

	var out bytes.Buffer
	if err := run(context.Background(), []string{"-endpoint", server.URL, "-save", path}, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if got := server.Requests(); !reflect.DeepEqual(got, []string{"/info.0.json"}) {
		t.Errorf("Expected a single latest request, got %v", got)
	}

	saved, err := store.NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if saved != woodpecker {
		t.Errorf("Expected saved %+v, got %+v", woodpecker, saved)
	}
}

func TestRun_Errors(t *testing.T) {
	server := xkcdtest.NewServer(t, woodpecker)

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"invalid number", []string{"-endpoint", server.URL, "abc"}, viewer.ErrInvalidNumber},
		{"zero", []string{"-endpoint", server.URL, "0"}, viewer.ErrInvalidNumber},
		{"missing comic", []string{"-endpoint", server.URL, "1"}, fetch.ErrFetchFailed},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), test.args, &out)
			if !errors.Is(err, test.want) {
				t.Errorf("Expected %v, got %v", test.want, err)
			}
			if out.Len() != 0 {
				t.Errorf("Expected no output, got %q", out.String())
			}
		})
	}

	var out bytes.Buffer
	if err := run(context.Background(), []string{"-endpoint", server.URL, "1", "2"}, &out); err == nil {
		t.Error("Expected error for two comic numbers")
	}

	server.FailWith(http.StatusServiceUnavailable)
	if err := run(context.Background(), []string{"-endpoint", server.URL, "614"}, &out); !errors.Is(err, fetch.ErrFetchFailed) {
		t.Errorf("Expected ErrFetchFailed, got %v", err)
	}
}
