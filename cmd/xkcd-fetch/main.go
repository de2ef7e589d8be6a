// Command xkcd-fetch fetches one comic and prints its canonical JSON form.
// With -save it also writes the comic to a slot file the viewer's file
// storage can restore.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ytget/xkcd-viewer/internal/config"
	"github.com/ytget/xkcd-viewer/internal/fetch"
	"github.com/ytget/xkcd-viewer/internal/store"
	"github.com/ytget/xkcd-viewer/internal/viewer"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("xkcd-fetch: %v", err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("xkcd-fetch", flag.ContinueOnError)
	endpoint := flags.String("endpoint", config.DefaultEndpointURL, "xkcd base URL")
	timeout := flags.Duration("timeout", fetch.DefaultTimeout, "request timeout")
	savePath := flags.String("save", "", "write the comic to this slot file")
	if err := flags.Parse(args); err != nil {
		return err
	}

	service := fetch.NewService(*endpoint, *timeout)

	number := 0
	switch flags.NArg() {
	case 0:
	case 1:
		n, err := viewer.ParseComicNumber(flags.Arg(0))
		if err != nil {
			return fmt.Errorf("comic number %q: %w", flags.Arg(0), err)
		}
		number = n
	default:
		return fmt.Errorf("expected at most one comic number, got %d arguments", flags.NArg())
	}

	task := fetch.Start(ctx, service, number)
	comic, err := task.Wait(ctx)
	if err != nil {
		return err
	}

	if *savePath != "" {
		if err := store.NewFileStore(*savePath).Save(comic); err != nil {
			return err
		}
		log.Printf("Saved comic %d to %s", comic.Number, *savePath)
	}

	data, err := comic.Encode()
	if err != nil {
		return fmt.Errorf("encode comic: %w", err)
	}
	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}
