// Scan a folder the way the player does and print the resulting play order.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/llehouerou/simplicity/internal/scanner"
	"github.com/llehouerou/simplicity/internal/ui/render"
)

func main() {
	workers := flag.Int("workers", 8, "parallel metadata readers")
	sortBy := flag.String("sort", "title", `"title" or "path"`)
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: scanlist [-workers n] [-sort title|path] <folder>")
	}
	root := flag.Arg(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	progress := make(chan scanner.Progress, 16)
	go func() {
		last := scanner.Phase("")
		for p := range progress {
			if p.Phase != last {
				log.Printf("%s...", p.Phase)
				last = p.Phase
			}
		}
	}()

	start := time.Now()
	result, err := scanner.Scan(ctx, root, scanner.Options{
		Workers: *workers,
		SortBy:  scanner.SortOrder(*sortBy),
	}, progress)
	if err != nil {
		log.Fatalf("Scan failed: %v", err)
	}
	log.Printf("Scanned %s in %s: %s", root, time.Since(start).Round(time.Millisecond), result.Summary())

	for i, t := range result.Tracks {
		fmt.Printf("%4d  %-40s  %-24s  %6s  %s\n",
			i+1,
			render.Truncate(t.Title, 40),
			render.Truncate(render.OrDefault(t.Artist, "-"), 24),
			render.Duration(t.Duration),
			t.Path,
		)
	}
	for _, path := range result.Failed {
		log.Printf("unreadable tags: %s", path)
	}
}
