package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ytget/yt-grabber/internal/catalog"
	"github.com/ytget/yt-grabber/internal/config"
	"github.com/ytget/yt-grabber/internal/fetch"
	"github.com/ytget/yt-grabber/internal/model"
	"github.com/ytget/yt-grabber/internal/plan"
	"github.com/ytget/yt-grabber/internal/platform"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppName = "yt-grabber"

	pollInterval = 200 * time.Millisecond
)

func main() {
	urlFlag := flag.String("url", "", "video or playlist URL")
	dirFlag := flag.String("dir", "", "output directory (defaults to the home Downloads folder)")
	pickFlag := flag.String("pick", "", "selection to download: v<N> for a video option, a<N> for an audio option")
	flag.Parse()

	if *urlFlag == "" {
		fmt.Fprintf(os.Stderr, "%s v%s\nusage: %s -url <URL> [-dir DIR] [-pick v1|a1|...]\n", AppName, version, AppName)
		os.Exit(2)
	}

	settings := config.NewSettings()
	if *dirFlag != "" {
		settings.SetDownloadDirectory(*dirFlag)
	}

	ctx := context.Background()
	resolver := platform.NewResolverService()

	fmt.Println("Fetching info...")
	raw, err := resolver.Resolve(ctx, *urlFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if raw.IsPlaylist() {
		printPlaylist(ctx, raw, *urlFlag)
		return
	}

	summary := catalog.BuildVideoSummary(raw, *urlFlag)
	printCatalog(summary)

	if *pickFlag == "" {
		return
	}

	opt, err := findOption(summary.Catalog, *pickFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	dlPlan, err := plan.Compile(opt, settings.GetDownloadDirectory())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := platform.CreateDirectoryIfNotExists(dlPlan.OutputDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to ensure output dir: %v\n", err)
		os.Exit(1)
	}

	if !runDownload(summary.URL, dlPlan, settings.GetMaxParallelDownloads()) {
		os.Exit(1)
	}
}

// printPlaylist surfaces a playlist-shaped resolve. Playlist downloads are
// not supported; only the contents are listed.
func printPlaylist(ctx context.Context, raw *model.RawInfo, url string) {
	summary := catalog.NewPlaylistSummary(raw, url)
	fmt.Printf("Found playlist: %s (%d entries)\n", summary.Title, summary.Count)

	// Best effort: list entry titles when the playlist service can reach
	// them; the resolve-level count stands either way.
	if expanded, err := platform.NewPlaylistService().Expand(ctx, url); err == nil {
		for i, entry := range expanded.Entries {
			fmt.Printf("  %2d. %s\n", i+1, entry.Title)
		}
	}

	fmt.Println("Playlist downloads are not supported.")
}

func printCatalog(summary *model.VideoSummary) {
	fmt.Printf("\n%s", summary.Title)
	if summary.Duration != "" {
		fmt.Printf("  [%s]", summary.Duration)
	}
	fmt.Println()

	fmt.Println("\nAudio options:")
	for i, opt := range summary.Catalog.AudioOptions {
		fmt.Printf("  a%d. %-22s %-12s %s\n", i+1, opt.Label, opt.Ext, opt.SizeLabel)
	}

	fmt.Println("\nVideo options:")
	if len(summary.Catalog.VideoOptions) == 0 {
		fmt.Println("  (none)")
	}
	for i, opt := range summary.Catalog.VideoOptions {
		fmt.Printf("  v%d. %-22s %-12s %s\n", i+1, opt.Label, opt.Ext, opt.SizeLabel)
	}
	fmt.Println()
}

// findOption maps a pick token like "v2" or "a1" onto a catalog entry.
func findOption(c model.Catalog, pick string) (model.Option, error) {
	pick = strings.ToLower(strings.TrimSpace(pick))
	if len(pick) < 2 {
		return model.Option{}, fmt.Errorf("invalid selection %q", pick)
	}

	index, err := strconv.Atoi(pick[1:])
	if err != nil || index < 1 {
		return model.Option{}, fmt.Errorf("invalid selection %q", pick)
	}

	var opts []model.Option
	switch pick[0] {
	case 'a':
		opts = c.AudioOptions
	case 'v':
		opts = c.VideoOptions
	default:
		return model.Option{}, fmt.Errorf("invalid selection %q", pick)
	}

	if index > len(opts) {
		return model.Option{}, fmt.Errorf("selection %q is out of range", pick)
	}
	return opts[index-1], nil
}

// runDownload executes one plan and renders a one-line progress indicator.
func runDownload(url string, dlPlan model.DownloadPlan, maxParallel int) bool {
	service := fetch.NewService(fetch.NewEngine(), maxParallel)
	service.SetEventCallback(func(_ *model.DownloadTask, ev model.ProgressEvent) {
		if ev.Phase != model.PhaseDownloading {
			return
		}
		fmt.Printf("\rDownloading... %5.1f%%  %s / %s  %s   ",
			ev.Fraction*100,
			model.FormatSize(ev.DownloadedBytes),
			model.FormatSize(ev.TotalBytes),
			ev.Speed)
	})

	task, err := service.Start(url, dlPlan)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return false
	}

	for !service.Finished(task.ID) {
		time.Sleep(pollInterval)
	}
	fmt.Println()

	outcome, _ := service.Outcome(task.ID)
	if !outcome.OK {
		fmt.Fprintf(os.Stderr, "Error: %s\n", outcome.Message)
		return false
	}

	fmt.Println(outcome.Message)
	if outcome.PathHint != "" {
		fmt.Printf("Saved to: %s\n", outcome.PathHint)
	}
	return true
}
