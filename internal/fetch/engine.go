package fetch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-grabber/internal/model"
)

// Engine sampling interval; reports between samples are skipped, not queued.
const progressInterval = 500 * time.Millisecond

// ytdlpEngine drives the yt-dlp binary through go-ytdlp.
type ytdlpEngine struct{}

// NewEngine creates the default yt-dlp backed engine
func NewEngine() Engine {
	return &ytdlpEngine{}
}

// Fetch executes one plan. Overwriting an existing output file is enabled,
// matching the shared-output-directory contract.
func (e *ytdlpEngine) Fetch(ctx context.Context, url string, plan model.DownloadPlan, onProgress func(model.ProgressEvent)) (string, error) {
	dl := ytdlp.New().
		Quiet().
		ForceOverwrites().
		RestrictFilenames().
		Output(filepath.Join(plan.OutputDir, plan.OutputTemplate)).
		Format(plan.Selector)

	switch plan.Kind {
	case model.PlanMuxedStream:
		dl = dl.MergeOutputFormat(plan.Ext)
	case model.PlanTranscodeAudio:
		dl = dl.ExtractAudio().
			AudioFormat(plan.AudioCodec).
			AudioQuality(plan.AudioQuality)
	}

	var lastFraction float64
	dl.ProgressFunc(progressInterval, func(update ytdlp.ProgressUpdate) {
		ev := translateProgress(update, lastFraction)
		lastFraction = ev.Fraction
		onProgress(ev)
	})

	result, err := dl.Run(ctx, url)
	if err != nil {
		return "", err
	}
	return extractPathHint(result), nil
}

// translateProgress maps one engine report to a normalized event. When the
// engine cannot report a total the previously known fraction is retained
// rather than dropping to zero. Fractions are clamped to [0,1]; the engine
// occasionally reports non-monotonic byte counts.
func translateProgress(update ytdlp.ProgressUpdate, lastFraction float64) model.ProgressEvent {
	ev := model.ProgressEvent{
		Phase:           model.PhaseDownloading,
		Fraction:        lastFraction,
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
	}

	if update.TotalBytes > 0 {
		fraction := float64(update.DownloadedBytes) / float64(update.TotalBytes)
		if fraction < 0 {
			fraction = 0
		}
		if fraction > 1 {
			fraction = 1
		}
		ev.Fraction = fraction
	}

	if !update.Started.IsZero() {
		elapsed := time.Since(update.Started)
		if elapsed.Seconds() > 0 {
			bytesPerSecond := float64(update.DownloadedBytes) / elapsed.Seconds()
			ev.Speed = fmt.Sprintf("%.1fMB/s", bytesPerSecond/1024/1024)
		}
	}

	return ev
}

// extractPathHint pulls the first downloaded filename out of the engine
// result, if the engine reported one.
func extractPathHint(result *ytdlp.Result) string {
	if result == nil {
		return ""
	}
	info, err := result.GetExtractedInfo()
	if err != nil || len(info) == 0 {
		return ""
	}
	if info[0].Filename != nil {
		return *info[0].Filename
	}
	return ""
}
