package plan

import (
	"errors"
	"fmt"

	"github.com/ytget/yt-grabber/internal/model"
)

// ErrNoSelection signals a download request with no active selection.
// Callers treat it as a no-op, not a failure to surface.
var ErrNoSelection = errors.New("no selection")

const (
	// OutputTemplate is the fixed title-based naming template for all plans.
	OutputTemplate = "%(title)s.%(ext)s"

	// BestAudioSelector requests the engine's best available audio stream.
	BestAudioSelector = "bestaudio/best"

	// MP3Codec is the target codec for audio transcode plans.
	MP3Codec = "mp3"

	// Container for video downloads; video-only streams are muxed into it.
	videoContainer = "mp4"
)

// Target bitrates for the synthetic transcode options.
const (
	Quality192 = "192"
	Quality320 = "320"
)

// Compile turns one catalog selection into a download plan writing under
// outputDir. The selection's kind decides the plan exhaustively; an unknown
// kind is a compile error, never a silent fallback.
func Compile(opt model.Option, outputDir string) (model.DownloadPlan, error) {
	if opt.ID == "" {
		return model.DownloadPlan{}, ErrNoSelection
	}

	base := model.DownloadPlan{
		OutputDir:      outputDir,
		OutputTemplate: OutputTemplate,
	}

	switch opt.ID {
	case model.SelectorMP3Best:
		return transcodePlan(base, Quality192), nil
	case model.SelectorMP3320:
		return transcodePlan(base, Quality320), nil
	}

	switch opt.Kind {
	case model.KindAudioOnly:
		// Original codec and container preserved, no transcoding.
		base.Kind = model.PlanDirectStream
		base.Selector = opt.ID
		base.Ext = opt.Ext
	case model.KindVideoOnly:
		// A video-only rendition has no embedded sound; pair it with the
		// best available audio and let the engine mux.
		base.Kind = model.PlanMuxedStream
		base.Selector = opt.ID + "+" + BestAudioSelector
		base.Ext = videoContainer
	case model.KindVideoAudio:
		base.Kind = model.PlanDirectStream
		base.Selector = opt.ID
		base.Ext = videoContainer
	default:
		return model.DownloadPlan{}, fmt.Errorf("unknown rendition kind: %q", opt.Kind)
	}

	return base, nil
}

func transcodePlan(base model.DownloadPlan, quality string) model.DownloadPlan {
	base.Kind = model.PlanTranscodeAudio
	base.Selector = BestAudioSelector
	base.AudioCodec = MP3Codec
	base.AudioQuality = quality
	base.Ext = MP3Codec
	return base
}
