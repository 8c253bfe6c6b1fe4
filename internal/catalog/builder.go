package catalog

import (
	"fmt"
	"math"
	"sort"

	"github.com/ytget/yt-grabber/internal/model"
)

const (
	// MaxVideoOptions caps the video menu, matching the product limit.
	MaxVideoOptions = 4

	// BitrateBucketSize groups near-identical audio bitrates for dedup.
	BitrateBucketSize = 10
)

// Labels for the synthetic transcode options.
const (
	LabelMP3320  = "MP3 320kbps"
	LabelMP3Best = "Best Audio (MP3)"
)

// Default titles when the resolver omits them.
const (
	DefaultVideoTitle    = "Unknown Title"
	DefaultPlaylistTitle = "Unknown Playlist"
)

// Build normalizes the full raw rendition list of one video into a curated
// catalog. Calling it twice on the same list yields identical catalogs.
func Build(raw []model.RawRendition) model.Catalog {
	var audio, video []model.Rendition
	for _, rr := range raw {
		r, ok := Classify(rr)
		if !ok {
			continue
		}
		if r.Kind == model.KindAudioOnly {
			audio = append(audio, r)
		} else {
			video = append(video, r)
		}
	}

	return model.Catalog{
		AudioOptions: buildAudioOptions(audio),
		VideoOptions: buildVideoOptions(video),
	}
}

// BuildVideoSummary assembles the per-video summary around the catalog.
func BuildVideoSummary(info *model.RawInfo, url string) *model.VideoSummary {
	title := info.Title
	if title == "" {
		title = DefaultVideoTitle
	}
	return &model.VideoSummary{
		Title:     title,
		Thumbnail: info.Thumbnail,
		Duration:  info.DurationString,
		URL:       url,
		Catalog:   Build(info.Formats),
	}
}

// NewPlaylistSummary surfaces a playlist-shaped resolve. No catalog is
// built for playlists.
func NewPlaylistSummary(info *model.RawInfo, url string) *model.PlaylistSummary {
	title := info.Title
	if title == "" {
		title = DefaultPlaylistTitle
	}
	entries := make([]model.PlaylistEntry, 0, len(info.Entries))
	for _, e := range info.Entries {
		entries = append(entries, model.PlaylistEntry{
			ID:    e.ID,
			Title: e.Title,
			URL:   e.URL,
		})
	}
	return &model.PlaylistSummary{
		ID:      info.ID,
		Title:   title,
		URL:     url,
		Count:   len(info.Entries),
		Entries: entries,
	}
}

// buildVideoOptions sorts video renditions best-first and keeps the first
// entry per distinct height. Height 0 is excluded entirely.
func buildVideoOptions(video []model.Rendition) []model.Option {
	sort.SliceStable(video, func(i, j int) bool {
		if video[i].Height != video[j].Height {
			return video[i].Height > video[j].Height
		}
		return video[i].Size > video[j].Size
	})

	seen := make(map[int]bool)
	var opts []model.Option
	for _, r := range video {
		if r.Height == 0 || seen[r.Height] {
			continue
		}
		seen[r.Height] = true
		opts = append(opts, model.Option{
			ID:        r.ID,
			Kind:      r.Kind,
			Label:     fmt.Sprintf("%dp Video", r.Height),
			Ext:       r.Ext,
			Height:    r.Height,
			Size:      r.Size,
			SizeLabel: r.SizeLabel,
		})
		if len(opts) >= MaxVideoOptions {
			break
		}
	}
	return opts
}

// bitrateBucket rounds a bitrate to the nearest BitrateBucketSize kbps.
func bitrateBucket(abr float64) int {
	return int(math.Round(abr/BitrateBucketSize)) * BitrateBucketSize
}

// buildAudioOptions sorts real audio renditions best-first, keeps the first
// entry per rounded-bitrate bucket (bucket 0 excluded), and prepends the
// two always-offered transcode options: 320 kbps first, then the best/192
// preset. The 192 entry borrows its displayed size from the best real
// candidate; a transcoded 320 kbps size cannot be predicted.
func buildAudioOptions(audio []model.Rendition) []model.Option {
	sort.SliceStable(audio, func(i, j int) bool {
		bi, bj := bitrateBucket(audio[i].Bitrate), bitrateBucket(audio[j].Bitrate)
		if bi != bj {
			return bi > bj
		}
		return audio[i].Size > audio[j].Size
	})

	seen := make(map[int]bool)
	var real []model.Option
	for _, r := range audio {
		bucket := bitrateBucket(r.Bitrate)
		if bucket == 0 || seen[bucket] {
			continue
		}
		seen[bucket] = true
		real = append(real, model.Option{
			ID:        r.ID,
			Kind:      r.Kind,
			Label:     fmt.Sprintf("%dkbps Audio (%s)", bucket, r.Ext),
			Ext:       r.Ext,
			Bitrate:   r.Bitrate,
			Size:      r.Size,
			SizeLabel: r.SizeLabel,
		})
	}

	bestSize := int64(0)
	bestLabel := model.UnknownSizeLabel
	if len(real) > 0 {
		bestSize = real[0].Size
		bestLabel = real[0].SizeLabel
	}

	opts := []model.Option{
		{
			ID:        model.SelectorMP3320,
			Kind:      model.KindAudioOnly,
			Label:     LabelMP3320,
			Ext:       "mp3",
			Bitrate:   320,
			SizeLabel: model.UnknownSizeLabel,
			Synthetic: true,
		},
		{
			ID:        model.SelectorMP3Best,
			Kind:      model.KindAudioOnly,
			Label:     LabelMP3Best,
			Ext:       "mp3",
			Bitrate:   192,
			Size:      bestSize,
			SizeLabel: bestLabel,
			Synthetic: true,
		},
	}
	return append(opts, real...)
}
