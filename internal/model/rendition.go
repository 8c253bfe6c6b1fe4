package model

// Kind classifies a rendition into the stable taxonomy used by the catalog
// builder and the plan compiler.
type Kind string

const (
	// KindVideoAudio is a combined stream playable as-is
	KindVideoAudio Kind = "video+audio"

	// KindVideoOnly is a video stream with no embedded sound
	KindVideoOnly Kind = "video"

	// KindAudioOnly is an audio stream with no picture
	KindAudioOnly Kind = "audio"
)

// Reserved selector IDs for the always-offered synthetic transcode options.
// Values match the preset identifiers the fetch engine understands.
const (
	SelectorMP3320  = "audio_mp3_320"
	SelectorMP3Best = "audio_mp3_best"
)

// RawRendition is one rendition record exactly as supplied by the media
// resolver. Field shapes mirror the yt-dlp format JSON; no uniqueness or
// completeness is guaranteed before classification. Height stays untyped
// because upstream metadata carries numbers, placeholders like "audio" for
// storyboard streams, or nothing at all.
type RawRendition struct {
	ID             string  `json:"format_id"`
	Ext            string  `json:"ext"`
	Height         any     `json:"height"`
	ABR            float64 `json:"abr"`
	Filesize       float64 `json:"filesize"`
	FilesizeApprox float64 `json:"filesize_approx"`
	VCodec         string  `json:"vcodec"`
	ACodec         string  `json:"acodec"`
	FormatNote     string  `json:"format_note"`
}

// Size returns the declared byte size, falling back to the approximate size,
// or 0 when neither is known.
func (rr RawRendition) Size() int64 {
	if rr.Filesize > 0 {
		return int64(rr.Filesize)
	}
	if rr.FilesizeApprox > 0 {
		return int64(rr.FilesizeApprox)
	}
	return 0
}

// RawEntry is one flat playlist entry in a resolver response.
type RawEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// RawInfo is the resolver's response for one URL: a single video when
// Formats is populated, a playlist when Entries is populated.
type RawInfo struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Thumbnail      string         `json:"thumbnail"`
	DurationString string         `json:"duration_string"`
	WebpageURL     string         `json:"webpage_url"`
	Formats        []RawRendition `json:"formats"`
	Entries        []RawEntry     `json:"entries"`
}

// IsPlaylist reports whether the response is playlist-shaped. Playlist
// responses bypass the catalog builder entirely.
func (ri *RawInfo) IsPlaylist() bool {
	return len(ri.Entries) > 0
}

// Rendition is one classified, normalized rendition. Height is meaningful
// only for video kinds, Bitrate only for audio-only renditions.
type Rendition struct {
	ID        string
	Kind      Kind
	Height    int
	Bitrate   float64 // kbps
	Ext       string
	Note      string
	Size      int64 // 0 when unknown
	SizeLabel string
}

// Option is one user-facing catalog entry. The two synthetic transcode
// options carry the reserved selector IDs and no backing rendition.
type Option struct {
	ID        string
	Kind      Kind
	Label     string
	Ext       string
	Height    int
	Bitrate   float64
	Size      int64
	SizeLabel string
	Synthetic bool
}

// Catalog is the curated per-video menu: audio options best-first with the
// synthetic transcode entries at the head, video options best-first.
type Catalog struct {
	AudioOptions []Option
	VideoOptions []Option
}

// VideoSummary is the result of one successful single-video resolve. It is
// constructed once and held by the caller until the next resolve discards it.
type VideoSummary struct {
	Title     string
	Thumbnail string
	Duration  string
	URL       string
	Catalog   Catalog
}

// PlaylistEntry is one video reference inside a playlist summary.
type PlaylistEntry struct {
	ID    string
	Title string
	URL   string
}

// PlaylistSummary is the result of a playlist-shaped resolve. Downloads are
// not compiled from it; it only surfaces the playlist contents.
type PlaylistSummary struct {
	ID      string
	Title   string
	URL     string
	Count   int
	Entries []PlaylistEntry
}
