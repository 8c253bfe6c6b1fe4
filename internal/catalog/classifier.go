package catalog

import (
	"math"

	"github.com/ytget/yt-grabber/internal/model"
)

// Human notes attached to classified renditions, mirroring the labels the
// menu shows next to each entry.
const (
	NoteStandard  = "Standard"
	NoteVideoOnly = "Video Only"
	NoteAudioOnly = "Audio Only"
)

// codecPresent reports whether a resolver codec field names a real codec.
// Some streams leave the field empty; only the literal "none" marks a
// stream as lacking the codec.
func codecPresent(codec string) bool {
	return codec != "none"
}

// intHeight extracts a genuine integer height from the untyped raw field.
// Upstream metadata sometimes supplies fractional values or placeholders
// like "audio" for image/storyboard streams; those are not video heights.
func intHeight(v any) (int, bool) {
	switch h := v.(type) {
	case float64:
		if h != math.Trunc(h) {
			return 0, false
		}
		return int(h), true
	case int:
		return h, true
	default:
		return 0, false
	}
}

// Classify normalizes one raw rendition. The second return is false when
// the record is unusable (no integer height and no audio stream); unusable
// records are excluded from all catalogs.
func Classify(raw model.RawRendition) (model.Rendition, bool) {
	size := raw.Size()
	r := model.Rendition{
		ID:        raw.ID,
		Ext:       raw.Ext,
		Note:      raw.FormatNote,
		Size:      size,
		SizeLabel: model.FormatSize(size),
	}

	if h, ok := intHeight(raw.Height); ok && codecPresent(raw.VCodec) {
		r.Height = h
		if codecPresent(raw.ACodec) {
			r.Kind = model.KindVideoAudio
			r.Note = NoteStandard
		} else {
			r.Kind = model.KindVideoOnly
			r.Note = NoteVideoOnly
		}
		return r, true
	}

	// Audio streams usually carry no height at all. A zero-bitrate audio
	// record is still classified; bucket-zero filtering during catalog
	// build excludes it from the final menu.
	if !codecPresent(raw.VCodec) && codecPresent(raw.ACodec) {
		r.Kind = model.KindAudioOnly
		r.Bitrate = raw.ABR
		if r.Note == "" {
			r.Note = NoteAudioOnly
		}
		return r, true
	}

	return model.Rendition{}, false
}
