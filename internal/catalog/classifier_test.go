package catalog

import (
	"testing"

	"github.com/ytget/yt-grabber/internal/model"
)

func TestClassifyKinds(t *testing.T) {
	tests := []struct {
		name         string
		raw          model.RawRendition
		expectedKind model.Kind
		expectedOK   bool
	}{
		{
			name:         "combined stream",
			raw:          model.RawRendition{ID: "22", Ext: "mp4", Height: float64(720), VCodec: "avc1", ACodec: "mp4a"},
			expectedKind: model.KindVideoAudio,
			expectedOK:   true,
		},
		{
			name:         "video without sound",
			raw:          model.RawRendition{ID: "137", Ext: "mp4", Height: float64(1080), VCodec: "avc1", ACodec: "none"},
			expectedKind: model.KindVideoOnly,
			expectedOK:   true,
		},
		{
			name:         "audio without height",
			raw:          model.RawRendition{ID: "140", Ext: "m4a", ABR: 129.5, VCodec: "none", ACodec: "mp4a"},
			expectedKind: model.KindAudioOnly,
			expectedOK:   true,
		},
		{
			name:         "audio with an integer height still classifies as audio",
			raw:          model.RawRendition{ID: "139", Ext: "m4a", Height: float64(0), ABR: 48, VCodec: "none", ACodec: "mp4a"},
			expectedKind: model.KindAudioOnly,
			expectedOK:   true,
		},
		{
			name:       "storyboard placeholder height is unusable",
			raw:        model.RawRendition{ID: "sb0", Ext: "mhtml", Height: "audio", VCodec: "none", ACodec: "none"},
			expectedOK: false,
		},
		{
			name:       "fractional height without audio is unusable",
			raw:        model.RawRendition{ID: "x", Ext: "mp4", Height: 719.5, VCodec: "avc1", ACodec: "none"},
			expectedOK: false,
		},
		{
			name:       "no codecs at all is unusable",
			raw:        model.RawRendition{ID: "y", Ext: "mp4", Height: float64(720), VCodec: "none", ACodec: "none"},
			expectedOK: false,
		},
		{
			name:         "absent codec fields count as present",
			raw:          model.RawRendition{ID: "z", Ext: "mp4", Height: float64(480)},
			expectedKind: model.KindVideoAudio,
			expectedOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := Classify(tt.raw)
			if ok != tt.expectedOK {
				t.Fatalf("Classify() ok = %v, want %v", ok, tt.expectedOK)
			}
			if !ok {
				return
			}
			if r.Kind != tt.expectedKind {
				t.Errorf("Classify() kind = %s, want %s", r.Kind, tt.expectedKind)
			}
		})
	}
}

func TestClassifyZeroBitrateAudioIsKept(t *testing.T) {
	raw := model.RawRendition{ID: "drc", Ext: "webm", VCodec: "none", ACodec: "opus"}

	r, ok := Classify(raw)
	if !ok {
		t.Fatal("Expected zero-bitrate audio to classify, got drop")
	}
	if r.Bitrate != 0 {
		t.Errorf("Expected bitrate 0, got %f", r.Bitrate)
	}
}

func TestClassifySizeFallback(t *testing.T) {
	tests := []struct {
		name          string
		raw           model.RawRendition
		expectedSize  int64
		expectedLabel string
	}{
		{
			name:          "declared size wins",
			raw:           model.RawRendition{ID: "a", Height: float64(720), VCodec: "avc1", ACodec: "mp4a", Filesize: 2048, FilesizeApprox: 4096},
			expectedSize:  2048,
			expectedLabel: "2.0 KB",
		},
		{
			name:          "approximate size fallback",
			raw:           model.RawRendition{ID: "b", Height: float64(720), VCodec: "avc1", ACodec: "mp4a", FilesizeApprox: 3072},
			expectedSize:  3072,
			expectedLabel: "3.0 KB",
		},
		{
			name:          "missing size yields the unknown label",
			raw:           model.RawRendition{ID: "c", Height: float64(720), VCodec: "avc1", ACodec: "mp4a"},
			expectedSize:  0,
			expectedLabel: model.UnknownSizeLabel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := Classify(tt.raw)
			if !ok {
				t.Fatal("Expected rendition to classify")
			}
			if r.Size != tt.expectedSize {
				t.Errorf("Size = %d, want %d", r.Size, tt.expectedSize)
			}
			if r.SizeLabel != tt.expectedLabel {
				t.Errorf("SizeLabel = %q, want %q", r.SizeLabel, tt.expectedLabel)
			}
		})
	}
}

func TestClassifyNotes(t *testing.T) {
	combined, _ := Classify(model.RawRendition{ID: "22", Height: float64(720), VCodec: "avc1", ACodec: "mp4a", FormatNote: "720p"})
	if combined.Note != NoteStandard {
		t.Errorf("Expected note %q, got %q", NoteStandard, combined.Note)
	}

	audio, _ := Classify(model.RawRendition{ID: "140", VCodec: "none", ACodec: "mp4a", FormatNote: "medium"})
	if audio.Note != "medium" {
		t.Errorf("Expected resolver note to survive for audio, got %q", audio.Note)
	}

	audioNoNote, _ := Classify(model.RawRendition{ID: "141", VCodec: "none", ACodec: "mp4a"})
	if audioNoNote.Note != NoteAudioOnly {
		t.Errorf("Expected note %q, got %q", NoteAudioOnly, audioNoNote.Note)
	}
}
