package plan

import (
	"errors"
	"strings"
	"testing"

	"github.com/ytget/yt-grabber/internal/model"
)

func TestCompileSyntheticOptions(t *testing.T) {
	tests := []struct {
		name            string
		id              string
		expectedQuality string
	}{
		{
			name:            "192kbps preset",
			id:              model.SelectorMP3Best,
			expectedQuality: Quality192,
		},
		{
			name:            "320kbps preset",
			id:              model.SelectorMP3320,
			expectedQuality: Quality320,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(model.Option{ID: tt.id, Kind: model.KindAudioOnly, Synthetic: true}, "/tmp/out")
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			if p.Kind != model.PlanTranscodeAudio {
				t.Errorf("Expected transcode plan, got %s", p.Kind)
			}
			if p.Selector != BestAudioSelector {
				t.Errorf("Expected selector %q, got %q", BestAudioSelector, p.Selector)
			}
			if p.AudioCodec != MP3Codec {
				t.Errorf("Expected codec mp3, got %q", p.AudioCodec)
			}
			if p.AudioQuality != tt.expectedQuality {
				t.Errorf("Expected quality %q, got %q", tt.expectedQuality, p.AudioQuality)
			}
			if p.Ext != "mp3" {
				t.Errorf("Expected mp3 extension, got %q", p.Ext)
			}
		})
	}
}

func TestCompileVideoOnlyRequiresMux(t *testing.T) {
	p, err := Compile(model.Option{ID: "137", Kind: model.KindVideoOnly, Ext: "mp4"}, "/tmp/out")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if p.Kind != model.PlanMuxedStream {
		t.Fatalf("Expected muxed plan, got %s", p.Kind)
	}
	if !strings.Contains(p.Selector, "137") {
		t.Errorf("Selector %q must contain the original identifier", p.Selector)
	}
	if !strings.Contains(p.Selector, "bestaudio") {
		t.Errorf("Selector %q must request best audio", p.Selector)
	}
	if p.Ext != "mp4" {
		t.Errorf("Expected mp4 extension, got %q", p.Ext)
	}
}

func TestCompileDirectStreams(t *testing.T) {
	tests := []struct {
		name        string
		opt         model.Option
		expectedExt string
	}{
		{
			name:        "combined stream keeps mp4",
			opt:         model.Option{ID: "22", Kind: model.KindVideoAudio, Ext: "mp4"},
			expectedExt: "mp4",
		},
		{
			name:        "audio keeps its native container",
			opt:         model.Option{ID: "251", Kind: model.KindAudioOnly, Ext: "webm"},
			expectedExt: "webm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(tt.opt, "/tmp/out")
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			if p.Kind != model.PlanDirectStream {
				t.Errorf("Expected direct plan, got %s", p.Kind)
			}
			if p.Selector != tt.opt.ID {
				t.Errorf("Expected native selector %q, got %q", tt.opt.ID, p.Selector)
			}
			if strings.Contains(p.Selector, "bestaudio") {
				t.Errorf("Direct plans must never request muxing, got %q", p.Selector)
			}
			if p.Ext != tt.expectedExt {
				t.Errorf("Expected extension %q, got %q", tt.expectedExt, p.Ext)
			}
		})
	}
}

func TestCompileEmptySelection(t *testing.T) {
	_, err := Compile(model.Option{}, "/tmp/out")
	if !errors.Is(err, ErrNoSelection) {
		t.Errorf("Expected ErrNoSelection, got %v", err)
	}
}

func TestCompileUnknownKind(t *testing.T) {
	_, err := Compile(model.Option{ID: "x", Kind: "subtitle"}, "/tmp/out")
	if err == nil {
		t.Error("Expected error for unknown kind, got nil")
	}
}

func TestCompileCarriesOutputSettings(t *testing.T) {
	p, err := Compile(model.Option{ID: "22", Kind: model.KindVideoAudio, Ext: "mp4"}, "/data/downloads")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if p.OutputDir != "/data/downloads" {
		t.Errorf("Expected output dir to carry through, got %q", p.OutputDir)
	}
	if p.OutputTemplate != OutputTemplate {
		t.Errorf("Expected template %q, got %q", OutputTemplate, p.OutputTemplate)
	}
}
