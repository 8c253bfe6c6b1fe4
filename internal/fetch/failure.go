package fetch

import (
	"fmt"
	"strings"

	"github.com/ytget/yt-grabber/internal/model"
)

// transcoderTool is the external tool yt-dlp shells out to for muxing and
// audio extraction. Its absence is the one engine failure the user can fix
// themselves.
const transcoderTool = "ffmpeg"

// MissingTranscoderMessage guides the user to install the tool.
const MissingTranscoderMessage = "FFmpeg not found. Cannot merge video/audio or convert to MP3."

// ClassifyFailure maps an engine error onto the failure taxonomy. Any error
// text mentioning the transcoder tool, in any case, classifies as a missing
// tool; everything else the engine raised stays a generic engine error.
func ClassifyFailure(err error) model.FailureKind {
	if err == nil {
		return model.FailureNone
	}
	if strings.Contains(strings.ToLower(err.Error()), transcoderTool) {
		return model.FailureMissingTranscoder
	}
	return model.FailureEngine
}

// failureOutcome builds the terminal outcome for an engine error, preserving
// the raw message for engine failures.
func failureOutcome(err error) model.Outcome {
	kind := ClassifyFailure(err)
	message := ""
	switch kind {
	case model.FailureMissingTranscoder:
		message = MissingTranscoderMessage
	default:
		message = fmt.Sprintf("Download error: %v", err)
	}
	return model.Outcome{
		Failure: kind,
		Message: message,
	}
}

// internalOutcome builds the terminal outcome for an unexpected fault in
// orchestration code.
func internalOutcome(cause any) model.Outcome {
	return model.Outcome{
		Failure: model.FailureInternal,
		Message: fmt.Sprintf("Unexpected error: %v", cause),
	}
}
