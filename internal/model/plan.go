package model

// PlanKind selects the post-processing the engine performs for a plan.
type PlanKind string

const (
	// PlanDirectStream fetches a single stream with no post-processing
	PlanDirectStream PlanKind = "direct"

	// PlanMuxedStream fetches a video-only and an audio stream and muxes
	// them into one container
	PlanMuxedStream PlanKind = "muxed"

	// PlanTranscodeAudio fetches the best audio stream and transcodes it
	// to a target codec/bitrate
	PlanTranscodeAudio PlanKind = "transcode"
)

// DownloadPlan is a concrete fetch+post-process instruction, created fresh
// per download request and consumed immediately by the fetch service.
type DownloadPlan struct {
	Kind           PlanKind
	Selector       string // engine stream selector, e.g. "137+bestaudio/best"
	AudioCodec     string // target codec for transcode plans
	AudioQuality   string // target bitrate for transcode plans, "192" or "320"
	Ext            string // extension implied by the plan kind
	OutputDir      string
	OutputTemplate string
}

// ProgressPhase tags one progress event.
type ProgressPhase string

const (
	PhaseDownloading ProgressPhase = "downloading"
	PhaseFinished    ProgressPhase = "finished"
	PhaseFailed      ProgressPhase = "failed"
)

// ProgressEvent is one normalized engine progress report. Fraction is
// meaningful only in the downloading phase; TotalBytes is 0 when the engine
// cannot estimate it. Events are transient and never persisted.
type ProgressEvent struct {
	Phase           ProgressPhase
	Fraction        float64 // 0.0 to 1.0
	DownloadedBytes int64
	TotalBytes      int64
	Speed           string // human readable, e.g. "1.2MB/s"
}

// FailureKind classifies a terminal download failure.
type FailureKind string

const (
	// FailureNone marks a successful outcome
	FailureNone FailureKind = ""

	// FailureMissingTranscoder means the external transcoding tool is not
	// installed; the user can act on it
	FailureMissingTranscoder FailureKind = "missing_transcoder"

	// FailureEngine is any other engine-raised fetch or transcode error
	FailureEngine FailureKind = "engine"

	// FailureInternal is an unexpected fault in orchestration code
	FailureInternal FailureKind = "internal"
)

// Outcome is the single terminal result of a download task.
type Outcome struct {
	OK       bool
	PathHint string // best-effort path of the resulting file
	Failure  FailureKind
	Message  string
}
