package pipeline

// Pipeline step names reported through ProgressCallback
const (
	StepExtract     = "extract"
	StepStructure   = "structure"
	StepVariables   = "variables"
	StepClassify    = "classify"
	StepQuality     = "quality"
	StepSynthesize  = "synthesize"
	StepCreateAgent = "create_agent"
	StepSaveAgent   = "save_agent"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs.
// It may be called from multiple goroutines.
type ProgressCallback func(event ProgressEvent)

func emit(cb ProgressCallback, step, message string, content any) {
	if cb != nil {
		cb(ProgressEvent{Step: step, Message: message, Content: content})
	}
}
