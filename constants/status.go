package constants

// BiomarkerStatus classifies a measured value against its reference range.
type BiomarkerStatus string

// Stable values (store these exact strings in DB).
const (
	StatusNormal   BiomarkerStatus = "normal"
	StatusHigh     BiomarkerStatus = "high"
	StatusLow      BiomarkerStatus = "low"
	StatusCritical BiomarkerStatus = "critical"
)

// ParseStatus maps a free-form status label to the canonical enum.
// Unknown or empty labels resolve to StatusNormal.
func ParseStatus(s string) BiomarkerStatus {
	switch s {
	case "normal", "NORMAL", "Normal":
		return StatusNormal
	case "high", "HIGH", "High", "elevated":
		return StatusHigh
	case "low", "LOW", "Low":
		return StatusLow
	case "critical", "CRITICAL", "Critical":
		return StatusCritical
	default:
		return StatusNormal
	}
}

// ExtractionMethod identifies which strategy produced a panel.
type ExtractionMethod string

const (
	MethodAI      ExtractionMethod = "ai"
	MethodPattern ExtractionMethod = "pattern-matching"
)

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

const (
	JobStatusQueued    JobStatus = "QUEUED"     // queued for processing
	JobStatusRunning   JobStatus = "RUNNING"    // in progress
	JobStatusOCROK     JobStatus = "OCR_OK"     // stage 1 completed (text extracted)
	JobStatusExtractOK JobStatus = "EXTRACT_OK" // stage 2 completed (biomarkers extracted)
	JobStatusFailed    JobStatus = "FAILED"     // terminal failure
)

// PanelStatus is the processing state recorded on a panel row.
type PanelStatus string

const (
	PanelStatusProcessing PanelStatus = "PROCESSING"
	PanelStatusCompleted  PanelStatus = "COMPLETED"
	PanelStatusFailed     PanelStatus = "FAILED"
)
