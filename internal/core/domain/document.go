package domain

import "time"

type DocumentStatus string

const (
	StatusProcessing DocumentStatus = "processing"
	StatusCompleted  DocumentStatus = "completed"
	StatusError      DocumentStatus = "error"
)

// Document is a single uploaded file plus everything the analysis pipeline
// derived from it. Content is attached synchronously at upload time; the
// risk fields stay unset until the deferred analysis task completes and are
// immutable afterwards.
type Document struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	SizeBytes   int64          `json:"size_bytes"`
	MimeType    string         `json:"mime_type"`
	UploadedAt  time.Time      `json:"uploaded_at"`
	Status      DocumentStatus `json:"status"`
	RiskScore   *float64       `json:"risk_score,omitempty"`
	Summary     string         `json:"summary,omitempty"`
	RiskFactors []string       `json:"risk_factors,omitempty"`
	Content     ContentRecord  `json:"content"`
}

// Completed reports whether the risk fields may be read.
func (d *Document) Completed() bool {
	return d.Status == StatusCompleted
}

// FileInfo is the raw tuple the upload surface hands to the registry.
// No file body ever reaches the core.
type FileInfo struct {
	Name      string `json:"name"`
	SizeBytes int64  `json:"size_bytes"`
	MimeType  string `json:"mime_type"`
}

// RiskAssessment is the output of the placeholder fraud scoring step,
// applied to a document in a single atomic transition.
type RiskAssessment struct {
	RiskScore   float64  `json:"risk_score"`
	Summary     string   `json:"summary"`
	RiskFactors []string `json:"risk_factors"`
}

type RiskBand string

const (
	RiskLow    RiskBand = "Low Risk"
	RiskMedium RiskBand = "Medium Risk"
	RiskHigh   RiskBand = "High Risk"
)

// BandForScore maps a risk score to its display band. Thresholds are
// exact: [0,30) low, [30,70) medium, [70,100) high.
func BandForScore(score float64) RiskBand {
	switch {
	case score < 30:
		return RiskLow
	case score < 70:
		return RiskMedium
	default:
		return RiskHigh
	}
}
