package entity

import "time"

// FileTypePDF is the only file type accepted at the upload boundary.
const FileTypePDF = "pdf"

// DocumentAnalysis is the structured advisor output attached to a document.
// It starts empty on upload and is replaced wholesale when an analysis runs.
type DocumentAnalysis struct {
	Summary         string   `json:"summary"`         // One-paragraph summary of the document.
	Insights        []string `json:"insights"`        // Key observations extracted from the document.
	Recommendations []string `json:"recommendations"` // Suggested follow-up actions.
}

// NewEmptyAnalysis returns the zero analysis a document carries until the
// advisor has processed it.
func NewEmptyAnalysis() *DocumentAnalysis {
	return &DocumentAnalysis{
		Summary:         "",
		Insights:        []string{},
		Recommendations: []string{},
	}
}

// Document represents a user-uploaded financial document.
type Document struct {
	ID          int64             `json:"id"`                 // Sequential identifier assigned by the store.
	UserID      int64             `json:"userId"`             // The user who owns this document.
	Title       string            `json:"title"`              // Display title, defaults to the uploaded file name.
	FileContent string            `json:"fileContent"`        // Base64-encoded file body.
	FileType    string            `json:"fileType"`           // File extension without the dot; only "pdf" is accepted.
	Category    string            `json:"category"`           // User-chosen category, e.g. "investment".
	UploadDate  time.Time         `json:"uploadDate"`         // Server-assigned upload timestamp.
	Analysis    *DocumentAnalysis `json:"analysis,omitempty"` // Advisor analysis; empty until generated.
}
