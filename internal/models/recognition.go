package models

import "time"

// RecognitionResult is what the OCR endpoint returns to the caller.
type RecognitionResult struct {
	DetectedText string `json:"detected_text"`
	Language     string `json:"language"`
}

// RecognitionRecord is one completed recognition, kept in MongoDB so users
// can review their recent scans. The uploaded image itself is never stored.
type RecognitionRecord struct {
	AccountID    string    `bson:"account_id,omitempty" json:"account_id,omitempty"`
	FileName     string    `bson:"file_name" json:"file_name"`
	Engine       string    `bson:"engine" json:"engine"`
	DetectedText string    `bson:"detected_text" json:"detected_text"`
	Language     string    `bson:"language" json:"language"`
	DurationMS   int64     `bson:"duration_ms" json:"duration_ms"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
