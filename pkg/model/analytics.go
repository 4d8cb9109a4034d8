package model

import "time"

// UserCounts summarizes registered and currently active users.
type UserCounts struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

// DocumentCounts summarizes uploaded and processed documents.
type DocumentCounts struct {
	Total     int `json:"total"`
	Processed int `json:"processed"`
}

// QueryCounts summarizes chatbot queries by answering mode.
type QueryCounts struct {
	Total     int `json:"total"`
	Langchain int `json:"langchain"`
}

// Document represents an uploaded knowledge-base document.
type Document struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	FileType    string    `json:"file_type"`
	FileSize    int64     `json:"file_size"`
	UploadedAt  time.Time `json:"uploaded_at"`
	IsProcessed bool      `json:"is_processed"`
	UploadedBy  string    `json:"uploaded_by,omitempty"`
}

// Query represents a single chatbot query and its answer.
// Response is empty in the recent-activity lists of the overview.
type Query struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Response  string    `json:"response,omitempty"`
	ModeUsed  string    `json:"mode_used"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id,omitempty"`
}

// AnalyticsOverview is the aggregate payload powering the dashboard widgets.
type AnalyticsOverview struct {
	Users           UserCounts     `json:"users"`
	Documents       DocumentCounts `json:"documents"`
	Queries         QueryCounts    `json:"queries"`
	RecentDocuments []Document     `json:"recent_documents"`
	RecentQueries   []Query        `json:"recent_queries"`
}
