package entity

import "time"

// Asset is an uploaded observation file. Assets are created only through the
// upload endpoint and are immutable afterwards; the ID is assigned by the
// backend once the upload completes.
type Asset struct {
	ID           string    `json:"id"`
	OriginalName string    `json:"originalName"`
	ContentType  string    `json:"contentType"`
	Size         int64     `json:"size"`
	Path         string    `json:"path"`
	UploadedAt   time.Time `json:"uploadedAt"`
	PresignedURL string    `json:"presignedUrl"`
	DirectURL    string    `json:"directUrl"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
}
