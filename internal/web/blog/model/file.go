package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// File metadata for uploaded blobs. Records are created on upload and
// never mutated; deletion is not exposed through the API.
type File struct {
	// ID unique identifier for the file record
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// Filename name on disk, timestamp plus random suffix
	Filename string `bson:"filename" json:"filename"`
	// OriginalName client-supplied name at upload time
	OriginalName string `bson:"originalName" json:"originalName"`
	// MimeType content type reported by the client
	MimeType string `bson:"mimeType,omitempty" json:"mimeType"`
	// Size size in bytes
	Size int64 `bson:"size" json:"size"`
	// Path location on disk
	Path string `bson:"path" json:"path"`
	// URL public URL the blob is served from
	URL string `bson:"url" json:"url"`
	// CreatedAt time when the file was uploaded
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	// UpdatedAt time when the record was last written
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
