// Package dto request/response payloads exchanged with the admin frontend.
package dto

import "time"

// ArticleInput payload for creating an article. Slug and CreatedAt are
// assigned server-side when omitted.
type ArticleInput struct {
	Title      string     `json:"title"`
	Slug       string     `json:"slug"`
	Category   string     `json:"category"`
	Excerpt    string     `json:"excerpt"`
	Content    string     `json:"content"`
	CoverImage string     `json:"coverImage"`
	PdfURL     string     `json:"pdfUrl"`
	Author     string     `json:"author"`
	CreatedAt  *time.Time `json:"createdAt"`
}

// ArticleUpdate partial update payload. Only non-nil fields are written.
type ArticleUpdate struct {
	Title      *string    `json:"title"`
	Slug       *string    `json:"slug"`
	Category   *string    `json:"category"`
	Excerpt    *string    `json:"excerpt"`
	Content    *string    `json:"content"`
	CoverImage *string    `json:"coverImage"`
	PdfURL     *string    `json:"pdfUrl"`
	Author     *string    `json:"author"`
	CreatedAt  *time.Time `json:"createdAt"`
}
