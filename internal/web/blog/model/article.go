package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Article published blog articles
type Article struct {
	// ID unique identifier for the article
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// Title title of the article
	Title string `bson:"title" json:"title"`
	// Slug URL-safe unique identifier, assigned from the title when omitted
	Slug string `bson:"slug" json:"slug"`
	// Category free-text key matched against the site's category list
	Category string `bson:"category,omitempty" json:"category"`
	// Excerpt short summary shown in listings
	Excerpt string `bson:"excerpt,omitempty" json:"excerpt"`
	// Content rich text / HTML body
	Content string `bson:"content,omitempty" json:"content"`
	// CoverImage URL of the cover image
	CoverImage string `bson:"coverImage,omitempty" json:"coverImage"`
	// PdfURL URL of an attached PDF
	PdfURL string `bson:"pdfUrl,omitempty" json:"pdfUrl"`
	// Author display name of the author
	Author string `bson:"author,omitempty" json:"author"`
	// CreatedAt time when the article was created, defaults to assignment time
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	// UpdatedAt time when the article was last modified
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// GetID get id
func (a *Article) GetID() string {
	return a.ID.Hex()
}
