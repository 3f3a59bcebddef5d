package response_models

import "github.com/google/uuid"

// TemplateResponse is a catalog row enriched with its category and live
// review aggregates. AvgRating stays nil for unrated templates so clients
// can tell "unrated" apart from "rated zero".
type TemplateResponse struct {
	ID               uuid.UUID         `json:"id"`
	Name             string            `json:"name"`
	Slug             string            `json:"slug"`
	Description      string            `json:"description"`
	ShortDescription string            `json:"short_description,omitempty"`
	Price            string            `json:"price"`
	Category         *CategoryResponse `json:"category,omitempty"`
	AuthorID         uuid.UUID         `json:"author_id"`
	PreviewImages    []string          `json:"preview_images"`
	Tags             []string          `json:"tags"`
	DemoURL          string            `json:"demo_url,omitempty"`
	DownloadURL      string            `json:"download_url,omitempty"`
	FileSize         string            `json:"file_size,omitempty"`
	IsActive         bool              `json:"is_active"`
	IsFeatured       bool              `json:"is_featured"`
	Downloads        int               `json:"downloads"`
	AvgRating        *float64          `json:"avg_rating,omitempty"`
	ReviewCount      int64             `json:"review_count"`
	CreatedAt        int64             `json:"created_at"`
	UpdatedAt        int64             `json:"updated_at"`
}
