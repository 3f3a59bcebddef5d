package request_models

// CreateTemplateRequest is bound from the multipart form that also carries
// the template ZIP and preview images. Tags arrive as a JSON-encoded array.
type CreateTemplateRequest struct {
	Name             string `form:"name" binding:"required"`
	Slug             string `form:"slug" binding:"required"`
	Description      string `form:"description" binding:"required"`
	ShortDescription string `form:"shortDescription"`
	Price            string `form:"price" binding:"required"`
	CategoryID       string `form:"categoryId"`
	Tags             string `form:"tags"`
	DemoURL          string `form:"demoUrl"`
	IsFeatured       bool   `form:"isFeatured"`
}

type UpdateTemplateRequest struct {
	Name             *string  `json:"name"`
	Description      *string  `json:"description"`
	ShortDescription *string  `json:"short_description"`
	Price            *string  `json:"price"`
	CategoryID       *string  `json:"category_id"`
	Tags             []string `json:"tags"`
	DemoURL          *string  `json:"demo_url"`
	IsActive         *bool    `json:"is_active"`
	IsFeatured       *bool    `json:"is_featured"`
}

// CatalogQueryParams mirrors the raw catalog filter query string. Values are
// parsed and validated in the catalog service before touching the store.
type CatalogQueryParams struct {
	CategoryID string `form:"categoryId"`
	Search     string `form:"search"`
	MinPrice   string `form:"minPrice"`
	MaxPrice   string `form:"maxPrice"`
	SortBy     string `form:"sortBy"`
}
