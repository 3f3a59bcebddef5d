package response_models

import "github.com/google/uuid"

type ReviewerResponse struct {
	ID              uuid.UUID `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	ProfileImageURL string    `json:"profile_image_url,omitempty"`
}

type ReviewResponse struct {
	ID        uuid.UUID        `json:"id"`
	Rating    int              `json:"rating"`
	Comment   string           `json:"comment,omitempty"`
	User      ReviewerResponse `json:"user"`
	CreatedAt int64            `json:"created_at"`
}
