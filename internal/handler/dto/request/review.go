package request

import (
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	Rating     int       `json:"rating" binding:"required,min=1,max=5"`
	Comment    string    `json:"comment" binding:"required,notblank,max=1000"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,notblank,max=1000"`
}

func (r *CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		PropertyID: r.PropertyID,
		Rating:     r.Rating,
		Comment:    r.Comment,
	}
}

func (r *UpdateReviewRequest) ToCommand() commands.UpdateReviewRequest {
	return commands.UpdateReviewRequest{Rating: r.Rating, Comment: r.Comment}
}
