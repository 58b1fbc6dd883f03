package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReviewResponse struct {
	ID           uuid.UUID `json:"id"`
	PropertyID   uuid.UUID `json:"property_id"`
	PropertyName string    `json:"property_name"`
	GuestID      uuid.UUID `json:"guest_id"`
	GuestName    string    `json:"guest_name"`
	Rating       int32     `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ReviewListItemResponse struct {
	ID        uuid.UUID `json:"id"`
	GuestID   uuid.UUID `json:"guest_id"`
	GuestName string    `json:"guest_name"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewListResponse struct {
	Reviews    []*ReviewListItemResponse `json:"reviews"`
	NextCursor *string                   `json:"next_cursor"`
}

type RatingSummaryResponse struct {
	PropertyID    uuid.UUID `json:"property_id"`
	AverageRating float64   `json:"average_rating"`
	ReviewCount   int64     `json:"review_count"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	var res ReviewResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromReviewList(items []*queries.ReviewListItem, next *queries.Cursor) *ReviewListResponse {
	res := &ReviewListResponse{
		Reviews:    make([]*ReviewListItemResponse, len(items)),
		NextCursor: nextCursor(next),
	}
	for i, it := range items {
		var item ReviewListItemResponse
		_ = copier.Copy(&item, it)
		res.Reviews[i] = &item
	}
	return res
}

func FromRatingSummary(s *queries.RatingSummary) *RatingSummaryResponse {
	return &RatingSummaryResponse{
		PropertyID:    s.PropertyID,
		AverageRating: s.AverageRating,
		ReviewCount:   s.ReviewCount,
	}
}
