//go:build unit || e2e

package builder

import (
	"time"

	domreview "stayhub/internal/domain/review"
	reqdto "stayhub/internal/handler/dto/request"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewBuilder struct {
	ID           uuid.UUID
	PropertyID   uuid.UUID
	PropertyName string
	GuestID      uuid.UUID
	GuestName    string
	Rating       int
	Comment      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)
	return &ReviewBuilder{
		ID:           uuid.New(),
		PropertyID:   uuid.New(),
		PropertyName: "Seaside Cottage",
		GuestID:      uuid.New(),
		GuestName:    "Test User",
		Rating:       5,
		Comment:      "Lovely stay!",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(r.ID, r.PropertyID, r.GuestID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildInfra() sqlc.Reviews {
	return sqlc.Reviews{
		ID:         r.ID,
		PropertyID: r.PropertyID,
		GuestID:    r.GuestID,
		Rating:     int32(r.Rating),
		Comment:    r.Comment,
		CreatedAt:  pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt:  pgtype.Timestamptz{Time: r.UpdatedAt, Valid: true},
	}
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		PropertyID: r.PropertyID,
		Rating:     r.Rating,
		Comment:    r.Comment,
	}
}

func (r *ReviewBuilder) BuildUpdateRequestDTO() reqdto.UpdateReviewRequest {
	rating := r.Rating
	comment := r.Comment
	return reqdto.UpdateReviewRequest{
		Rating:  &rating,
		Comment: &comment,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:           r.ID,
		PropertyID:   r.PropertyID,
		PropertyName: r.PropertyName,
		GuestID:      r.GuestID,
		GuestName:    r.GuestName,
		Rating:       int32(r.Rating),
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *ReviewBuilder) BuildListItem() *queries.ReviewListItem {
	return &queries.ReviewListItem{
		ID:        r.ID,
		GuestID:   r.GuestID,
		GuestName: r.GuestName,
		Rating:    int32(r.Rating),
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithID(id uuid.UUID) *ReviewBuilder {
	r.ID = id
	return r
}

func (r *ReviewBuilder) WithGuestID(guestID uuid.UUID) *ReviewBuilder {
	r.GuestID = guestID
	return r
}

func (r *ReviewBuilder) WithPropertyID(propertyID uuid.UUID) *ReviewBuilder {
	r.PropertyID = propertyID
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) WithCreatedAt(createdAt time.Time) *ReviewBuilder {
	r.CreatedAt = createdAt
	r.UpdatedAt = createdAt
	return r
}

func (r *ReviewBuilder) AsPoorRating() *ReviewBuilder {
	r.Rating = 1
	r.Comment = "Not as advertised"
	return r
}
