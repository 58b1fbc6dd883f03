package review

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	id         uuid.UUID
	propertyID uuid.UUID
	guestID    uuid.UUID
	rating     Rating
	comment    Comment
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReview(id, propertyID, guestID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:         id,
		propertyID: propertyID,
		guestID:    guestID,
		rating:     rating,
		comment:    comment,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructReview(id, propertyID, guestID uuid.UUID, rating Rating, comment Comment, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:         id,
		propertyID: propertyID,
		guestID:    guestID,
		rating:     rating,
		comment:    comment,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Edit applies a partial update. Nil fields are kept.
func (r *Review) Edit(rating *int, comment *string, now time.Time) error {
	next := *r
	if rating != nil {
		v, err := NewRating(*rating)
		if err != nil {
			return err
		}
		next.rating = v
	}
	if comment != nil {
		c, err := NewComment(*comment)
		if err != nil {
			return err
		}
		next.comment = c
	}
	next.updatedAt = now
	*r = next
	return nil
}

func (r *Review) EnsureAuthor(userID uuid.UUID) error {
	if r.guestID != userID {
		return ErrNotReviewAuthor
	}
	return nil
}

func (r *Review) ID() uuid.UUID         { return r.id }
func (r *Review) PropertyID() uuid.UUID { return r.propertyID }
func (r *Review) GuestID() uuid.UUID    { return r.guestID }
func (r *Review) Rating() Rating        { return r.rating }
func (r *Review) Comment() Comment      { return r.comment }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }
func (r *Review) UpdatedAt() time.Time  { return r.updatedAt }
