package converter

import (
	"stayhub/internal/domain/review"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		ID:         r.ID(),
		PropertyID: r.PropertyID(),
		GuestID:    r.GuestID(),
		Rating:     int32(r.Rating().Value()),
		Comment:    r.Comment().String(),
		CreatedAt:  pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ReviewToUpdateParams(r *review.Review) sqlc.UpdateReviewParams {
	return sqlc.UpdateReviewParams{
		ID:        r.ID(),
		Rating:    int32(r.Rating().Value()),
		Comment:   r.Comment().String(),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReviewFromRow(row sqlc.Reviews) (*review.Review, error) {
	rating, err := review.NewRating(int(row.Rating))
	if err != nil {
		return nil, errs.Wrap(err, "stored rating")
	}
	comment, err := review.NewComment(row.Comment)
	if err != nil {
		return nil, errs.Wrap(err, "stored comment")
	}
	return review.ReconstructReview(
		row.ID,
		row.PropertyID,
		row.GuestID,
		rating,
		comment,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
