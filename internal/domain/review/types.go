package review

import "stayhub/internal/pkg/errs"

var (
	ErrInvalidRating  = errs.Mark(errs.New("rating must be between 1 and 5"), errs.ErrValidation)
	ErrEmptyComment   = errs.Mark(errs.New("comment cannot be empty"), errs.ErrValidation)
	ErrCommentTooLong = errs.Mark(errs.New("comment exceeds maximum length"), errs.ErrValidation)

	ErrReviewNotFound      = errs.Mark(errs.New("review not found"), errs.ErrNotFound)
	ErrReviewAlreadyExists = errs.Mark(errs.New("you have already reviewed this property"), errs.ErrConflict)
	ErrNotReviewAuthor     = errs.Mark(errs.New("you do not have permission to modify this review"), errs.ErrForbidden)
)
