package commands

import (
	"context"

	"stayhub/internal/domain/property"
	"stayhub/internal/domain/review"
	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	PropertyID uuid.UUID
	Rating     int
	Comment    string
}

type UpdateReviewRequest struct {
	Rating  *int
	Comment *string
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, guestID uuid.UUID) (*review.Review, error)
	UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) (*review.Review, error)
	DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole user.Role) error
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clk}
}

func (uc *reviewCommandsImpl) CreateReview(ctx context.Context, req CreateReviewRequest, guestID uuid.UUID) (*review.Review, error) {
	rev, err := review.NewReview(uuid.New(), req.PropertyID, guestID, req.Rating, req.Comment, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Properties().FindByID(ctx, tx.DB(), req.PropertyID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return property.ErrPropertyNotFound
			}
			return err
		}

		exists, err := tx.Reviews().ExistsForGuest(ctx, tx.DB(), req.PropertyID, guestID)
		if err != nil {
			return err
		}
		if exists {
			return review.ErrReviewAlreadyExists
		}

		// The unique index still guards two racing first reviews
		if _, err := tx.Reviews().Create(ctx, tx.DB(), rev); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return review.ErrReviewAlreadyExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rev, nil
}

func (uc *reviewCommandsImpl) UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) (*review.Review, error) {
	var updated *review.Review
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := findReview(ctx, tx, reviewID)
		if err != nil {
			return err
		}
		if err := rev.EnsureAuthor(actorID); err != nil {
			return err
		}

		if err := rev.Edit(req.Rating, req.Comment, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Reviews().Update(ctx, tx.DB(), rev); err != nil {
			return err
		}
		updated = rev
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *reviewCommandsImpl) DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole user.Role) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := findReview(ctx, tx, reviewID)
		if err != nil {
			return err
		}
		if actorRole != user.RoleAdmin {
			if err := rev.EnsureAuthor(actorID); err != nil {
				return err
			}
		}
		return tx.Reviews().Delete(ctx, tx.DB(), reviewID)
	})
}

func findReview(ctx context.Context, tx shared.Tx, id uuid.UUID) (*review.Review, error) {
	rev, err := tx.Reviews().FindByID(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, review.ErrReviewNotFound
		}
		return nil, err
	}
	return rev, nil
}
