package commands

import (
	"context"

	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/patch"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

// UpdateProfileRequest is a partial update; nil fields are kept and an empty
// phone number clears it.
type UpdateProfileRequest struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
}

type UserCommands interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*user.User, error)
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, clock: clk}
}

func (uc *userCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*user.User, error) {
	var updated *user.User
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, tx.DB(), userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return user.ErrUserNotFound
			}
			return err
		}

		name, err := user.NewName(
			patch.Coalesce(req.FirstName, u.Name().First()),
			patch.Coalesce(req.LastName, u.Name().Last()),
		)
		if err != nil {
			return err
		}

		phone := u.Phone()
		if req.PhoneNumber != nil {
			if phone, err = user.NewPhone(req.PhoneNumber); err != nil {
				return err
			}
		}

		u.UpdateProfile(name, phone, uc.clock.Now())
		if err := tx.Users().UpdateProfile(ctx, tx.DB(), u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
