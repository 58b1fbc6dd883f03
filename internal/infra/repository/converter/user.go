package converter

import (
	"stayhub/internal/domain/user"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		FirstName:    u.Name().First(),
		LastName:     u.Name().Last(),
		PhoneNumber:  pgconv.StringPtrToPgtype(u.Phone()),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	}
}

func UserToProfileParams(u *user.User) sqlc.UpdateUserProfileParams {
	return sqlc.UpdateUserProfileParams{
		ID:          u.ID(),
		FirstName:   u.Name().First(),
		LastName:    u.Name().Last(),
		PhoneNumber: pgconv.StringPtrToPgtype(u.Phone()),
		UpdatedAt:   pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}

func UserFromRow(row sqlc.Users) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, errs.Wrap(err, "stored email")
	}
	name, err := user.NewName(row.FirstName, row.LastName)
	if err != nil {
		return nil, errs.Wrap(err, "stored name")
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role")
	}
	return user.ReconstructUser(
		row.ID,
		email,
		row.PasswordHash,
		name,
		pgconv.StringPtrFromPgtype(row.PhoneNumber),
		role,
		pgconv.TimePtrFromPgtype(row.LastLogin),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
