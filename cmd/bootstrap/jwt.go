package bootstrap

import (
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	if cfg.JWT.AccessTokenDuration <= 0 {
		return nil, errs.Newf("invalid JWT_ACCESS_TOKEN_DURATION: %s", cfg.JWT.AccessTokenDuration)
	}
	if cfg.JWT.RefreshTokenDuration <= cfg.JWT.AccessTokenDuration {
		return nil, errs.Newf("JWT_REFRESH_TOKEN_DURATION (%s) must exceed the access token duration", cfg.JWT.RefreshTokenDuration)
	}

	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenDuration, cfg.JWT.RefreshTokenDuration), nil
}
