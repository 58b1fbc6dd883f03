package components

import (
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/jwt"
	"stayhub/internal/usecase"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		fx.Annotate(
			commands.NewAuthCommands,
			fx.From(new(shared.UnitOfWork), new(*jwt.Service), new(clock.Clock)),
		),
		commands.NewUserCommands,
		commands.NewPropertyCommands,
		commands.NewBookingCommands,
		commands.NewPaymentCommands,
		commands.NewReviewCommands,
		commands.NewMessageCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewPropertyQueries,
		queries.NewBookingQueries,
		queries.NewPaymentQueries,
		queries.NewReviewQueries,
		queries.NewMessageQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
