package components

import (
	"student-travels/internal/pkg/clock"
	"student-travels/internal/usecase"
	"student-travels/internal/usecase/commands"
	"student-travels/internal/usecase/queries"

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
		commands.NewAuthCommands,
		commands.NewUserUseCase,
		commands.NewCategoryUseCase,
		commands.NewOfferUseCase,
		commands.NewBookingUseCase,
		commands.NewReviewUseCase,
		commands.NewFavouriteUseCase,
		commands.NewMessageUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCategoryQueries,
		queries.NewOfferQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
		queries.NewFavouriteQueries,
		queries.NewMessageQueries,
		queries.NewDashboardQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
