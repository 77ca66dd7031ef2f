package main

import (
	"context"
	"log/slog"
	"os"

	"finboard/config"
	"finboard/internal/delivery"
	"finboard/internal/delivery/http"
	"finboard/internal/delivery/http/middleware"
	"finboard/internal/delivery/http/router/handler"
	"finboard/internal/infra/advisor"
	logs "finboard/internal/infra/log"
	"finboard/internal/infra/newswire"
	"finboard/internal/infra/persistence/memory"
	"finboard/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewUserRepository,
			memory.NewDocumentRepository,
			memory.NewChatRepository,
			memory.NewFinancialDataRepository,
			memory.NewNewsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			advisor.NewService,
			newswire.NewSearcher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewDocumentService,
			impl.NewChatService,
			impl.NewFinancialService,
			impl.NewNewsService,
			impl.NewAnalysisService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewDocumentHandler,
			handler.NewChatHandler,
			handler.NewFinancialHandler,
			handler.NewNewsHandler,
			handler.NewAnalysisHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
