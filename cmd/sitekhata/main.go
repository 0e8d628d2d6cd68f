package main

import (
	"context"
	"log/slog"
	"os"

	"sitekhata/config"
	"sitekhata/internal/delivery"
	"sitekhata/internal/delivery/http"
	"sitekhata/internal/delivery/http/middleware"
	"sitekhata/internal/delivery/http/router/handler"
	"sitekhata/internal/infra/auth"
	"sitekhata/internal/infra/export"
	logs "sitekhata/internal/infra/log"
	"sitekhata/internal/infra/notification"
	"sitekhata/internal/infra/persistence/postgres"
	"sitekhata/internal/infra/pubsub"
	"sitekhata/internal/infra/qrcode"
	"sitekhata/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
		notification.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewSiteRepository,
			postgres.NewWorkerRepository,
			postgres.NewAttendanceRepository,
			postgres.NewExpenseRepository,
			postgres.NewPaymentRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewUPIQRService,
			export.NewXLSXExporter,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewSiteService,
			impl.NewWorkerService,
			impl.NewLedgerService,
			impl.NewReportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewSiteHandler,
			handler.NewWorkerHandler,
			handler.NewLedgerHandler,
			handler.NewReportHandler,
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
