package notification

import (
	"context"
	"log/slog"

	"sitekhata/config"
	"sitekhata/internal/domain/service"

	"go.uber.org/fx"
)

// noopService swallows notifications when Firebase is not configured.
type noopService struct {
	logger *slog.Logger
}

func (s *noopService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	s.logger.Debug("[NoopNotification] Push disabled, skipping",
		slog.String("title", title),
	)

	return nil
}

// ServiceParams holds dependencies for NotificationService, injected by Fx
type ServiceParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService creates a NotificationService based on configuration
func NewNotificationService(params ServiceParams) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Firebase not configured, using no-op notification service")

		return &noopService{logger: params.Logger}, nil
	}

	params.Logger.Info("Using Firebase notification service",
		slog.String("project_id", cfg.ProjectID),
	)

	return NewFirebaseService(params.Ctx, cfg.CredentialsPath)
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotificationService),
)
