// Package push provides the concrete delivery channel implementations behind
// the PushSender interface.
package push

import (
	"context"
	"log/slog"

	"pulse/config"
	"pulse/internal/domain/constants"
	"pulse/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the push sender, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushSender creates a PushSender based on configuration. The default
// provider is Web Push because subscription rows carry VAPID-shaped
// credentials; FCM treats the endpoint column as the device token.
func NewPushSender(params Params) (service.PushSender, error) {
	cfg := params.Config.Push
	if cfg == nil {
		return nil, errors.New("push configuration is required")
	}

	provider := cfg.Provider
	if provider == "" {
		provider = constants.PushProviderWebPush
	}

	switch provider {
	case constants.PushProviderWebPush:
		params.Logger.Info("Using Web Push delivery channel",
			slog.String("subscriber", cfg.Subscriber),
		)

		return NewWebPushSender(cfg)

	case constants.PushProviderFCM:
		params.Logger.Info("Using FCM delivery channel",
			slog.String("project_id", cfg.FirebaseProjectID),
		)

		return NewFCMSender(params.Ctx, cfg)

	default:
		return nil, errors.Errorf("unknown push provider: %s", provider)
	}
}
