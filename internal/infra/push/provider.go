package push

import (
	"context"
	"log/slog"

	"civicradar/config"
	"civicradar/internal/domain/constants"
	"civicradar/internal/domain/service"
	"civicradar/internal/errors"

	"go.uber.org/fx"
)

type SenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPushSender selects the delivery transport named by push.provider
func NewPushSender(params SenderParams) (service.PushSender, error) {
	pushCfg := params.Config.Push
	if pushCfg == nil {
		return nil, errors.New("push configuration is missing")
	}

	switch pushCfg.Provider {
	case constants.PushProviderFirebase:
		params.Logger.Info("Using Firebase Cloud Messaging push sender")

		return NewFirebaseSender(context.Background(), pushCfg.Firebase)
	case constants.PushProviderWebPush, "":
		params.Logger.Info("Using Web Push sender")

		return NewWebPushSender(pushCfg.WebPush, nil, params.Logger)
	default:
		return nil, errors.Errorf("unsupported push provider: %s", pushCfg.Provider)
	}
}
