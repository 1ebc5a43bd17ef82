package llm_fx

import (
	"context"

	"go.uber.org/fx"

	"github.com/Gitkbc/Gen-Ai-Tourism/pkg/config"
	"github.com/Gitkbc/Gen-Ai-Tourism/pkg/utils"
)

var Module = fx.Provide(provideGenerativeClient)

func provideGenerativeClient(lc fx.Lifecycle, cfg *config.Config) (utils.GenerativeClientInterface, error) {
	client, err := utils.NewGenerativeClient(cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMModel)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return utils.WithTimeout(client, cfg.LLMTimeout), nil
}
