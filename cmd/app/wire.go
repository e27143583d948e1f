//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/sparsha/skincare-ai/internal/bootstrap"
	"github.com/sparsha/skincare-ai/internal/domain/advisor"
	"github.com/sparsha/skincare-ai/internal/domain/skintype"
	"github.com/sparsha/skincare-ai/internal/domain/weather"
	"github.com/sparsha/skincare-ai/internal/infra/config"
	httpiface "github.com/sparsha/skincare-ai/internal/interface/http"
	"github.com/sparsha/skincare-ai/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAdvisorConfig,
		provideChatClient,
		provideClassifier,
		provideWeatherClient,
		skintype.NewService,
		weather.NewService,
		advisor.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
