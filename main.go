package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/nordfast/estate-server/api"
	"github.com/nordfast/estate-server/internal/config"
	"github.com/nordfast/estate-server/internal/logging"
	"github.com/nordfast/estate-server/internal/operator"
	"github.com/nordfast/estate-server/internal/service"
	"github.com/nordfast/estate-server/internal/storage"
	"github.com/nordfast/estate-server/internal/webhook"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("estate-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)

	delegator := operator.NewOperatorDelegator(dbStorage, 4)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator)
	processor := webhook.NewProcessor(logger, dbStorage.Apartments)
	verifier := webhook.NewSignatureVerifier(envConfig.WebhookSecret)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:    logger,
			Port:      "9446",
			Service:   svc,
			Processor: processor,
			Verifier:  verifier,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
