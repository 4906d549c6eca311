package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	apartmenthandlers "github.com/nordfast/estate-server/internal/handlers/v1/apartment"
	companyhandlers "github.com/nordfast/estate-server/internal/handlers/v1/company"
	investmenthandlers "github.com/nordfast/estate-server/internal/handlers/v1/investment"
	"github.com/nordfast/estate-server/internal/handlers/v1/status"
	webhookhandlers "github.com/nordfast/estate-server/internal/handlers/v1/webhook"
	"github.com/nordfast/estate-server/internal/logging"
	"github.com/nordfast/estate-server/internal/service"
	"github.com/nordfast/estate-server/internal/webhook"
)

type Rest struct {
	Logger    *logrus.Logger
	Port      string
	Service   *service.Service
	Processor *webhook.Processor
	Verifier  *webhook.SignatureVerifier
}

// withLogData gives every huma request its own LogData and emits one log
// line when the request completes, the same shape LoggingWrapper produces
// for the plain handlers.
func (r *Rest) withLogData(ctx huma.Context, next func(huma.Context)) {
	logData := logging.NewLogData(r.Logger)
	endTimer := logData.AddTiming("duration")
	next(huma.WithValue(ctx, logging.LogDataKey, logData))
	endTimer()
	logData.Log().Infof("Handler.%v.Complete", ctx.Operation().OperationID)
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("estate-server", "1.0.0"))
	api.UseMiddleware(r.withLogData)

	webhookhandlers.NewUpdateApartmentAttributeHandler(r.Processor, r.Verifier).Register(api)
	investmenthandlers.NewTransferFundsHandler(r.Service.Investment).Register(api)
	investmenthandlers.NewListClientInvestmentsHandler(r.Service.Investment).Register(api)
	apartmenthandlers.NewGetApartmentHandler(r.Service.Apartment).Register(api)
	apartmenthandlers.NewListCompanyApartmentsHandler(r.Service.Apartment).Register(api)
	companyhandlers.NewListCompaniesHandler(r.Service.Company).Register(api)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
