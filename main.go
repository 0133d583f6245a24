package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/api"
	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/categorize"
	"github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/invoice"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/metrics"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/operator/actions"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/session"
	"github.com/carson-networks/expense-server/internal/source"
	"github.com/carson-networks/expense-server/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.WithField("storageDriver", envConfig.StorageDriver).Info("expense-server starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbStorage, err := storage.NewStorage(ctx, envConfig, logger)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	verifier, err := newVerifier(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("auth.NewStaticVerifier")
		return
	}

	sessions := session.NewStore(dbStorage.Sessions, logger)
	serverMetrics := metrics.New()

	op := operator.NewOperatorDelegator(&actions.Dependencies{
		Source: source.NewClient(source.Config{
			URL:      envConfig.SourceURL,
			UserID:   envConfig.SourceUserID,
			DataDate: envConfig.SourceDataDate,
			Timeout:  envConfig.UpstreamTimeout,
		}, nil),
		Submitter:  invoice.NewClient(envConfig.SubmissionURL, envConfig.UpstreamTimeout, nil),
		Sessions:   sessions,
		Normalizer: categorize.NewNormalizer(time.Now),
		Metrics:    serverMetrics,
	}, envConfig.OperatorWorkers)
	op.Start()
	defer op.Stop()

	svc := service.NewService(service.Options{
		Verifier:   verifier,
		Sessions:   sessions,
		Operator:   op,
		SessionTTL: envConfig.SessionTTL,
		Dashboard: service.DashboardConfig{
			PageSize:    envConfig.PageSize,
			AccountName: envConfig.AccountName,
			WalletID:    envConfig.WalletID,
			PeriodFrom:  envConfig.PeriodFrom,
			PeriodTo:    envConfig.PeriodTo,
		},
	})

	httpRest := api.Rest{
		Logger:  logger,
		Port:    envConfig.Port,
		Service: svc,
		Storage: dbStorage,
		Metrics: serverMetrics,
	}
	httpRest.Serve(ctx)
}

// newVerifier prefers a configured bcrypt hash over the plain password.
func newVerifier(envConfig *config.Config) (auth.CredentialVerifier, error) {
	if envConfig.AuthPasswordHash != "" {
		return auth.NewStaticVerifier(envConfig.AuthUsername, envConfig.AuthPasswordHash)
	}
	return auth.NewStaticVerifierFromPassword(envConfig.AuthUsername, envConfig.AuthPassword)
}
