package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"vearn/internal/config"
	"vearn/internal/contracts"
	"vearn/internal/core"
	"vearn/internal/db"
	"vearn/internal/http/handler"
	"vearn/internal/http/handler/middleware"
	"vearn/internal/http/payload"
	"vearn/internal/http/server"
	"vearn/internal/metrics"
	"vearn/internal/repository"
	"vearn/internal/thor"
	"vearn/internal/txn"
	"vearn/internal/wallet"
	"vearn/pkg/jwt"
	"vearn/pkg/log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// signer is what both the relay and the keystore offer.
type signer interface {
	txn.Signer
	core.CertSigner
}

func Start() error {
	logger := log.NewZapLogger("vearn", zapcore.InfoLevel)

	config, err := config.NewAppConfig()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	level, err := zapcore.ParseLevel(config.LogLevel)
	if err != nil {
		logger.Errorw("invalid log level", "level", config.LogLevel, "error", err)
		return err
	}
	logger = log.NewZapFileLogger("vearn", level, log.FileConfig{
		Path:       config.LogFile,
		MaxSizeMB:  100,
		MaxBackups: 3,
		MaxAgeDays: 28,
	})
	defer func() { _ = logger.Sync() }()

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL, config.DBMaxOpenConns, logger)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer dbConn.Close()

	// repository
	repo := repository.NewTransactionRepository(dbConn)
	if err = repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// chain access
	client := thor.NewClient(config.NodeURL, config.PollInterval, config.RequestTimeout)

	sgnr, err := newSigner(config, client, logger)
	if err != nil {
		logger.Errorw("failed to create signer", "mode", config.SignerMode, "error", err)
		return err
	}
	txManager := txn.NewManager(sgnr, client)

	trader, err := contracts.NewTrader(config.TraderAddress)
	if err != nil {
		logger.Errorw("invalid trader contract", "error", err)
		return err
	}
	energy, err := contracts.NewEnergy(config.VTHOAddress)
	if err != nil {
		logger.Errorw("invalid energy contract", "error", err)
		return err
	}
	params, err := contracts.NewParams(config.ParamsAddress)
	if err != nil {
		logger.Errorw("invalid params contract", "error", err)
		return err
	}

	registry := metrics.NewRegistry()

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// vearn
	vearn := core.NewVearn(
		logger,
		repo,
		jwtService,
		client,
		txManager,
		sgnr,
		registry,
		trader,
		energy,
		params,
		core.Options{
			VTHODecimals:    int(config.VTHODecimals),
			ReceiptAttempts: config.ReceiptAttempts,
			CertDomain:      config.CertDomain,
			TokenTTL:        config.JWTExpiration,
		})

	// handler
	vearnHlr := handler.NewVearnHandler(
		logger,
		payload.Decoder{},
		vearn)
	healthHlr := handler.NewHealthHandler(logger, dbConn)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger, registry).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Authenticate, vearnHlr.HandleAuthenticate)
	mux.HandleFunc(handler.Connect, vearnHlr.HandleConnect)
	mux.HandleFunc(handler.GetBalance, vearnHlr.HandleGetBalance)
	mux.HandleFunc(handler.GetConfig, vearnHlr.HandleGetConfig)
	mux.HandleFunc(handler.SaveConfig, vearnHlr.HandleSaveConfig)
	mux.HandleFunc(handler.SaveReserve, vearnHlr.HandleSaveReserve)
	mux.HandleFunc(handler.TrackTransaction, vearnHlr.HandleTrackTransaction)
	mux.HandleFunc(handler.GetTransactions, vearnHlr.HandleGetTransactions)
	mux.HandleFunc(handler.Health, healthHlr.HandleHealth)
	mux.Handle("GET /metrics", registry.Handler())

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func newSigner(cfg config.App, client *thor.Client, logger *zap.SugaredLogger) (signer, error) {
	switch cfg.SignerMode {
	case config.SignerModeKeystore:
		ks, err := wallet.LoadKeystore(cfg.KeystorePath, cfg.KeystorePassword, cfg.CertDomain, client)
		if err != nil {
			return nil, err
		}
		logger.Infow("signing with keystore", "account", ks.Address())
		return ks, nil
	case config.SignerModeRelay:
		logger.Infow("signing through wallet relay", "url", cfg.TOSURL)
		return wallet.NewRelay(cfg.TOSURL, cfg.RelayMaxPolls, 0), nil
	}
	return nil, fmt.Errorf("unknown signer mode %q", cfg.SignerMode)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		return sdErr
	}

	return err
}
