package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap/zapcore"

	"solpay/internal/cache"
	"solpay/internal/config"
	"solpay/internal/core"
	"solpay/internal/db"
	"solpay/internal/http/handler"
	"solpay/internal/http/handler/middleware"
	"solpay/internal/http/payload"
	"solpay/internal/http/server"
	"solpay/internal/metrics"
	"solpay/internal/repository"
	solanasvc "solpay/internal/solana"
	"solpay/internal/wallet"
	"solpay/pkg/jwt"
	"solpay/pkg/log"
)

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level, err := zapcore.ParseLevel(config.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	logger := log.NewZapLogger("solpay", level)

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewPaymentRepository(dbConn)
	if err := repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// metrics + cache
	registry := metrics.Registry("solpay")
	names := cache.NewUsernameCache(config.RedisAddr, config.RedisPassword, logger, registry)

	// jwt sessions
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))
	sessions := handler.NewSession(jwtService)

	// chain services
	rpcClient := rpc.New(config.SolanaRPCURL)
	estimator := solanasvc.NewFeeEstimator(rpcClient, logger)
	builder := solanasvc.NewTxBuilder(rpcClient)
	waiter := solanasvc.NewConfirmWaiter(rpcClient, logger)

	// the local signer is optional; without it /api/payment/send reports
	// that no wallet is connected
	var signer core.Signer
	if config.WalletSecret != "" {
		keypair, err := wallet.NewKeypairSigner(config.WalletSecret, rpcClient)
		if err != nil {
			logger.Errorw("failed to load wallet keypair", "error", err)
			return err
		}
		signer = keypair
		logger.Infow("local wallet signer enabled", "address", keypair.Address())
	}

	// core services
	orchestrator := core.NewOrchestrator(estimator, builder, signer, waiter, repo, logger, registry,
		func(status core.Status) {
			logger.Infow("payment status", "kind", status.Kind, "text", status.Text)
		})
	ledger := core.NewLedger(repo, repo, names, logger, registry)
	accounts := core.NewAccounts(repo, names, logger)

	// handlers
	userHlr := handler.NewUserHandler(logger, payload.DecodeValidator{}, sessions, accounts)
	payHlr := handler.NewPaymentHandler(logger, payload.DecodeValidator{}, sessions, ledger, accounts, orchestrator)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.UpsertUser, userHlr.HandleUpsertUser)
	mux.HandleFunc(handler.CreateContact, userHlr.HandleCreateContact)
	mux.HandleFunc(handler.ListContacts, userHlr.HandleListContacts)
	mux.HandleFunc(handler.AllContacts, userHlr.HandleAllContacts)
	mux.HandleFunc(handler.SearchContacts, userHlr.HandleSearchContacts)
	mux.HandleFunc(handler.SearchRecipient, userHlr.HandleSearchRecipient)
	mux.HandleFunc(handler.CreatePayment, payHlr.HandleCreatePayment)
	mux.HandleFunc(handler.ListPending, payHlr.HandleListPending)
	mux.HandleFunc(handler.SettlePayment, payHlr.HandleSettlePayment)
	mux.HandleFunc(handler.StoreTransaction, payHlr.HandleStoreTransaction)
	mux.HandleFunc(handler.SendPayment, payHlr.HandleSendPayment)

	// ops endpoints
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := names.Ping(r.Context()); err != nil {
			logger.Errorw("health check failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
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
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
