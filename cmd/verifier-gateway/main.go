package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/chainproof/chainproof-backend/internal/audit"
	auditClickhouse "github.com/chainproof/chainproof-backend/internal/audit/clickhouse"
	"github.com/chainproof/chainproof-backend/internal/client"
	"github.com/chainproof/chainproof-backend/internal/connection"
	"github.com/chainproof/chainproof-backend/internal/ledger"
	"github.com/chainproof/chainproof-backend/internal/metrics"
	"github.com/chainproof/chainproof-backend/internal/model"
	"github.com/chainproof/chainproof-backend/internal/node"
	"github.com/chainproof/chainproof-backend/internal/transport"
	"github.com/chainproof/chainproof-backend/internal/wallet"
)

var config struct {
	Addr           string   `long:"addr" env:"VERIFIER_GATEWAY_ADDR" description:"http listen addr" default:":8000"`
	Accounts       []string `long:"account" env:"VERIFIER_GATEWAY_ACCOUNTS" env-delim:"," description:"wallet accounts, first is active" default:"0xa11ce00000000000000000000000000000000001"`
	StoreAddress   string   `long:"store-address" env:"VERIFIER_GATEWAY_STORE_ADDRESS" description:"deployed record store address" default:"0x7e9f00000000000000000000000000000000c0de"`
	ClickhouseDSN  string   `long:"clickhouse-dsn" env:"VERIFIER_GATEWAY_CLICKHOUSE_DSN" description:"ClickHouse DSN for the audit mirror, empty disables mirroring"`
	InclusionDelay int      `long:"inclusion-delay-ms" env:"VERIFIER_GATEWAY_INCLUSION_DELAY_MS" description:"simulated consensus delay" default:"2000"`
	UnitPrice      uint64   `long:"unit-price" env:"VERIFIER_GATEWAY_UNIT_PRICE" description:"price per resource unit" default:"25"`
}

var networkChains = map[model.Network]model.ChainID{
	model.Mainnet: "chainproof-mainnet",
	model.Testnet: "chainproof-testnet",
	model.Devnet:  "chainproof-devnet",
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	accounts := make([]model.AccountID, 0, len(config.Accounts))
	for _, a := range config.Accounts {
		accounts = append(accounts, model.AccountID(a))
	}

	known := make([]model.ChainID, 0, len(networkChains))
	for _, id := range networkChains {
		known = append(known, id)
	}
	provider := wallet.NewProvider(logger, accounts, networkChains[model.Devnet], known)

	stores := make(map[model.ChainID]*ledger.Store, len(networkChains))
	nodes := make(map[model.ChainID]connection.NodeClient, len(networkChains))
	for _, chainID := range networkChains {
		store := ledger.NewStore(logger)
		stores[chainID] = store
		n := node.New(logger, store, node.Options{
			ChainID:        chainID,
			UnitPrice:      config.UnitPrice,
			InclusionDelay: time.Duration(config.InclusionDelay) * time.Millisecond,
		})
		nodes[chainID] = node.NewObservedClient(n, metrics.NewNodeClient(chainID))
	}

	if config.ClickhouseDSN != "" {
		repo, repoErr := auditClickhouse.NewRepository(config.ClickhouseDSN, metrics.NewAuditRepository())
		if repoErr != nil {
			logger.Fatal("Failed to open audit repository", zap.Error(repoErr))
		}
		defer func() {
			_ = repo.Close()
		}()
		for chainID, store := range stores {
			mirror := audit.NewMirror(logger, store, chainID, repo, audit.DefaultOptions())
			mirror.Start(ctx)
			defer mirror.Stop()
		}
		logger.Info("Audit mirror enabled")
	}

	live := client.NewLive(logger, provider, metrics.NewTxLifecycle(), client.LiveOptions{
		StoreAddress: model.Address(config.StoreAddress),
		Networks:     networkChains,
		Nodes:        nodes,
	})
	service := client.NewService(logger, live)

	router := chi.NewRouter()
	transport.NewHandler(logger, service, service).Register(router)
	router.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(router),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
