// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/clearsol/clear-restake/api"
	"github.com/clearsol/clear-restake/api/handlers"
	"github.com/clearsol/clear-restake/cache"
	"github.com/clearsol/clear-restake/chains/svm"
	"github.com/clearsol/clear-restake/config"
	"github.com/clearsol/clear-restake/health"
	"github.com/clearsol/clear-restake/metrics"
	"github.com/clearsol/clear-restake/observability"
	"github.com/clearsol/clear-restake/protocol/clear"
	"github.com/clearsol/clear-restake/restake"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var Version string

// Services are the process wide singletons shared by the session API and the CLI.
type Services struct {
	Config       *config.Config
	Wallet       *svm.KeypairWallet
	Connection   *svm.Connection
	ClearAPI     *clear.ClearAPI
	Labels       *cache.LabelCache
	Refresher    *restake.BalanceRefresher
	Orchestrator *restake.Orchestrator
}

// LoadConfig reads the configuration selected by the config flag and configures the logger.
func LoadConfig() (*config.Config, error) {
	configuration, err := config.GetConfig(viper.GetString(config.ConfigFlagName))
	if err != nil {
		return nil, err
	}

	level, err := zerolog.ParseLevel(configuration.LogLevel)
	if err != nil {
		return nil, err
	}
	observability.ConfigureLogger(level, os.Stdout, configuration.LogJSON)

	log.Info().Msg("Successfully loaded configuration")
	return configuration, nil
}

// Approver returns the approval policy selected by the yes flag.
func Approver() svm.Approver {
	if viper.GetBool(config.YesFlagName) {
		return svm.AutoApprover{}
	}
	return svm.NewPromptApprover(os.Stdin, os.Stdout)
}

// NewServices connects the wallet, RPC node and Clear API. Label and balance
// failures are logged and leave the values unknown.
func NewServices(
	ctx context.Context,
	configuration *config.Config,
	approver svm.Approver,
	restakeMetrics *metrics.RestakeMetrics,
) (*Services, error) {
	svmConfig, err := svm.NewSVMConfig(configuration.Chain)
	if err != nil {
		return nil, err
	}
	conn := svm.NewConnection(rpc.New(svmConfig.GeneralChainConfig.Endpoint), svmConfig)
	log.Info().Str("chain", svmConfig.GeneralChainConfig.Name).Msgf("Connected to %s", svmConfig.GeneralChainConfig.Endpoint)

	wallet, err := newWallet(configuration, approver)
	if err != nil {
		return nil, err
	}

	clearAPI := clear.NewClearAPI(configuration.ApiURL)
	labels := cache.NewLabelCache(ctx, clearAPI, configuration.Network, configuration.LabelAddress, configuration.LabelTTL())
	_, err = labels.Refresh(ctx)
	if err != nil {
		log.Warn().Msgf("Label not available: %s", err)
	}

	refresher := restake.NewBalanceRefresher(conn, restakeMetrics)
	if owner, ok := wallet.PublicKey(); ok {
		log.Info().Msgf("Wallet %s connected", owner)
		refresher.Refresh(ctx, owner)
	}

	orchestrator := restake.NewOrchestrator(
		configuration.ApiURL,
		wallet,
		conn,
		clearAPI,
		labels,
		refresher,
		restakeMetrics,
	)

	return &Services{
		Config:       configuration,
		Wallet:       wallet,
		Connection:   conn,
		ClearAPI:     clearAPI,
		Labels:       labels,
		Refresher:    refresher,
		Orchestrator: orchestrator,
	}, nil
}

func newWallet(configuration *config.Config, approver svm.Approver) (*svm.KeypairWallet, error) {
	if configuration.KeypairPath != "" {
		return svm.NewKeypairWallet(configuration.KeypairPath, approver)
	}

	if configuration.WalletAddress != "" {
		publicKey, err := solana.PublicKeyFromBase58(configuration.WalletAddress)
		if err != nil {
			return nil, fmt.Errorf("invalid wallet address %s: %w", configuration.WalletAddress, err)
		}
		return svm.NewWatchWallet(publicKey), nil
	}

	return nil, nil
}

// Run serves the session API until the process is signalled.
func Run() error {
	configuration, err := LoadConfig()
	panicOnError(err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	meter, shutdown, err := observability.Meter(ctx, configuration.OpenTelemetryCollectorURL)
	panicOnError(err)
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}()

	restakeMetrics, err := metrics.NewRestakeMetrics(ctx, meter, configuration.Env, configuration.Id)
	panicOnError(err)

	services, err := NewServices(ctx, configuration, Approver(), restakeMetrics)
	panicOnError(err)

	go health.StartHealthEndpoint(configuration.HealthPort, map[string]health.Probe{
		"rpc": services.Connection,
	})

	restakeHandler := handlers.NewRestakeHandler(services.Orchestrator, services.Refresher, services.Labels)
	labelHandler := handlers.NewLabelHandler(services.Labels)
	balanceHandler := handlers.NewBalanceHandler(services.Wallet, services.Refresher, configuration.Token)
	go api.Serve(ctx, configuration.ApiAddr, restakeHandler, labelHandler, balanceHandler)

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	log.Info().Msgf("Started restake client %s. Version: v%s", configuration.Id, Version)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)
	return nil
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
