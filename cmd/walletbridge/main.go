package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/walletbridge/internal/bridge"
	"github.com/gabapcia/walletbridge/internal/config"
	"github.com/gabapcia/walletbridge/internal/handlers/cli"
	"github.com/gabapcia/walletbridge/internal/handlers/jsonrpc"
	"github.com/gabapcia/walletbridge/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/walletbridge/internal/infra/storage/redis"
	"github.com/gabapcia/walletbridge/internal/networkregistry"
	"github.com/gabapcia/walletbridge/internal/pkg/logger"
	"github.com/gabapcia/walletbridge/internal/pkg/telemetry"
	httptransport "github.com/gabapcia/walletbridge/internal/pkg/transport/http"
	"github.com/gabapcia/walletbridge/internal/txtracker"
)

const telemetryShutdownTimeout = 5 * time.Second

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Telemetry goes first so the logger can attach its OTLP core.
	if cfg.OTELEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.OTELServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), telemetryShutdownTimeout)
			defer cancel()
			_ = shutdown(ctx)
		}()
	}

	// stdout belongs to command output.
	if err := logger.Init(logger.WithLevel(cfg.LogLevel), logger.WithOutput(os.Stderr)); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	registry, err := networkregistry.NewFromFile(cfg.NetworksFile, networkregistry.WithSecrets(cfg.Secrets()))
	if err != nil {
		return err
	}

	var (
		trackerOpts []txtracker.Option
		pending     cli.PendingLister
	)
	if cfg.RedisAddr != "" {
		journal, err := redis.NewClient(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Username: cfg.RedisUsername,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return err
		}
		defer journal.Close()

		trackerOpts = append(trackerOpts, txtracker.WithJournal(journal))
		pending = journal
	}

	dialer := ethereum.NewDialer(
		ethereum.WithHTTPClient(httptransport.NewStandardClient(
			httptransport.WithTimeout(cfg.RPCTimeout),
			httptransport.WithRetryMax(cfg.RPCRetryMax),
		)),
	)

	srv := jsonrpc.NewServer(cfg.ListenAddr, func(ctx context.Context) (jsonrpc.ClosableProvider, error) {
		key, err := cfg.WalletKey()
		if err != nil {
			return nil, err
		}

		b, err := bridge.New(ctx, dialer, registry, cfg.DefaultChainID, key, bridge.WithTrackerOptions(trackerOpts...))
		if err != nil {
			return nil, err
		}

		logger.Info(ctx, "wallet bridge ready",
			"wallet.address", b.Address().Hex(),
			"network.chain_id", cfg.DefaultChainID,
		)
		return b, nil
	})

	return cli.Run(ctx, srv, registry, pending)
}
