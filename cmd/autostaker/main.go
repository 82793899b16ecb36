package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog/log"
	"github.com/textileio/go-autostaker/buildinfo"
	"github.com/textileio/go-autostaker/internal/router"
	"github.com/textileio/go-autostaker/pkg/ledger/impl/ethereum"
	"github.com/textileio/go-autostaker/pkg/logging"
	"github.com/textileio/go-autostaker/pkg/metrics"
	nonceimpl "github.com/textileio/go-autostaker/pkg/nonce/impl"
	"github.com/textileio/go-autostaker/pkg/notify"
	notifyimpl "github.com/textileio/go-autostaker/pkg/notify/impl"
	stakerimpl "github.com/textileio/go-autostaker/pkg/staker/impl"
	"github.com/textileio/go-autostaker/pkg/wallet"
	"github.com/textileio/go-autostaker/pkg/watcher"
	watcherimpl "github.com/textileio/go-autostaker/pkg/watcher/impl"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := setupConfig()
	logging.SetupLogger(buildinfo.GitCommit, cfg.Log.Debug, cfg.Log.Human, logging.FileConfig{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.FileMaxSizeMB,
		MaxBackups: cfg.Log.FileMaxBackups,
		MaxAgeDays: cfg.Log.FileMaxAgeDays,
	})

	if cfg.Chain.Provider == "" {
		log.Fatal().Msg("web3 provider is not configured")
	}
	if !common.IsHexAddress(cfg.Chain.PoolAddress) {
		log.Fatal().Str("address", cfg.Chain.PoolAddress).Msg("staking contract address is invalid")
	}
	if !common.IsHexAddress(cfg.Chain.TokenAddress) {
		log.Fatal().Str("address", cfg.Chain.TokenAddress).Msg("token address is invalid")
	}
	if cfg.Stake.TokenDecimals < 0 || cfg.Stake.TokenDecimals > 77 {
		log.Fatal().Int("decimals", cfg.Stake.TokenDecimals).Msg("token decimals out of range")
	}
	decimals := uint8(cfg.Stake.TokenDecimals)

	w, err := wallet.NewWallet(cfg.Signer.PrivateKey)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to create wallet from private key string")
	}

	if err := metrics.SetupInstrumentation("autostaker", w.Address().Hex()); err != nil {
		log.Fatal().Err(err).Msg("could not setup instrumentation")
	}

	confirmationTimeout := mustParseDuration(cfg.Stake.ConfirmationTimeout, "confirmation timeout")
	resubscribeDelay := mustParseDuration(cfg.Stake.ResubscribeDelay, "resubscribe delay")
	throttleInterval := mustParseDuration(cfg.Notify.ThrottleInterval, "notification throttle interval")
	rateLimInterval := mustParseDuration(cfg.HTTP.RateLimInterval, "rate limit interval")
	checkInterval := mustParseDuration(cfg.BalanceTracker.CheckInterval, "balance check interval")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	conn, err := ethclient.DialContext(ctx, cfg.Chain.Provider)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to ethereum endpoint")
	}
	defer conn.Close()

	chainID := big.NewInt(cfg.Chain.ChainID)
	if cfg.Chain.ChainID == 0 {
		chainID, err = conn.ChainID(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to get chain id from provider")
		}
	}

	clientOpts := []ethereum.Option{
		ethereum.WithStakeGasLimit(cfg.Stake.GasLimit),
		ethereum.WithConfirmationTimeout(confirmationTimeout),
	}
	if cfg.Stake.Data != "" {
		clientOpts = append(clientOpts, ethereum.WithStakeData(common.FromHex(cfg.Stake.Data)))
	}
	client, err := ethereum.NewClient(
		conn,
		w,
		chainID,
		common.HexToAddress(cfg.Chain.TokenAddress),
		common.HexToAddress(cfg.Chain.PoolAddress),
		clientOpts...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create ledger client")
	}

	sequencer, err := nonceimpl.NewLocalSequencer(chainID.Int64(), w.Address(), client)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create nonce sequencer")
	}

	notifier, err := notifyimpl.NewNotifier(notifyimpl.Config{
		TelegramAPIURL:   cfg.Notify.TelegramAPIURL,
		TelegramBotToken: cfg.Notify.TelegramBotToken,
		TelegramChatID:   cfg.Notify.TelegramChatID,
		DiscordWebhook:   cfg.Notify.DiscordWebhookURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create notifier")
	}
	sink, err := notify.NewSink(notifier, notify.WithThrottle(1, throttleInterval))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create notification sink")
	}

	coordinator, err := stakerimpl.NewCoordinator(
		client,
		sequencer,
		sink,
		stakerimpl.WithGasMultipliers(cfg.Stake.FreshGasMultiplier, cfg.Stake.ReplacementGasMultiplier),
		stakerimpl.WithExplorerURL(cfg.Chain.ExplorerURL),
		stakerimpl.WithToken(cfg.Stake.TokenSymbol, decimals),
		stakerimpl.WithNotifyFailures(cfg.Stake.NotifyFailures))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create stake coordinator")
	}

	eventWatcher, err := watcherimpl.New(
		client,
		coordinator,
		sink,
		watcher.WithResubscribeDelay(resubscribeDelay),
		watcher.WithTokenDecimals(decimals))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create event watcher")
	}

	tracker, err := NewBalanceTracker(client, chainID.Int64(), decimals, checkInterval)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create balance tracker")
	}

	rtr, err := router.ConfiguredRouter(coordinator, router.Config{
		Address:         w.Address().Hex(),
		Pool:            cfg.Chain.PoolAddress,
		Token:           cfg.Chain.TokenAddress,
		MaxRPI:          cfg.HTTP.MaxRequestPerInterval,
		RateLimInterval: rateLimInterval,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create router")
	}
	server := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           rtr.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	log.Info().
		Str("version", buildinfo.GetSummary().String()).
		Int64("chain_id", chainID.Int64()).
		Str("pool", cfg.Chain.PoolAddress).
		Str("token", cfg.Chain.TokenAddress).
		Str("staker", w.Address().Hex()).
		Bool("telegram", cfg.Notify.TelegramBotToken != "" && cfg.Notify.TelegramChatID != "").
		Bool("discord", cfg.Notify.DiscordWebhookURL != "").
		Msg("auto-staker started, watching for unstake events")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := eventWatcher.Run(gctx); err != nil {
			return fmt.Errorf("running event watcher: %s", err)
		}
		return nil
	})
	g.Go(func() error {
		tracker.Run(gctx)
		return nil
	})
	g.Go(func() error {
		log.Info().Str("port", cfg.HTTP.Port).Msg("serving status endpoints")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving http: %s", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cls := context.WithTimeout(context.Background(), 10*time.Second)
		defer cls()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %s", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("daemon stopped with error")
	}

	closeCtx, cls := context.WithTimeout(context.Background(), 10*time.Second)
	defer cls()
	if err := sink.Close(closeCtx); err != nil {
		log.Error().Err(err).Msg("closing notification sink")
	}

	log.Info().Msg("daemon closed")
}

func mustParseDuration(value string, name string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Fatal().Err(err).Msgf("%s has invalid format: %s", name, value)
	}
	return d
}
