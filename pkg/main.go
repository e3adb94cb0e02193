package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	pkg "git.solsynth.dev/hypernet/votechain/pkg/internal"
	"git.solsynth.dev/hypernet/votechain/pkg/internal/cache"
	"git.solsynth.dev/hypernet/votechain/pkg/internal/chain"
	"git.solsynth.dev/hypernet/votechain/pkg/internal/content"
	"git.solsynth.dev/hypernet/votechain/pkg/internal/http"
	"git.solsynth.dev/hypernet/votechain/pkg/internal/services"
	"git.solsynth.dev/hypernet/votechain/pkg/internal/session"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.YellowString(" __     __    _            _           _\n \\ \\   / /__ | |_ ___  ___| |__   __ _(_)_ __\n  \\ \\ / / _ \\| __/ _ \\/ __| '_ \\ / _` | | '_ \\\n   \\ V / (_) | ||  __/ (__| | | | (_| | | | | |\n    \\_/ \\___/ \\__\\___|\\___|_| |_|\\__,_|_|_| |_|"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("Votechain"), pkg.AppVersion)
	fmt.Printf("The on-chain voting organizer gateway\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	if viper.GetBool("debug.enabled") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Local cache
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when initializing cache.")
	}

	// Chain gateway
	network := chain.ReadNetworkConfig()
	contractAddress := viper.GetString("contract.address")
	if !common.IsHexAddress(contractAddress) {
		log.Fatal().Str("address", contractAddress).Msg("An error occurred when reading contract address, it must be a hex address.")
	}
	var wallet chain.Wallet
	if keyWallet, err := readWallet(network); err != nil {
		log.Error().Err(err).Msg("An error occurred when loading wallet, chain features will be disabled...")
	} else {
		wallet = keyWallet
		log.Info().Str("account", keyWallet.Address().Hex()).Msg("Wallet loaded.")
	}
	gateway := chain.NewGateway(wallet, network, common.HexToAddress(contractAddress))

	log.Info().
		Str("chain", network.ChainName).
		Str("rpc", network.RPCURL()).
		Str("contract", contractAddress).
		Str("wallet", maskSecret(viper.GetString("wallet.private_key"))).
		Str("pinata", maskSecret(viper.GetString("pinata.jwt"))).
		Msg("Settings loaded.")

	session.C = session.NewStore(gateway,
		services.WithCache(cache.S, viper.GetDuration("cache.ttl")),
		services.WithNamespace(contractAddress),
	)
	if wallet != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := session.C.Connect(ctx); err != nil {
			log.Error().Err(err).Msg("An error occurred when connecting wallet, connect again via the api...")
		}
		cancel()
	}

	// Content store
	content.NewServiceFromConfig()

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	interval := viper.GetString("refresh.interval")
	if len(interval) == 0 {
		interval = "5m"
	}
	if _, err := quartz.AddFunc("@every "+interval, refreshTimedTask); err != nil {
		log.Error().Err(err).Msg("An error occurred when scheduling session refresh...")
	}
	quartz.Start()

	// Server
	server := http.NewServer()
	go server.Listen()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
	if err := server.Shutdown(); err != nil {
		log.Error().Err(err).Msg("An error occurred when shutting down server...")
	}
}

func readWallet(network chain.Network) (*chain.KeyWallet, error) {
	opts := []chain.WalletOption{chain.WithNetwork(network)}
	if key := viper.GetString("wallet.private_key"); len(key) > 0 {
		return chain.NewKeyWallet(key, opts...)
	}
	if path := viper.GetString("wallet.keystore"); len(path) > 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read keystore: %v", err)
		}
		return chain.NewKeystoreWallet(data, viper.GetString("wallet.passphrase"), opts...)
	}
	return nil, fmt.Errorf("no wallet.private_key or wallet.keystore configured")
}

func refreshTimedTask() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := session.C.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("An error occurred when refreshing session...")
		return
	}
	actions, err := session.C.Actions()
	if err != nil {
		return
	}
	if _, err := actions.Dashboard(ctx); err != nil {
		log.Warn().Err(err).Msg("An error occurred when warming dashboard...")
	}
}

func maskSecret(val string) string {
	if len(val) == 0 {
		return ""
	} else if len(val) <= 8 {
		return "********"
	}
	return val[:4] + "********" + val[len(val)-4:]
}
