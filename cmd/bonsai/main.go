//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/0xnurrabby/Bonsai/internal/app"
	"github.com/0xnurrabby/Bonsai/internal/chain"
	"github.com/0xnurrabby/Bonsai/internal/config"
	"github.com/0xnurrabby/Bonsai/internal/game"
	"github.com/0xnurrabby/Bonsai/internal/store"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	fl := app.NewFlags()
	fl.Bind(flag.CommandLine)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(fl.ConfigPath); err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	if fl.RPC != "" {
		cfg.Chain.RPCURL = fl.RPC
	}
	if fl.DataDir != "" {
		cfg.Store.DataDir = fl.DataDir
	}
	if fl.TPS > 0 {
		cfg.Screen.TPS = fl.TPS
	}

	st, err := store.New(cfg.Store.DataDir, logger)
	if err != nil {
		logger.Error("failed to open state directory", "dir", cfg.Store.DataDir, "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	account := fl.Account

	var sender game.Submitter
	var reader *chain.Reader
	if fl.Offline {
		if account == "" {
			logger.Error("offline mode needs -account")
			os.Exit(1)
		}
		sender = chain.NewOfflineSender(logger)
	} else {
		provider, err := chain.DialProvider(ctx, cfg.Chain.WalletURL, logger)
		if err != nil {
			logger.Error("wallet provider unreachable", "url", cfg.Chain.WalletURL, "err", err)
			os.Exit(1)
		}
		defer provider.Close()

		if account == "" {
			accounts, err := provider.RequestAccounts(ctx)
			if err != nil || len(accounts) == 0 {
				logger.Error("no account from wallet", "err", err)
				os.Exit(1)
			}
			account = accounts[0]
		}
		sender = chain.NewSender(provider, account, cfg.Chain.ChainID, cfg.Chain.DataSuffix, logger)

		reader, err = chain.DialReader(ctx, cfg.Chain.RPCURL)
		if err != nil {
			logger.Warn("node unreachable, chain signals disabled", "url", cfg.Chain.RPCURL, "err", err)
			reader = nil
		}
	}

	if !chain.ValidAddress(account) {
		logger.Error("not a valid account address", "account", account)
		os.Exit(1)
	}
	if fl.Friend != "" && !chain.ValidAddress(fl.Friend) {
		logger.Error("not a valid friend address", "friend", fl.Friend)
		os.Exit(1)
	}

	session := game.NewSession(account, cfg.Chain.PetContract, st, sender, logger)
	g := app.New(cfg, session, sender, reader, fl.Friend, logger)

	scale := fl.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowTitle("bonsai — " + account)
	ebiten.SetWindowSize(int(float64(cfg.Screen.Width)*scale), int(float64(cfg.Screen.Height)*scale))
	ebiten.SetTPS(cfg.Screen.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop failed", "err", err)
		os.Exit(1)
	}
}
