package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/joho/godotenv"
	"github.com/questx-lab/tinfoil/config"
	"github.com/questx-lab/tinfoil/pkg/api/discord"
	"github.com/questx-lab/tinfoil/pkg/logger"
	"github.com/questx-lab/tinfoil/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

type syncer interface {
	Sync() error
}

type tinfoil struct {
	app *cli.App
	out io.Writer

	configs config.Configs
	logger  logger.Logger
	client  *discord.Client
}

// load runs before every command.
func (t *tinfoil) load(ct *cli.Context) error {
	// .env is optional.
	_ = godotenv.Load(".env")

	if err := t.loadConfig(ct); err != nil {
		return err
	}

	if err := t.loadLogger(); err != nil {
		return err
	}

	return t.loadClient()
}

func (t *tinfoil) loadConfig(ct *cli.Context) error {
	cfg, err := config.Load(ct.String("config"))
	if err != nil {
		return err
	}

	if v := ct.String("token"); v != "" {
		cfg.Discord.BotToken = v
	}
	if v := ct.String("api-url"); v != "" {
		cfg.Discord.URL = v
	}
	if v := ct.String("log-level"); v != "" {
		cfg.Log.Level = v
	}

	t.configs = cfg
	return nil
}

func (t *tinfoil) loadLogger() error {
	level, err := logger.ParseLevel(t.configs.Log.Level)
	if err != nil {
		return err
	}

	l, err := logger.NewZapLogger(level, t.configs.Log.Production)
	if err != nil {
		return err
	}

	t.logger = l
	return nil
}

func (t *tinfoil) loadClient() error {
	client, err := discord.New(t.configs.Discord)
	if err != nil {
		return err
	}

	t.client = client
	return nil
}

func (t *tinfoil) close(ct *cli.Context) error {
	if s, ok := t.logger.(syncer); ok {
		// Syncing stderr fails on some terminals, nothing to do about it.
		_ = s.Sync()
	}

	return nil
}

func (t *tinfoil) context(ct *cli.Context) context.Context {
	return xcontext.WithLogger(ct.Context, t.logger)
}

func (t *tinfoil) print(v any) error {
	enc := json.NewEncoder(t.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
