package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Discord DiscordConfigs `toml:"discord"`
	Log     LogConfigs     `toml:"log"`
}

// DiscordConfigs describes how to reach the Discord REST API. Zero fields are
// filled with the library defaults when a client is built.
type DiscordConfigs struct {
	BotToken  string `toml:"bot_token"`
	URL       string `toml:"url"`
	CDNURL    string `toml:"cdn_url"`
	Version   int    `toml:"version"`
	UserAgent string `toml:"user_agent"`
}

type LogConfigs struct {
	Level      string `toml:"level"`
	Production bool   `toml:"production"`
}

// Load reads the TOML file at path, if any, then applies environment
// overrides. An empty path skips the file.
func Load(path string) (Configs, error) {
	var cfg Configs
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, fmt.Errorf("cannot load config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Configs{}, err
	}

	return cfg, nil
}

func (c *Configs) applyEnv() error {
	if v := os.Getenv("BOT_TOKEN"); v != "" {
		c.Discord.BotToken = v
	}

	if v := os.Getenv("DISCORD_API_URL"); v != "" {
		c.Discord.URL = v
	}

	if v := os.Getenv("DISCORD_API_VERSION"); v != "" {
		version, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DISCORD_API_VERSION %q: %w", v, err)
		}
		c.Discord.Version = version
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}

	return nil
}
