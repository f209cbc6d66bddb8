package main

import (
	"fmt"
	"strings"

	"github.com/questx-lab/tinfoil/pkg/api/discord"
	"github.com/questx-lab/tinfoil/pkg/enum"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slices"
)

func (t *tinfoil) loadApp() {
	app := cli.NewApp()
	app.Name = "tinfoil"
	app.Usage = "Inspect Discord resources with a bot token"
	app.Writer = t.out
	app.Before = t.load
	app.After = t.close
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "TOML config file",
			EnvVars: []string{"TINFOIL_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "token",
			Usage: "bot token, overrides BOT_TOKEN",
		},
		&cli.StringFlag{
			Name:  "api-url",
			Usage: "API root without version, overrides DISCORD_API_URL",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "debug, info, warn, error or silence",
		},
	}
	app.Commands = []*cli.Command{
		{
			Action:   t.me,
			Name:     "me",
			Usage:    "Show the bot user",
			Category: "User",
		},
		{
			Action:    t.user,
			Name:      "user",
			Usage:     "Show a user",
			ArgsUsage: "<userID>",
			Category:  "User",
		},
		{
			Action:   t.guilds,
			Name:     "guilds",
			Usage:    "List the guilds the bot is in",
			Category: "User",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "limit", Usage: "1-200, default 200"},
			},
		},
		{
			Action:      t.guild,
			Name:        "guild",
			Usage:       "Show a guild with its channels and roles",
			ArgsUsage:   "<guildID>",
			Category:    "Guild",
			Description: `Fetches the guild, its channels and its roles concurrently.`,
		},
		{
			Action:    t.bans,
			Name:      "bans",
			Usage:     "List the bans of a guild",
			ArgsUsage: "<guildID>",
			Category:  "Guild",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "limit", Usage: "1-1000, default 1000"},
			},
		},
		{
			Action:    t.auditLog,
			Name:      "audit-log",
			Usage:     "Show the audit log of a guild",
			ArgsUsage: "<guildID>",
			Category:  "Guild",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "action-type", Usage: "only entries of this event, e.g. MEMBER_BAN_ADD"},
				&cli.StringFlag{Name: "user", Usage: "only entries made by this user"},
				&cli.IntFlag{Name: "limit", Usage: "1-100, default 50"},
			},
			Description: "Known action types:\n   " + strings.Join(auditLogEventNames(), "\n   "),
		},
		{
			Action:    t.pruneCount,
			Name:      "prune-count",
			Usage:     "Count the members a prune would kick",
			ArgsUsage: "<guildID>",
			Category:  "Guild",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "days", Value: 7, Usage: "days of inactivity, 1-30"},
				&cli.StringSliceFlag{Name: "include-role", Usage: "also count members with this role"},
			},
		},
	}

	t.app = app
}

func auditLogEventNames() []string {
	names := enum.Names[discord.AuditLogEvent]()
	slices.Sort(names)
	return names
}

func snowflakeArg(ct *cli.Context, name string) (discord.Snowflake, error) {
	if ct.NArg() < 1 {
		return "", fmt.Errorf("missing %s", name)
	}

	id := discord.Snowflake(ct.Args().First())
	if _, err := id.Int64(); err != nil {
		return "", fmt.Errorf("invalid %s %q", name, id)
	}

	return id, nil
}
