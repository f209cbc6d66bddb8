package main

import (
	"fmt"

	"github.com/questx-lab/tinfoil/pkg/api/discord"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

type guildReport struct {
	Guild    discord.Guild     `json:"guild"`
	IconURL  string            `json:"icon_url,omitempty"`
	Channels []discord.Channel `json:"channels"`
	Roles    []discord.Role    `json:"roles"`
}

func (t *tinfoil) guild(ct *cli.Context) error {
	guildID, err := snowflakeArg(ct, "guildID")
	if err != nil {
		return err
	}

	var report guildReport
	g, ctx := errgroup.WithContext(t.context(ct))
	g.Go(func() error {
		var err error
		report.Guild, err = t.client.Guild.Get(ctx, guildID, true)
		return err
	})
	g.Go(func() error {
		var err error
		report.Channels, err = t.client.Guild.Channels.List(ctx, guildID)
		return err
	})
	g.Go(func() error {
		var err error
		report.Roles, err = t.client.Guild.Roles.List(ctx, guildID)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if report.Guild.Icon != nil {
		report.IconURL = t.client.GuildIconURL(guildID, *report.Guild.Icon, 0)
	}

	return t.print(report)
}

func (t *tinfoil) bans(ct *cli.Context) error {
	guildID, err := snowflakeArg(ct, "guildID")
	if err != nil {
		return err
	}

	bans, err := t.client.Guild.Bans.List(t.context(ct), guildID, discord.GuildBansQuery{Limit: ct.Int("limit")})
	if err != nil {
		return err
	}

	return t.print(bans)
}

func (t *tinfoil) auditLog(ct *cli.Context) error {
	guildID, err := snowflakeArg(ct, "guildID")
	if err != nil {
		return err
	}

	query := discord.AuditLogQuery{
		UserID: discord.Snowflake(ct.String("user")),
		Limit:  ct.Int("limit"),
	}

	if name := ct.String("action-type"); name != "" {
		query.ActionType, err = discord.ParseAuditLogEvent(name)
		if err != nil {
			return fmt.Errorf("unknown action type %s, see tinfoil audit-log --help", name)
		}
	}

	log, err := t.client.Guild.AuditLog.Get(t.context(ct), guildID, query)
	if err != nil {
		return err
	}

	return t.print(log)
}

func (t *tinfoil) pruneCount(ct *cli.Context) error {
	guildID, err := snowflakeArg(ct, "guildID")
	if err != nil {
		return err
	}

	query := discord.PruneCountQuery{Days: ct.Int("days")}
	for _, role := range ct.StringSlice("include-role") {
		query.IncludeRoles = append(query.IncludeRoles, discord.Snowflake(role))
	}

	result, err := t.client.Guild.Prune.Count(t.context(ct), guildID, query)
	if err != nil {
		return err
	}

	return t.print(result)
}
