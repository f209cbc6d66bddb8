package main

import (
	"github.com/questx-lab/tinfoil/pkg/api/discord"
	"github.com/urfave/cli/v2"
)

func (t *tinfoil) me(ct *cli.Context) error {
	user, err := t.client.User.Me.Get(t.context(ct))
	if err != nil {
		return err
	}

	return t.print(user)
}

func (t *tinfoil) user(ct *cli.Context) error {
	userID, err := snowflakeArg(ct, "userID")
	if err != nil {
		return err
	}

	user, err := t.client.User.Get(t.context(ct), userID)
	if err != nil {
		return err
	}

	return t.print(user)
}

func (t *tinfoil) guilds(ct *cli.Context) error {
	guilds, err := t.client.User.Me.Guilds(t.context(ct), discord.CurrentUserGuildsQuery{
		Limit: ct.Int("limit"),
	})
	if err != nil {
		return err
	}

	return t.print(guilds)
}
