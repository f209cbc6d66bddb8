package discord

import (
	"context"
	"net/http"
)

// GuildBanEndpoints needs the BAN_MEMBERS permission for every call.
type GuildBanEndpoints struct {
	client Requester
}

func banPath(guildID, userID Snowflake) string {
	return guildPath(guildID) + "/bans/" + userID.String()
}

func (e *GuildBanEndpoints) List(ctx context.Context, guildID Snowflake, query GuildBansQuery) ([]Ban, error) {
	return Do[[]Ban](ctx, e.client, http.MethodGet, guildPath(guildID)+"/bans", WithQuery(query))
}

func (e *GuildBanEndpoints) Get(ctx context.Context, guildID, userID Snowflake) (Ban, error) {
	return Do[Ban](ctx, e.client, http.MethodGet, banPath(guildID, userID))
}

func (e *GuildBanEndpoints) Create(ctx context.Context, guildID, userID Snowflake, params CreateGuildBanParams, reason string) error {
	return exec(ctx, e.client, http.MethodPut, banPath(guildID, userID), WithBody(params), WithReason(reason))
}

func (e *GuildBanEndpoints) Remove(ctx context.Context, guildID, userID Snowflake, reason string) error {
	return exec(ctx, e.client, http.MethodDelete, banPath(guildID, userID), WithReason(reason))
}
