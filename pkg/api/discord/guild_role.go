package discord

import (
	"context"
	"net/http"
)

type GuildRoleEndpoints struct {
	client Requester
}

func (e *GuildRoleEndpoints) List(ctx context.Context, guildID Snowflake) ([]Role, error) {
	return Do[[]Role](ctx, e.client, http.MethodGet, guildPath(guildID)+"/roles")
}

func (e *GuildRoleEndpoints) Create(ctx context.Context, guildID Snowflake, params CreateRoleParams, reason string) (Role, error) {
	return Do[Role](ctx, e.client, http.MethodPost, guildPath(guildID)+"/roles", WithBody(params), WithReason(reason))
}

// ModifyPositions reorders roles and returns every role of the guild.
func (e *GuildRoleEndpoints) ModifyPositions(ctx context.Context, guildID Snowflake, positions []RolePosition, reason string) ([]Role, error) {
	return Do[[]Role](ctx, e.client, http.MethodPatch, guildPath(guildID)+"/roles",
		WithBody(positions), WithReason(reason))
}

func (e *GuildRoleEndpoints) Modify(ctx context.Context, guildID, roleID Snowflake, params ModifyRoleParams, reason string) (Role, error) {
	return Do[Role](ctx, e.client, http.MethodPatch, guildPath(guildID)+"/roles/"+roleID.String(),
		WithBody(params), WithReason(reason))
}
