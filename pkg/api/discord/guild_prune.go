package discord

import (
	"context"
	"net/http"
)

type GuildPruneEndpoints struct {
	client Requester
}

// Count reports how many members a prune with the same query would kick.
func (e *GuildPruneEndpoints) Count(ctx context.Context, guildID Snowflake, query PruneCountQuery) (PruneResult, error) {
	return Do[PruneResult](ctx, e.client, http.MethodGet, guildPath(guildID)+"/prune", WithQuery(query))
}

// Begin starts a prune. Pruned is nil unless ComputePruneCount is set.
func (e *GuildPruneEndpoints) Begin(ctx context.Context, guildID Snowflake, params BeginPruneParams, reason string) (PruneResult, error) {
	return Do[PruneResult](ctx, e.client, http.MethodPost, guildPath(guildID)+"/prune",
		WithBody(params), WithReason(reason))
}
