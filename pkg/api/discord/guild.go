package discord

import (
	"context"
	"net/http"
)

// GuildEndpoints groups /guilds operations. Sub-resources hang off the
// exported fields.
type GuildEndpoints struct {
	client Requester

	AuditLog *AuditLogEndpoints
	Channels *GuildChannelEndpoints
	Members  *GuildMemberEndpoints
	Bans     *GuildBanEndpoints
	Roles    *GuildRoleEndpoints
	Prune    *GuildPruneEndpoints
}

func newGuildEndpoints(client Requester) *GuildEndpoints {
	return &GuildEndpoints{
		client:   client,
		AuditLog: &AuditLogEndpoints{client: client},
		Channels: &GuildChannelEndpoints{client: client},
		Members:  &GuildMemberEndpoints{client: client},
		Bans:     &GuildBanEndpoints{client: client},
		Roles:    &GuildRoleEndpoints{client: client},
		Prune:    &GuildPruneEndpoints{client: client},
	}
}

func guildPath(guildID Snowflake) string {
	return "/guilds/" + guildID.String()
}

func (e *GuildEndpoints) Create(ctx context.Context, params CreateGuildParams) (Guild, error) {
	return Do[Guild](ctx, e.client, http.MethodPost, "/guilds", WithBody(params))
}

// Get fetches a guild. With withCounts the approximate member and presence
// counts are filled in.
func (e *GuildEndpoints) Get(ctx context.Context, guildID Snowflake, withCounts bool) (Guild, error) {
	return Do[Guild](ctx, e.client, http.MethodGet, guildPath(guildID),
		WithQuery(getGuildQuery{WithCounts: withCounts}))
}

func (e *GuildEndpoints) Preview(ctx context.Context, guildID Snowflake) (GuildPreview, error) {
	return Do[GuildPreview](ctx, e.client, http.MethodGet, guildPath(guildID)+"/preview")
}

func (e *GuildEndpoints) Modify(ctx context.Context, guildID Snowflake, params ModifyGuildParams, reason string) (Guild, error) {
	return Do[Guild](ctx, e.client, http.MethodPatch, guildPath(guildID), WithBody(params), WithReason(reason))
}

func (e *GuildEndpoints) Delete(ctx context.Context, guildID Snowflake) error {
	return exec(ctx, e.client, http.MethodDelete, guildPath(guildID))
}

// ActiveThreads lists every active thread of the guild, public and private.
func (e *GuildEndpoints) ActiveThreads(ctx context.Context, guildID Snowflake) (ActiveThreads, error) {
	return Do[ActiveThreads](ctx, e.client, http.MethodGet, guildPath(guildID)+"/threads/active")
}

func (e *GuildEndpoints) ModifyMFALevel(ctx context.Context, guildID Snowflake, level int, reason string) (MFALevel, error) {
	return Do[MFALevel](ctx, e.client, http.MethodPost, guildPath(guildID)+"/mfa",
		WithBody(ModifyMFALevelParams{Level: level}), WithReason(reason))
}

type AuditLogEndpoints struct {
	client Requester
}

// Get returns the guild audit log. It needs the VIEW_AUDIT_LOG permission.
func (e *AuditLogEndpoints) Get(ctx context.Context, guildID Snowflake, query AuditLogQuery) (AuditLog, error) {
	return Do[AuditLog](ctx, e.client, http.MethodGet, guildPath(guildID)+"/audit-logs", WithQuery(query))
}

type GuildChannelEndpoints struct {
	client Requester
}

func (e *GuildChannelEndpoints) List(ctx context.Context, guildID Snowflake) ([]Channel, error) {
	return Do[[]Channel](ctx, e.client, http.MethodGet, guildPath(guildID)+"/channels")
}

func (e *GuildChannelEndpoints) Create(ctx context.Context, guildID Snowflake, params CreateChannelParams, reason string) (Channel, error) {
	return Do[Channel](ctx, e.client, http.MethodPost, guildPath(guildID)+"/channels",
		WithBody(params), WithReason(reason))
}

func (e *GuildChannelEndpoints) ModifyPositions(ctx context.Context, guildID Snowflake, positions []ChannelPosition) error {
	return exec(ctx, e.client, http.MethodPatch, guildPath(guildID)+"/channels", WithBody(positions))
}
