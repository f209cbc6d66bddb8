package discord

import (
	"context"
	"net/http"
)

type GuildMemberEndpoints struct {
	client Requester
}

func memberPath(guildID, userID Snowflake) string {
	return guildPath(guildID) + "/members/" + userID.String()
}

func (e *GuildMemberEndpoints) Get(ctx context.Context, guildID, userID Snowflake) (Member, error) {
	return Do[Member](ctx, e.client, http.MethodGet, memberPath(guildID, userID))
}

func (e *GuildMemberEndpoints) List(ctx context.Context, guildID Snowflake, query ListMembersQuery) ([]Member, error) {
	return Do[[]Member](ctx, e.client, http.MethodGet, guildPath(guildID)+"/members", WithQuery(query))
}

// Search returns members whose username or nickname starts with query.Query.
func (e *GuildMemberEndpoints) Search(ctx context.Context, guildID Snowflake, query SearchMembersQuery) ([]Member, error) {
	return Do[[]Member](ctx, e.client, http.MethodGet, guildPath(guildID)+"/members/search", WithQuery(query))
}

// Add joins userID to the guild with an OAuth2 access token. When the user is
// already a member Discord answers 204 and the returned Member is empty.
func (e *GuildMemberEndpoints) Add(ctx context.Context, guildID, userID Snowflake, params AddMemberParams) (Member, error) {
	return Do[Member](ctx, e.client, http.MethodPut, memberPath(guildID, userID), WithBody(params))
}

func (e *GuildMemberEndpoints) Modify(
	ctx context.Context,
	guildID, userID Snowflake,
	params ModifyMemberParams,
	reason string,
) (Member, error) {
	return Do[Member](ctx, e.client, http.MethodPatch, memberPath(guildID, userID),
		WithBody(params), WithReason(reason))
}

func (e *GuildMemberEndpoints) ModifyMe(ctx context.Context, guildID Snowflake, params ModifyCurrentMemberParams, reason string) (Member, error) {
	return Do[Member](ctx, e.client, http.MethodPatch, guildPath(guildID)+"/members/@me",
		WithBody(params), WithReason(reason))
}

// Deprecated: use ModifyMe.
func (e *GuildMemberEndpoints) ModifyMyNick(ctx context.Context, guildID Snowflake, params ModifyCurrentMemberParams, reason string) (Nick, error) {
	return Do[Nick](ctx, e.client, http.MethodPatch, guildPath(guildID)+"/members/@me/nick",
		WithBody(params), WithReason(reason))
}

func (e *GuildMemberEndpoints) AddRole(ctx context.Context, guildID, userID, roleID Snowflake, reason string) error {
	return exec(ctx, e.client, http.MethodPut, memberPath(guildID, userID)+"/roles/"+roleID.String(),
		WithReason(reason))
}

func (e *GuildMemberEndpoints) RemoveRole(ctx context.Context, guildID, userID, roleID Snowflake, reason string) error {
	return exec(ctx, e.client, http.MethodDelete, memberPath(guildID, userID)+"/roles/"+roleID.String(),
		WithReason(reason))
}

func (e *GuildMemberEndpoints) Kick(ctx context.Context, guildID, userID Snowflake, reason string) error {
	return exec(ctx, e.client, http.MethodDelete, memberPath(guildID, userID), WithReason(reason))
}
