package discord

import (
	"context"
	"net/http"
)

// UserEndpoints groups /users operations.
type UserEndpoints struct {
	client Requester

	Me *MyUserEndpoints
}

func newUserEndpoints(client Requester) *UserEndpoints {
	return &UserEndpoints{
		client: client,
		Me:     &MyUserEndpoints{client: client},
	}
}

func (e *UserEndpoints) Get(ctx context.Context, userID Snowflake) (User, error) {
	return Do[User](ctx, e.client, http.MethodGet, "/users/"+userID.String())
}

// MyUserEndpoints groups /users/@me operations, acting as the token owner.
type MyUserEndpoints struct {
	client Requester
}

func (e *MyUserEndpoints) Get(ctx context.Context) (User, error) {
	return Do[User](ctx, e.client, http.MethodGet, "/users/@me")
}

func (e *MyUserEndpoints) Modify(ctx context.Context, params ModifyCurrentUserParams) (User, error) {
	return Do[User](ctx, e.client, http.MethodPatch, "/users/@me", WithBody(params))
}

func (e *MyUserEndpoints) Guilds(ctx context.Context, query CurrentUserGuildsQuery) ([]PartialGuild, error) {
	return Do[[]PartialGuild](ctx, e.client, http.MethodGet, "/users/@me/guilds", WithQuery(query))
}

func (e *MyUserEndpoints) GuildMember(ctx context.Context, guildID Snowflake) (Member, error) {
	return Do[Member](ctx, e.client, http.MethodGet, "/users/@me/guilds/"+guildID.String()+"/member")
}

func (e *MyUserEndpoints) LeaveGuild(ctx context.Context, guildID Snowflake) error {
	return exec(ctx, e.client, http.MethodDelete, "/users/@me/guilds/"+guildID.String())
}

// CreateDM opens a DM channel with recipientID, or returns the existing one.
func (e *MyUserEndpoints) CreateDM(ctx context.Context, recipientID Snowflake) (Channel, error) {
	return Do[Channel](ctx, e.client, http.MethodPost, "/users/@me/channels",
		WithBody(CreateDMParams{RecipientID: recipientID}))
}

func (e *MyUserEndpoints) Connections(ctx context.Context) ([]Connection, error) {
	return Do[[]Connection](ctx, e.client, http.MethodGet, "/users/@me/connections")
}

func (e *MyUserEndpoints) ApplicationRoleConnection(ctx context.Context, applicationID Snowflake) (ApplicationRoleConnection, error) {
	return Do[ApplicationRoleConnection](ctx, e.client, http.MethodGet,
		"/users/@me/applications/"+applicationID.String()+"/role-connection")
}

func (e *MyUserEndpoints) UpdateApplicationRoleConnection(
	ctx context.Context,
	applicationID Snowflake,
	params UpdateApplicationRoleConnectionParams,
) (ApplicationRoleConnection, error) {
	return Do[ApplicationRoleConnection](ctx, e.client, http.MethodPut,
		"/users/@me/applications/"+applicationID.String()+"/role-connection", WithBody(params))
}
