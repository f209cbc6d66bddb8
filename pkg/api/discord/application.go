package discord

import (
	"context"
	"net/http"
)

type ApplicationEndpoints struct {
	client Requester

	RoleConnections *ApplicationRoleConnectionEndpoints
}

func newApplicationEndpoints(client Requester) *ApplicationEndpoints {
	return &ApplicationEndpoints{
		client:          client,
		RoleConnections: &ApplicationRoleConnectionEndpoints{client: client},
	}
}

// Get returns the application that owns the bot token.
func (e *ApplicationEndpoints) Get(ctx context.Context) (Application, error) {
	return Do[Application](ctx, e.client, http.MethodGet, "/applications/@me")
}

func (e *ApplicationEndpoints) Edit(ctx context.Context, params ModifyApplicationParams) (Application, error) {
	return Do[Application](ctx, e.client, http.MethodPatch, "/applications/@me", WithBody(params))
}

type ApplicationRoleConnectionEndpoints struct {
	client Requester
}

func roleConnectionMetadataPath(applicationID Snowflake) string {
	return "/applications/" + applicationID.String() + "/role-connections/metadata"
}

func (e *ApplicationRoleConnectionEndpoints) Metadata(ctx context.Context, applicationID Snowflake) ([]RoleConnectionMetadata, error) {
	return Do[[]RoleConnectionMetadata](ctx, e.client, http.MethodGet, roleConnectionMetadataPath(applicationID))
}

// UpdateMetadata replaces all metadata records; at most 5 are allowed.
func (e *ApplicationRoleConnectionEndpoints) UpdateMetadata(
	ctx context.Context,
	applicationID Snowflake,
	records []RoleConnectionMetadata,
) ([]RoleConnectionMetadata, error) {
	return Do[[]RoleConnectionMetadata](ctx, e.client, http.MethodPut, roleConnectionMetadataPath(applicationID),
		WithBody(records))
}
