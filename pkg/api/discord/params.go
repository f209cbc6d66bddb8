package discord

// Request bodies are tagged with json, query strings with url. Optional
// fields are pointers so that a zero value can still be sent explicitly.

type ModifyCurrentUserParams struct {
	Username string  `json:"username,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	Banner   *string `json:"banner,omitempty"`
}

type CurrentUserGuildsQuery struct {
	Before     Snowflake `url:"before,omitempty"`
	After      Snowflake `url:"after,omitempty"`
	Limit      int       `url:"limit,omitempty"`
	WithCounts *bool     `url:"with_counts,omitempty"`
}

type CreateDMParams struct {
	RecipientID Snowflake `json:"recipient_id"`
}

type UpdateApplicationRoleConnectionParams struct {
	PlatformName     *string           `json:"platform_name,omitempty"`
	PlatformUsername *string           `json:"platform_username,omitempty"`
	Metadata         map[string]string `json:"metadata,omitempty"`
}

type CreateGuildParams struct {
	Name                        string                `json:"name"`
	Icon                        *string               `json:"icon,omitempty"`
	VerificationLevel           *int                  `json:"verification_level,omitempty"`
	DefaultMessageNotifications *int                  `json:"default_message_notifications,omitempty"`
	ExplicitContentFilter       *int                  `json:"explicit_content_filter,omitempty"`
	Roles                       []Role                `json:"roles,omitempty"`
	Channels                    []CreateChannelParams `json:"channels,omitempty"`
	AFKChannelID                *Snowflake            `json:"afk_channel_id,omitempty"`
	AFKTimeout                  *int                  `json:"afk_timeout,omitempty"`
	SystemChannelID             *Snowflake            `json:"system_channel_id,omitempty"`
	SystemChannelFlags          *int                  `json:"system_channel_flags,omitempty"`
}

type ModifyGuildParams struct {
	Name                        string     `json:"name,omitempty"`
	VerificationLevel           *int       `json:"verification_level,omitempty"`
	DefaultMessageNotifications *int       `json:"default_message_notifications,omitempty"`
	ExplicitContentFilter       *int       `json:"explicit_content_filter,omitempty"`
	AFKChannelID                *Snowflake `json:"afk_channel_id,omitempty"`
	AFKTimeout                  *int       `json:"afk_timeout,omitempty"`
	Icon                        *string    `json:"icon,omitempty"`
	OwnerID                     Snowflake  `json:"owner_id,omitempty"`
	SystemChannelID             *Snowflake `json:"system_channel_id,omitempty"`
	Description                 *string    `json:"description,omitempty"`
	PreferredLocale             string     `json:"preferred_locale,omitempty"`
	Features                    []string   `json:"features,omitempty"`
	PremiumProgressBarEnabled   *bool      `json:"premium_progress_bar_enabled,omitempty"`
}

type ModifyMFALevelParams struct {
	Level int `json:"level"`
}

type getGuildQuery struct {
	WithCounts bool `url:"with_counts,omitempty"`
}

type AuditLogQuery struct {
	UserID     Snowflake     `url:"user_id,omitempty"`
	ActionType AuditLogEvent `url:"action_type,omitempty"`
	Before     Snowflake     `url:"before,omitempty"`
	After      Snowflake     `url:"after,omitempty"`
	Limit      int           `url:"limit,omitempty"`
}

type CreateChannelParams struct {
	Name                 string       `json:"name"`
	Type                 *ChannelType `json:"type,omitempty"`
	Topic                *string      `json:"topic,omitempty"`
	Bitrate              *int         `json:"bitrate,omitempty"`
	UserLimit            *int         `json:"user_limit,omitempty"`
	RateLimitPerUser     *int         `json:"rate_limit_per_user,omitempty"`
	Position             *int         `json:"position,omitempty"`
	PermissionOverwrites []Overwrite  `json:"permission_overwrites,omitempty"`
	ParentID             *Snowflake   `json:"parent_id,omitempty"`
	NSFW                 *bool        `json:"nsfw,omitempty"`
}

type ChannelPosition struct {
	ID              Snowflake  `json:"id"`
	Position        *int       `json:"position,omitempty"`
	LockPermissions *bool      `json:"lock_permissions,omitempty"`
	ParentID        *Snowflake `json:"parent_id,omitempty"`
}

type ListMembersQuery struct {
	Limit int       `url:"limit,omitempty"`
	After Snowflake `url:"after,omitempty"`
}

type SearchMembersQuery struct {
	Query string `url:"query"`
	Limit int    `url:"limit,omitempty"`
}

type AddMemberParams struct {
	AccessToken string      `json:"access_token"`
	Nick        string      `json:"nick,omitempty"`
	Roles       []Snowflake `json:"roles,omitempty"`
	Mute        *bool       `json:"mute,omitempty"`
	Deaf        *bool       `json:"deaf,omitempty"`
}

// ModifyMemberParams.Roles replaces the member roles; a pointer to an empty
// slice removes them all.
type ModifyMemberParams struct {
	Nick                       *string      `json:"nick,omitempty"`
	Roles                      *[]Snowflake `json:"roles,omitempty"`
	Mute                       *bool        `json:"mute,omitempty"`
	Deaf                       *bool        `json:"deaf,omitempty"`
	ChannelID                  *Snowflake   `json:"channel_id,omitempty"`
	CommunicationDisabledUntil *string      `json:"communication_disabled_until,omitempty"`
	Flags                      *int         `json:"flags,omitempty"`
}

type ModifyCurrentMemberParams struct {
	Nick *string `json:"nick,omitempty"`
}

type GuildBansQuery struct {
	Limit  int       `url:"limit,omitempty"`
	Before Snowflake `url:"before,omitempty"`
	After  Snowflake `url:"after,omitempty"`
}

type CreateGuildBanParams struct {
	DeleteMessageSeconds int `json:"delete_message_seconds"`
}

type CreateRoleParams struct {
	Name         string  `json:"name,omitempty"`
	Permissions  string  `json:"permissions,omitempty"`
	Color        *int    `json:"color,omitempty"`
	Hoist        *bool   `json:"hoist,omitempty"`
	Icon         *string `json:"icon,omitempty"`
	UnicodeEmoji *string `json:"unicode_emoji,omitempty"`
	Mentionable  *bool   `json:"mentionable,omitempty"`
}

type ModifyRoleParams = CreateRoleParams

type RolePosition struct {
	ID       Snowflake `json:"id"`
	Position *int      `json:"position,omitempty"`
}

type PruneCountQuery struct {
	Days         int         `url:"days,omitempty"`
	IncludeRoles []Snowflake `url:"include_roles,omitempty"`
}

type BeginPruneParams struct {
	Days              int         `json:"days,omitempty"`
	ComputePruneCount *bool       `json:"compute_prune_count,omitempty"`
	IncludeRoles      []Snowflake `json:"include_roles,omitempty"`
}

type ModifyApplicationParams struct {
	CustomInstallURL               *string  `json:"custom_install_url,omitempty"`
	Description                    *string  `json:"description,omitempty"`
	RoleConnectionsVerificationURL *string  `json:"role_connections_verification_url,omitempty"`
	InteractionsEndpointURL        *string  `json:"interactions_endpoint_url,omitempty"`
	Flags                          *int     `json:"flags,omitempty"`
	Icon                           *string  `json:"icon,omitempty"`
	CoverImage                     *string  `json:"cover_image,omitempty"`
	Tags                           []string `json:"tags,omitempty"`
}
