package discord

type User struct {
	ID            Snowflake `json:"id"`
	Username      string    `json:"username"`
	Discriminator string    `json:"discriminator"`
	GlobalName    *string   `json:"global_name,omitempty"`
	Avatar        *string   `json:"avatar,omitempty"`
	Bot           bool      `json:"bot,omitempty"`
	System        bool      `json:"system,omitempty"`
	MFAEnabled    bool      `json:"mfa_enabled,omitempty"`
	Banner        *string   `json:"banner,omitempty"`
	AccentColor   *int      `json:"accent_color,omitempty"`
	Locale        string    `json:"locale,omitempty"`
	Verified      bool      `json:"verified,omitempty"`
	Email         *string   `json:"email,omitempty"`
	Flags         int       `json:"flags,omitempty"`
	PremiumType   int       `json:"premium_type,omitempty"`
	PublicFlags   int       `json:"public_flags,omitempty"`
}

// PartialGuild is the guild shape returned by the current user guild list.
type PartialGuild struct {
	ID                       Snowflake `json:"id"`
	Name                     string    `json:"name"`
	Icon                     *string   `json:"icon,omitempty"`
	Owner                    bool      `json:"owner"`
	Permissions              string    `json:"permissions"`
	Features                 []string  `json:"features"`
	ApproximateMemberCount   int       `json:"approximate_member_count,omitempty"`
	ApproximatePresenceCount int       `json:"approximate_presence_count,omitempty"`
}

type Guild struct {
	ID                          Snowflake  `json:"id"`
	Name                        string     `json:"name"`
	Icon                        *string    `json:"icon,omitempty"`
	Splash                      *string    `json:"splash,omitempty"`
	DiscoverySplash             *string    `json:"discovery_splash,omitempty"`
	OwnerID                     Snowflake  `json:"owner_id"`
	AFKChannelID                *Snowflake `json:"afk_channel_id,omitempty"`
	AFKTimeout                  int        `json:"afk_timeout"`
	VerificationLevel           int        `json:"verification_level"`
	DefaultMessageNotifications int        `json:"default_message_notifications"`
	ExplicitContentFilter       int        `json:"explicit_content_filter"`
	Roles                       []Role     `json:"roles"`
	Emojis                      []Emoji    `json:"emojis"`
	Features                    []string   `json:"features"`
	MFALevel                    int        `json:"mfa_level"`
	SystemChannelID             *Snowflake `json:"system_channel_id,omitempty"`
	SystemChannelFlags          int        `json:"system_channel_flags"`
	Description                 *string    `json:"description,omitempty"`
	Banner                      *string    `json:"banner,omitempty"`
	PremiumTier                 int        `json:"premium_tier"`
	PreferredLocale             string     `json:"preferred_locale"`
	NSFWLevel                   int        `json:"nsfw_level"`
	ApproximateMemberCount      int        `json:"approximate_member_count,omitempty"`
	ApproximatePresenceCount    int        `json:"approximate_presence_count,omitempty"`
}

type GuildPreview struct {
	ID                       Snowflake `json:"id"`
	Name                     string    `json:"name"`
	Icon                     *string   `json:"icon,omitempty"`
	Splash                   *string   `json:"splash,omitempty"`
	DiscoverySplash          *string   `json:"discovery_splash,omitempty"`
	Emojis                   []Emoji   `json:"emojis"`
	Features                 []string  `json:"features"`
	ApproximateMemberCount   int       `json:"approximate_member_count"`
	ApproximatePresenceCount int       `json:"approximate_presence_count"`
	Description              *string   `json:"description,omitempty"`
}

type Emoji struct {
	ID            *Snowflake  `json:"id,omitempty"`
	Name          *string     `json:"name,omitempty"`
	Roles         []Snowflake `json:"roles,omitempty"`
	RequireColons bool        `json:"require_colons,omitempty"`
	Managed       bool        `json:"managed,omitempty"`
	Animated      bool        `json:"animated,omitempty"`
	Available     bool        `json:"available,omitempty"`
}

type Member struct {
	User                       *User       `json:"user,omitempty"`
	Nick                       *string     `json:"nick,omitempty"`
	Avatar                     *string     `json:"avatar,omitempty"`
	Roles                      []Snowflake `json:"roles"`
	JoinedAt                   string      `json:"joined_at"`
	PremiumSince               *string     `json:"premium_since,omitempty"`
	Deaf                       bool        `json:"deaf"`
	Mute                       bool        `json:"mute"`
	Flags                      int         `json:"flags"`
	Pending                    bool        `json:"pending,omitempty"`
	Permissions                string      `json:"permissions,omitempty"`
	CommunicationDisabledUntil *string     `json:"communication_disabled_until,omitempty"`
}

type Role struct {
	ID           Snowflake `json:"id"`
	Name         string    `json:"name"`
	Color        int       `json:"color"`
	Hoist        bool      `json:"hoist"`
	Icon         *string   `json:"icon,omitempty"`
	UnicodeEmoji *string   `json:"unicode_emoji,omitempty"`
	Position     int       `json:"position"`
	Permissions  string    `json:"permissions"`
	Managed      bool      `json:"managed"`
	Mentionable  bool      `json:"mentionable"`
	Flags        int       `json:"flags"`
}

type Ban struct {
	Reason *string `json:"reason,omitempty"`
	User   User    `json:"user"`
}

type ChannelType int

const (
	ChannelTypeGuildText          ChannelType = 0
	ChannelTypeDM                 ChannelType = 1
	ChannelTypeGuildVoice         ChannelType = 2
	ChannelTypeGroupDM            ChannelType = 3
	ChannelTypeGuildCategory      ChannelType = 4
	ChannelTypeGuildAnnouncement  ChannelType = 5
	ChannelTypeAnnouncementThread ChannelType = 10
	ChannelTypePublicThread       ChannelType = 11
	ChannelTypePrivateThread      ChannelType = 12
	ChannelTypeGuildStageVoice    ChannelType = 13
	ChannelTypeGuildForum         ChannelType = 15
)

type Channel struct {
	ID                   Snowflake       `json:"id"`
	Type                 ChannelType     `json:"type"`
	GuildID              *Snowflake      `json:"guild_id,omitempty"`
	Position             int             `json:"position,omitempty"`
	PermissionOverwrites []Overwrite     `json:"permission_overwrites,omitempty"`
	Name                 *string         `json:"name,omitempty"`
	Topic                *string         `json:"topic,omitempty"`
	NSFW                 bool            `json:"nsfw,omitempty"`
	LastMessageID        *Snowflake      `json:"last_message_id,omitempty"`
	Bitrate              int             `json:"bitrate,omitempty"`
	UserLimit            int             `json:"user_limit,omitempty"`
	RateLimitPerUser     int             `json:"rate_limit_per_user,omitempty"`
	Recipients           []User          `json:"recipients,omitempty"`
	OwnerID              *Snowflake      `json:"owner_id,omitempty"`
	ParentID             *Snowflake      `json:"parent_id,omitempty"`
	ThreadMetadata       *ThreadMetadata `json:"thread_metadata,omitempty"`
	Flags                int             `json:"flags,omitempty"`
}

type Overwrite struct {
	ID    Snowflake `json:"id"`
	Type  int       `json:"type"`
	Allow string    `json:"allow"`
	Deny  string    `json:"deny"`
}

type ThreadMetadata struct {
	Archived            bool   `json:"archived"`
	AutoArchiveDuration int    `json:"auto_archive_duration"`
	ArchiveTimestamp    string `json:"archive_timestamp"`
	Locked              bool   `json:"locked"`
}

type ThreadMember struct {
	ID            *Snowflake `json:"id,omitempty"`
	UserID        *Snowflake `json:"user_id,omitempty"`
	JoinTimestamp string     `json:"join_timestamp"`
	Flags         int        `json:"flags"`
}

type ActiveThreads struct {
	Threads []Channel      `json:"threads"`
	Members []ThreadMember `json:"members"`
}

type Connection struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Revoked      bool   `json:"revoked,omitempty"`
	Verified     bool   `json:"verified"`
	FriendSync   bool   `json:"friend_sync"`
	ShowActivity bool   `json:"show_activity"`
	TwoWayLink   bool   `json:"two_way_link"`
	Visibility   int    `json:"visibility"`
}

type AuditLog struct {
	Entries              []AuditLogEntry  `json:"audit_log_entries"`
	Users                []User           `json:"users"`
	Threads              []Channel        `json:"threads"`
	Webhooks             []map[string]any `json:"webhooks"`
	Integrations         []map[string]any `json:"integrations"`
	GuildScheduledEvents []map[string]any `json:"guild_scheduled_events"`
	AutoModerationRules  []map[string]any `json:"auto_moderation_rules"`
}

type AuditLogEntry struct {
	ID         Snowflake        `json:"id"`
	TargetID   *string          `json:"target_id,omitempty"`
	Changes    []AuditLogChange `json:"changes,omitempty"`
	UserID     *Snowflake       `json:"user_id,omitempty"`
	ActionType AuditLogEvent    `json:"action_type"`
	Options    map[string]any   `json:"options,omitempty"`
	Reason     *string          `json:"reason,omitempty"`
}

type AuditLogChange struct {
	Key      string `json:"key"`
	NewValue any    `json:"new_value,omitempty"`
	OldValue any    `json:"old_value,omitempty"`
}

type Application struct {
	ID                             Snowflake  `json:"id"`
	Name                           string     `json:"name"`
	Icon                           *string    `json:"icon,omitempty"`
	Description                    string     `json:"description"`
	RPCOrigins                     []string   `json:"rpc_origins,omitempty"`
	BotPublic                      bool       `json:"bot_public"`
	BotRequireCodeGrant            bool       `json:"bot_require_code_grant"`
	Bot                            *User      `json:"bot,omitempty"`
	TermsOfServiceURL              *string    `json:"terms_of_service_url,omitempty"`
	PrivacyPolicyURL               *string    `json:"privacy_policy_url,omitempty"`
	Owner                          *User      `json:"owner,omitempty"`
	VerifyKey                      string     `json:"verify_key"`
	GuildID                        *Snowflake `json:"guild_id,omitempty"`
	Flags                          int        `json:"flags,omitempty"`
	Tags                           []string   `json:"tags,omitempty"`
	ApproximateGuildCount          int        `json:"approximate_guild_count,omitempty"`
	InteractionsEndpointURL        *string    `json:"interactions_endpoint_url,omitempty"`
	RoleConnectionsVerificationURL *string    `json:"role_connections_verification_url,omitempty"`
	CustomInstallURL               *string    `json:"custom_install_url,omitempty"`
}

type RoleConnectionMetadata struct {
	Type                     int               `json:"type"`
	Key                      string            `json:"key"`
	Name                     string            `json:"name"`
	NameLocalizations        map[string]string `json:"name_localizations,omitempty"`
	Description              string            `json:"description"`
	DescriptionLocalizations map[string]string `json:"description_localizations,omitempty"`
}

type ApplicationRoleConnection struct {
	PlatformName     *string           `json:"platform_name,omitempty"`
	PlatformUsername *string           `json:"platform_username,omitempty"`
	Metadata         map[string]string `json:"metadata"`
}

// PruneResult.Pruned is nil when the count was not computed.
type PruneResult struct {
	Pruned *int `json:"pruned"`
}

type MFALevel struct {
	Level int `json:"level"`
}

type Nick struct {
	Nick *string `json:"nick,omitempty"`
}
