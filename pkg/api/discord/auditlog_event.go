package discord

import "github.com/questx-lab/tinfoil/pkg/enum"

// AuditLogEvent is the action_type of an audit log entry.
type AuditLogEvent int

var (
	AuditLogGuildUpdate             = enum.New(AuditLogEvent(1), "GUILD_UPDATE")
	AuditLogChannelCreate           = enum.New(AuditLogEvent(10), "CHANNEL_CREATE")
	AuditLogChannelUpdate           = enum.New(AuditLogEvent(11), "CHANNEL_UPDATE")
	AuditLogChannelDelete           = enum.New(AuditLogEvent(12), "CHANNEL_DELETE")
	AuditLogChannelOverwriteCreate  = enum.New(AuditLogEvent(13), "CHANNEL_OVERWRITE_CREATE")
	AuditLogChannelOverwriteUpdate  = enum.New(AuditLogEvent(14), "CHANNEL_OVERWRITE_UPDATE")
	AuditLogChannelOverwriteDelete  = enum.New(AuditLogEvent(15), "CHANNEL_OVERWRITE_DELETE")
	AuditLogMemberKick              = enum.New(AuditLogEvent(20), "MEMBER_KICK")
	AuditLogMemberPrune             = enum.New(AuditLogEvent(21), "MEMBER_PRUNE")
	AuditLogMemberBanAdd            = enum.New(AuditLogEvent(22), "MEMBER_BAN_ADD")
	AuditLogMemberBanRemove         = enum.New(AuditLogEvent(23), "MEMBER_BAN_REMOVE")
	AuditLogMemberUpdate            = enum.New(AuditLogEvent(24), "MEMBER_UPDATE")
	AuditLogMemberRoleUpdate        = enum.New(AuditLogEvent(25), "MEMBER_ROLE_UPDATE")
	AuditLogMemberMove              = enum.New(AuditLogEvent(26), "MEMBER_MOVE")
	AuditLogMemberDisconnect        = enum.New(AuditLogEvent(27), "MEMBER_DISCONNECT")
	AuditLogBotAdd                  = enum.New(AuditLogEvent(28), "BOT_ADD")
	AuditLogRoleCreate              = enum.New(AuditLogEvent(30), "ROLE_CREATE")
	AuditLogRoleUpdate              = enum.New(AuditLogEvent(31), "ROLE_UPDATE")
	AuditLogRoleDelete              = enum.New(AuditLogEvent(32), "ROLE_DELETE")
	AuditLogInviteCreate            = enum.New(AuditLogEvent(40), "INVITE_CREATE")
	AuditLogInviteUpdate            = enum.New(AuditLogEvent(41), "INVITE_UPDATE")
	AuditLogInviteDelete            = enum.New(AuditLogEvent(42), "INVITE_DELETE")
	AuditLogWebhookCreate           = enum.New(AuditLogEvent(50), "WEBHOOK_CREATE")
	AuditLogWebhookUpdate           = enum.New(AuditLogEvent(51), "WEBHOOK_UPDATE")
	AuditLogWebhookDelete           = enum.New(AuditLogEvent(52), "WEBHOOK_DELETE")
	AuditLogEmojiCreate             = enum.New(AuditLogEvent(60), "EMOJI_CREATE")
	AuditLogEmojiUpdate             = enum.New(AuditLogEvent(61), "EMOJI_UPDATE")
	AuditLogEmojiDelete             = enum.New(AuditLogEvent(62), "EMOJI_DELETE")
	AuditLogMessageDelete           = enum.New(AuditLogEvent(72), "MESSAGE_DELETE")
	AuditLogMessageBulkDelete       = enum.New(AuditLogEvent(73), "MESSAGE_BULK_DELETE")
	AuditLogMessagePin              = enum.New(AuditLogEvent(74), "MESSAGE_PIN")
	AuditLogMessageUnpin            = enum.New(AuditLogEvent(75), "MESSAGE_UNPIN")
	AuditLogIntegrationCreate       = enum.New(AuditLogEvent(80), "INTEGRATION_CREATE")
	AuditLogIntegrationUpdate       = enum.New(AuditLogEvent(81), "INTEGRATION_UPDATE")
	AuditLogIntegrationDelete       = enum.New(AuditLogEvent(82), "INTEGRATION_DELETE")
	AuditLogThreadCreate            = enum.New(AuditLogEvent(110), "THREAD_CREATE")
	AuditLogThreadUpdate            = enum.New(AuditLogEvent(111), "THREAD_UPDATE")
	AuditLogThreadDelete            = enum.New(AuditLogEvent(112), "THREAD_DELETE")
	AuditLogApplicationCommandPerms = enum.New(AuditLogEvent(121), "APPLICATION_COMMAND_PERMISSION_UPDATE")
)

func (e AuditLogEvent) String() string {
	return enum.ToString(e)
}

// ParseAuditLogEvent looks up an event by its API name, e.g. MEMBER_BAN_ADD.
func ParseAuditLogEvent(name string) (AuditLogEvent, error) {
	return enum.ToEnum[AuditLogEvent](name)
}
