package discord

import (
	"testing"

	"github.com/questx-lab/tinfoil/config"
	"github.com/stretchr/testify/require"
)

func TestCDN(t *testing.T) {
	c, err := New(config.DiscordConfigs{BotToken: "token"})
	require.NoError(t, err)

	nelly := User{ID: "80351110224678912", Discriminator: "0", Avatar: ptr("8342729096ea3675442027381ff50dfe")}
	require.Equal(t,
		"https://cdn.discordapp.com/avatars/80351110224678912/8342729096ea3675442027381ff50dfe.png",
		c.UserAvatarURL(nelly, 0))

	nelly.Avatar = ptr("a_1269e74af4df7417b13759eae50c83dc")
	require.Equal(t,
		"https://cdn.discordapp.com/avatars/80351110224678912/a_1269e74af4df7417b13759eae50c83dc.gif?size=256",
		c.UserAvatarURL(nelly, 256))

	// 80351110224678912 >> 22 = 19157197529, which is 5 modulo 6.
	nelly.Avatar = nil
	require.Equal(t, "https://cdn.discordapp.com/embed/avatars/5.png", c.DefaultUserAvatarURL(nelly))
	require.Equal(t, c.DefaultUserAvatarURL(nelly), c.UserAvatarURL(nelly, 64))

	nelly.Discriminator = ""
	require.Equal(t, "https://cdn.discordapp.com/embed/avatars/5.png", c.DefaultUserAvatarURL(nelly))

	require.Equal(t, "https://cdn.discordapp.com/icons/1/abc.png?size=64", c.GuildIconURL("1", "abc", 64))
	require.Empty(t, c.GuildIconURL("1", "", 64))
}

func TestDefaultUserAvatarURL_LegacyDiscriminator(t *testing.T) {
	c, err := New(config.DiscordConfigs{BotToken: "token"})
	require.NoError(t, err)

	// 1337 % 5 = 2, the ID is ignored.
	user := User{ID: "80351110224678912", Discriminator: "1337"}
	require.Equal(t, "https://cdn.discordapp.com/embed/avatars/2.png", c.DefaultUserAvatarURL(user))
	require.Equal(t, "https://cdn.discordapp.com/embed/avatars/2.png", c.UserAvatarURL(user, 128))
}
