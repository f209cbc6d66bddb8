package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/questx-lab/tinfoil/pkg/api"
)

// Number of default avatars Discord hands out to users without one. Legacy
// users with a discriminator only get the first five.
const (
	defaultAvatarCount = 6
	legacyAvatarCount  = 5
)

func imageExtension(hash string) string {
	if strings.HasPrefix(hash, "a_") {
		return "gif"
	}

	return "png"
}

func (c *Client) cdnURL(path string, size int) string {
	var query api.Parameter
	if size > 0 {
		query = api.Parameter{"size": fmt.Sprint(size)}
	}

	return c.cfg.CDNURL + path + api.Query(query)
}

// UserAvatarURL returns the avatar image of user, or the default avatar when
// the user has none. A zero size leaves the choice to the CDN, otherwise it
// should be a power of two between 16 and 4096.
func (c *Client) UserAvatarURL(user User, size int) string {
	if user.Avatar == nil || *user.Avatar == "" {
		return c.DefaultUserAvatarURL(user)
	}

	hash := *user.Avatar
	return c.cdnURL(fmt.Sprintf("/avatars/%s/%s.%s", user.ID, hash, imageExtension(hash)), size)
}

// DefaultUserAvatarURL picks one of the built-in avatars. Users on the new
// username system (discriminator "0" or none) are keyed by their ID, legacy
// users by their discriminator.
func (c *Client) DefaultUserAvatarURL(user User) string {
	var index int64
	if user.Discriminator != "" && user.Discriminator != "0" {
		if n, err := strconv.ParseInt(user.Discriminator, 10, 64); err == nil {
			index = n % legacyAvatarCount
		}
	} else if n, err := user.ID.Int64(); err == nil {
		index = (n >> 22) % defaultAvatarCount
	}

	return c.cdnURL(fmt.Sprintf("/embed/avatars/%d.png", index), 0)
}

// GuildIconURL returns "" when the guild has no icon.
func (c *Client) GuildIconURL(guildID Snowflake, hash string, size int) string {
	if hash == "" {
		return ""
	}

	return c.cdnURL(fmt.Sprintf("/icons/%s/%s.%s", guildID, hash, imageExtension(hash)), size)
}
