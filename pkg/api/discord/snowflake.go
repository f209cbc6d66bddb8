package discord

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Epoch is the first millisecond of 2015, the origin of Discord snowflakes.
const Epoch int64 = 1420070400000

const timestampShift = 22

// Snowflake is a 64-bit Discord identifier, carried as a decimal string.
type Snowflake string

func (s Snowflake) String() string {
	return string(s)
}

func (s Snowflake) Int64() (int64, error) {
	id, err := snowflake.ParseString(string(s))
	if err != nil {
		return 0, err
	}
	return id.Int64(), nil
}

// Time returns the creation time encoded in the identifier.
func (s Snowflake) Time() (time.Time, error) {
	n, err := s.Int64()
	if err != nil {
		return time.Time{}, err
	}

	return time.UnixMilli((n >> timestampShift) + Epoch).UTC(), nil
}

// SnowflakeFromTime returns the smallest identifier created at t. It is meant
// for the before/after bounds of list queries.
func SnowflakeFromTime(t time.Time) Snowflake {
	id := snowflake.ID((t.UnixMilli() - Epoch) << timestampShift)
	return Snowflake(id.String())
}
