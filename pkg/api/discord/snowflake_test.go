package discord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSnowflake_Time(t *testing.T) {
	// Example from the Discord reference documentation.
	got, err := Snowflake("175928847299117063").Time()
	require.NoError(t, err)
	require.Equal(t, time.Date(2016, 4, 30, 11, 18, 25, 796*int(time.Millisecond), time.UTC), got)

	_, err = Snowflake("not-a-number").Time()
	require.Error(t, err)
}

func TestSnowflakeFromTime(t *testing.T) {
	at := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	id := SnowflakeFromTime(at)

	got, err := id.Time()
	require.NoError(t, err)
	require.Equal(t, at, got)
}
