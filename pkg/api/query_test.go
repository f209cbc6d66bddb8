package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type testQuery struct {
	Limit      int      `url:"limit,omitempty"`
	After      string   `url:"after,omitempty"`
	WithCounts *bool    `url:"with_counts,omitempty"`
	Roles      []string `url:"include_roles,omitempty"`
	Ignored    string   `url:"-"`
	Page       int      `url:"page"`
}

func TestQuery_Empty(t *testing.T) {
	require.Equal(t, "", Query(nil))
	require.Equal(t, "", Query(Parameter{}))
	require.Equal(t, "", Query(map[string]string{}))
	require.Equal(t, "", Query((*testQuery)(nil)))
	require.Equal(t, "", Query(struct{}{}))
	require.Equal(t, "", Query("not a struct"))
}

func TestQuery_Parameter(t *testing.T) {
	require.Equal(t, "?a=x%20y&b=2", Query(Parameter{"b": "2", "a": "x y"}))
	require.Equal(t, "?na%20me=v%26w", Query(map[string]string{"na me": "v&w"}))
}

func TestQuery_Struct(t *testing.T) {
	withCounts := false
	q := &testQuery{
		Limit:      10,
		After:      "1&2",
		WithCounts: &withCounts,
		Roles:      []string{"a", "b"},
		Ignored:    "nope",
		Page:       0,
	}

	require.Equal(t, "?limit=10&after=1%262&with_counts=false&include_roles=a%2Cb&page=0", Query(q))
	require.Equal(t, "?page=0", Query(testQuery{}))
}

func TestQuery_Format(t *testing.T) {
	got := Query(Parameter{"x": "1", "y": "2", "z": "3"})
	require.True(t, strings.HasPrefix(got, "?"))
	require.NotContains(t, got, "&&")
	require.Len(t, strings.Split(got[1:], "&"), 3)
}
