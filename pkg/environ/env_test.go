package environ

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromPairs(t *testing.T) {
	env := FromPairs([]string{
		"HOME=/Users/me",
		"EMPTY=",
		"DUP=first",
		"DUP=second",
		"garbage",
		"=C:=C:\\",
		"EQ=a=b",
	})

	assert.Equal(t, "/Users/me", env.Get("HOME"))
	assert.Equal(t, "second", env.Get("DUP"))
	assert.Equal(t, "a=b", env.Get("EQ"))

	v, ok := env.Lookup("EMPTY")
	assert.True(t, ok)
	assert.Equal(t, "", v)
	assert.False(t, env.IsSet("EMPTY"))

	_, ok = env.Lookup("garbage")
	assert.False(t, ok)
	assert.Equal(t, 4, env.Len())
}

func TestEnvIsImmutable(t *testing.T) {
	src := map[string]string{"A": "1"}
	env := FromMap(src)
	src["A"] = "changed"
	assert.Equal(t, "1", env.Get("A"))

	next := env.With("B", "2")
	assert.False(t, env.IsSet("B"))
	assert.Equal(t, "2", next.Get("B"))

	merged := env.Merge(map[string]string{"A": "3"})
	assert.Equal(t, "1", env.Get("A"))
	assert.Equal(t, "3", merged.Get("A"))

	m := env.Map()
	m["A"] = "mutated"
	assert.Equal(t, "1", env.Get("A"))
}

func TestPairsAreSorted(t *testing.T) {
	env := FromMap(map[string]string{"PATH": "/bin", "HOME": "/h", "HOMEBREW_PREFIX": "/opt/homebrew"})
	assert.Equal(t, []string{"HOME=/h", "HOMEBREW_PREFIX=/opt/homebrew", "PATH=/bin"}, env.Pairs())
	assert.Equal(t, []string{"HOME", "HOMEBREW_PREFIX", "PATH"}, env.Names())
}
