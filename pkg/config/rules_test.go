package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRules(t *testing.T) {
	rules, err := LoadRules()
	require.NoError(t, err)

	assert.Equal(t, "HOMEBREW_", rules.Namespace)
	assert.Contains(t, rules.Filter.AllowList, "HOME")
	assert.Contains(t, rules.Filter.AllowList, "https_proxy")
	assert.Equal(t, "GITHUB_", rules.Filter.CIPrefix)
	assert.Contains(t, rules.Promote.PassThrough, "EDITOR")
	assert.Contains(t, rules.Promote.ToolOwned, "PATH")
	assert.Equal(t, "/etc/homebrew/brew.env", rules.Files.System)
	assert.Equal(t, "/bin/bash", rules.Interpreter.Shell)
	assert.Equal(t, []string{"-p"}, rules.Interpreter.Flags)
	assert.Equal(t, []string{"cmd", ".github", "lib", "spec", "vendor"}, rules.Taps.PrunedDirs)
}

func TestDefaultIsCached(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestParseRulesRejectsUnknownKeys(t *testing.T) {
	_, err := parseRules([]byte("namespace = \"X_\"\nbogus = 1\n"))
	assert.Error(t, err)
}

func TestParseRulesRequiresNamespace(t *testing.T) {
	_, err := parseRules([]byte("[filter]\nci_prefix = \"GITHUB_\"\n"))
	assert.Error(t, err)
}

func TestSpecsCarryNamespace(t *testing.T) {
	rules := Default()

	filter := rules.FilterSpec()
	assert.Equal(t, "HOMEBREW_", filter.Prefix)
	assert.Equal(t, rules.Filter.AllowList, filter.AllowList)
	assert.Equal(t, []string{"TOKEN", "SECRET"}, filter.SecretFragments)

	promote := rules.PromotionSpec()
	assert.Equal(t, "HOMEBREW_", promote.Prefix)
	assert.Equal(t, rules.Promote.ToolOwned, promote.ToolOwned)
}
