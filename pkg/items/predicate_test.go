package items

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindMatchers(t *testing.T) {
	tests := []struct {
		path    string
		formula bool
		cask    bool
	}{
		{"Formula/foo.rb", true, false},
		{"Formula/f/foo.rb", true, false},
		{"foo.rb", true, false},
		{"HomebrewFormula/foo.rb", true, false},
		{"Casks/bar.rb", false, true},
		{"Casks/b/bar.rb", false, true},
		{"Formula/README.md", false, false},
		{"Casks/README.md", false, false},
	}

	formula := Formula.Matcher()
	cask := Cask.Matcher()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.formula, formula(tt.path), "formula")
			assert.Equal(t, tt.cask, cask(tt.path), "cask")
		})
	}
}

func TestPredicateCombinators(t *testing.T) {
	rb := Glob("**/*.rb")
	casks := Glob("**/Casks/**")

	assert.True(t, And(rb, Not(casks))("Formula/x.rb"))
	assert.False(t, And(rb, Not(casks))("Casks/x.rb"))
	assert.True(t, And()("anything"))
	assert.False(t, Glob("[")("["), "invalid patterns match nothing")
}
