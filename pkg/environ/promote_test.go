package environ

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPromotionSpec() PromotionSpec {
	return PromotionSpec{
		Prefix:      "HOMEBREW_",
		PassThrough: []string{"EDITOR", "BROWSER", "DISPLAY"},
		ToolOwned:   []string{"PATH", "TMUX", "CI"},
	}
}

func TestPromote(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want map[string]string
	}{
		{
			name: "pass-through copies when namespaced form unset",
			env:  map[string]string{"EDITOR": "vim"},
			want: map[string]string{"EDITOR": "vim", "HOMEBREW_EDITOR": "vim"},
		},
		{
			name: "pass-through keeps user namespaced value",
			env:  map[string]string{"EDITOR": "vim", "HOMEBREW_EDITOR": "emacs"},
			want: map[string]string{"EDITOR": "vim", "HOMEBREW_EDITOR": "emacs"},
		},
		{
			name: "pass-through replaces empty namespaced value",
			env:  map[string]string{"BROWSER": "firefox", "HOMEBREW_BROWSER": ""},
			want: map[string]string{"BROWSER": "firefox", "HOMEBREW_BROWSER": "firefox"},
		},
		{
			name: "tool-owned always overwrites",
			env:  map[string]string{"PATH": "/usr/bin:/bin", "HOMEBREW_PATH": "/evil"},
			want: map[string]string{"PATH": "/usr/bin:/bin", "HOMEBREW_PATH": "/usr/bin:/bin"},
		},
		{
			name: "empty bare values are not promoted",
			env:  map[string]string{"TMUX": "", "DISPLAY": "", "HOMEBREW_TMUX": "stale"},
			want: map[string]string{"TMUX": "", "DISPLAY": "", "HOMEBREW_TMUX": "stale"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := FromMap(tt.env)
			got := Promote(env, testPromotionSpec())
			assert.Equal(t, tt.want, got.Map())
			assert.Equal(t, tt.env, env.Map(), "input snapshot must not change")
		})
	}
}
