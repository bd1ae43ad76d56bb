package scriptdetect

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterLifecycleScripts_Subsets(t *testing.T) {
	tests := []struct {
		name    string
		scripts map[string]string
		want    []HookCommand
	}{
		{
			name:    "nil map",
			scripts: nil,
			want:    nil,
		},
		{
			name:    "no lifecycle keys",
			scripts: map[string]string{"test": "jest", "build": "tsc"},
			want:    nil,
		},
		{
			name:    "postinstall only",
			scripts: map[string]string{"postinstall": "node setup.js", "test": "jest"},
			want:    []HookCommand{{HookPostinstall, "node setup.js"}},
		},
		{
			name:    "install only",
			scripts: map[string]string{"install": "node-gyp rebuild"},
			want:    []HookCommand{{HookInstall, "node-gyp rebuild"}},
		},
		{
			name: "all three",
			scripts: map[string]string{
				"preinstall":  "echo pre",
				"install":     "echo in",
				"postinstall": "echo post",
			},
			want: []HookCommand{
				{HookPreinstall, "echo pre"},
				{HookInstall, "echo in"},
				{HookPostinstall, "echo post"},
			},
		},
		{
			name:    "empty command string is still a declaration",
			scripts: map[string]string{"preinstall": ""},
			want:    []HookCommand{{HookPreinstall, ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterLifecycleScripts(tt.scripts)
			assert.Equal(t, tt.want, got.Commands())
			assert.Equal(t, len(tt.want), got.Len())
			assert.Equal(t, len(tt.want) == 0, got.IsEmpty())
		})
	}
}

func TestFilterLifecycleScripts_FixedOrder(t *testing.T) {
	// Map iteration order is irrelevant: the result always reports hooks in
	// preinstall, install, postinstall order.
	scripts := map[string]string{
		"postinstall": "c",
		"preinstall":  "a",
		"install":     "b",
	}

	got := FilterLifecycleScripts(scripts).Commands()
	require.Len(t, got, 3)
	assert.Equal(t, HookPreinstall, got[0].Hook)
	assert.Equal(t, HookInstall, got[1].Hook)
	assert.Equal(t, HookPostinstall, got[2].Hook)
}

func TestFilterLifecycleScripts_DropsOtherKeys(t *testing.T) {
	scripts := map[string]string{
		"postinstall":    "node setup.js",
		"prepublishOnly": "npm run build",
		"prepare":        "husky install",
	}

	got := FilterLifecycleScripts(scripts)
	assert.Equal(t, 1, got.Len())
	cmd, ok := got.Get(HookPostinstall)
	require.True(t, ok)
	assert.Equal(t, "node setup.js", cmd)

	_, ok = got.Get(HookPreinstall)
	assert.False(t, ok)
	_, ok = got.Get(HookInstall)
	assert.False(t, ok)
}

func TestLifecycleScripts_JSONOmitsUnsetHooks(t *testing.T) {
	scripts := FilterLifecycleScripts(map[string]string{"postinstall": "node setup.js"})
	data, err := json.Marshal(scripts)
	require.NoError(t, err)
	assert.JSONEq(t, `{"postinstall":"node setup.js"}`, string(data))
}

func TestHooks_CanonicalOrder(t *testing.T) {
	assert.Equal(t, []Hook{HookPreinstall, HookInstall, HookPostinstall}, Hooks())
}

func TestFinding_JSONShape(t *testing.T) {
	f := Finding{
		Name:    "a",
		Version: "1.0.0",
		Scripts: FilterLifecycleScripts(map[string]string{"postinstall": "node setup.js"}),
		Path:    "/tree/pkgA/package.json",
	}

	data, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "a",
		"version": "1.0.0",
		"scripts": {"postinstall": "node setup.js"},
		"path": "/tree/pkgA/package.json"
	}`, string(data))
}
