package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/decker502/overworld/pkg/animation"
)

func TestDefaultBindingsConfig(t *testing.T) {
	cfg := DefaultBindingsConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default bindings invalid: %v", err)
	}

	want := []string{animation.AxisHorizontal, animation.AxisVertical}
	if got := cfg.AxisNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("AxisNames() = %v, want %v", got, want)
	}

	priority, err := cfg.Priority()
	if err != nil || priority != animation.VerticalFirst {
		t.Errorf("Priority() = %s, %v; want vertical", priority, err)
	}
}

func TestParseBindingsConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
	}{
		{
			name: "valid config",
			yamlContent: `
axes:
  horizontal:
    pos: [D, ArrowRight]
    neg: [A, ArrowLeft]
  vertical:
    pos: [W]
    neg: [S]
    gamepadAxis: leftStickVertical
    invertGamepad: true
    deadZone: 0.2
axisPriority: horizontal
`,
		},
		{
			name:        "no axes",
			yamlContent: "axisPriority: vertical\n",
			wantErr:     true,
			errContains: "no axes defined",
		},
		{
			name: "empty axis",
			yamlContent: `
axes:
  horizontal: {}
`,
			wantErr:     true,
			errContains: `axis "horizontal" has no keys`,
		},
		{
			name: "bad dead zone",
			yamlContent: `
axes:
  vertical:
    gamepadAxis: leftStickVertical
    deadZone: 1.5
`,
			wantErr:     true,
			errContains: "deadZone",
		},
		{
			name: "unknown priority",
			yamlContent: `
axes:
  vertical:
    pos: [W]
axisPriority: last
`,
			wantErr:     true,
			errContains: "unknown axis priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseBindingsConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			priority, _ := cfg.Priority()
			if priority != animation.HorizontalFirst {
				t.Errorf("expected horizontal priority, got %s", priority)
			}
			if !cfg.Axes["vertical"].InvertGamepad {
				t.Error("expected vertical gamepad axis to be inverted")
			}
		})
	}
}

func TestLoadBindingsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.yaml")
	content := "axes:\n  horizontal:\n    pos: [Right]\n    neg: [Left]\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadBindingsConfig(path)
	if err != nil {
		t.Fatalf("LoadBindingsConfig() error: %v", err)
	}
	if got := cfg.Axes["horizontal"].Pos; !reflect.DeepEqual(got, []string{"Right"}) {
		t.Errorf("horizontal pos = %v, want [Right]", got)
	}
}
