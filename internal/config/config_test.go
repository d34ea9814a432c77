package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// --- Validate tests ---

func TestValidate_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate_BuiltinPresets(t *testing.T) {
	for name, rc := range BuiltinPresets {
		if err := rc.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestValidate_RejectsBadRenderValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RenderConfig)
	}{
		{"zero slow factor", func(r *RenderConfig) { r.SlowFactor = 0 }},
		{"zero window", func(r *RenderConfig) { r.BlendWindow = 0 }},
		{"zero fps", func(r *RenderConfig) { r.OutputFPS = 0 }},
		{"negative fps", func(r *RenderConfig) { r.OutputFPS = -30 }},
		{"odd scale width", func(r *RenderConfig) { r.ScaleWidth = 1279 }},
		{"negative scale", func(r *RenderConfig) { r.ScaleWidth = -2 }},
		{"crf too high", func(r *RenderConfig) { r.CRF = 52 }},
		{"crf negative", func(r *RenderConfig) { r.CRF = -1 }},
		{"bogus speed preset", func(r *RenderConfig) { r.SpeedPreset = "warp9" }},
		{"bogus tune", func(r *RenderConfig) { r.Tune = "vaporwave" }},
		{"interpolate below output fps", func(r *RenderConfig) { r.InterpolateFPS = 10 }},
	}
	for _, c := range cases {
		rc := BuiltinPresets["cinematic"]
		c.mutate(&rc)
		if err := rc.Validate(); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}

func TestValidate_RejectsPathOutputName(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputName = "sub/render.mp4"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for output name containing a separator")
	}
}

// --- Preset resolution tests ---

func TestResolvePreset_Builtin(t *testing.T) {
	rc, err := ResolvePreset("ambient", nil)
	if err != nil {
		t.Fatalf("ResolvePreset: %v", err)
	}
	if rc.BlendWindow != 12 {
		t.Errorf("ambient window = %d, want 12", rc.BlendWindow)
	}
}

func TestResolvePreset_FileShadowsBuiltin(t *testing.T) {
	custom := BuiltinPresets["cinematic"]
	custom.SlowFactor = 99
	rc, err := ResolvePreset("cinematic", map[string]RenderConfig{"cinematic": custom})
	if err != nil {
		t.Fatalf("ResolvePreset: %v", err)
	}
	if rc.SlowFactor != 99 {
		t.Errorf("file preset did not shadow builtin: slow = %d", rc.SlowFactor)
	}
}

func TestResolvePreset_UnknownListsAvailable(t *testing.T) {
	_, err := ResolvePreset("nope", nil)
	if err == nil {
		t.Fatal("expected error for unknown preset")
	}
	if !strings.Contains(err.Error(), "cinematic") || !strings.Contains(err.Error(), "ambient") {
		t.Errorf("error should list available presets: %v", err)
	}
}

// --- Flag parsing tests ---

func TestParseFlags_NoArgsKeepsDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, "test", nil); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.InputDir != "." || cfg.PresetName != "cinematic" {
		t.Errorf("defaults changed: dir=%q preset=%q", cfg.InputDir, cfg.PresetName)
	}
	if cfg.Render != BuiltinPresets["cinematic"] {
		t.Errorf("render config diverged from cinematic preset")
	}
}

func TestParseFlags_KnobsOverridePreset(t *testing.T) {
	cfg := DefaultConfig()
	err := ParseFlags(&cfg, "test", []string{"--slow", "12", "--window", "16", "--tune", ""})
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.Render.SlowFactor != 12 {
		t.Errorf("slow = %d, want 12", cfg.Render.SlowFactor)
	}
	if cfg.Render.BlendWindow != 16 {
		t.Errorf("window = %d, want 16", cfg.Render.BlendWindow)
	}
	if cfg.Render.Tune != "" {
		t.Errorf("tune = %q, want cleared", cfg.Render.Tune)
	}
	// Untouched knobs keep preset values.
	if cfg.Render.CRF != BuiltinPresets["cinematic"].CRF {
		t.Errorf("crf = %d, want preset default", cfg.Render.CRF)
	}
}

func TestParseFlags_PresetSelection(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, "test", []string{"--preset", "ambient"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.Render != BuiltinPresets["ambient"] {
		t.Errorf("render config is not the ambient preset")
	}
}

func TestParseFlags_PositionalInputDir(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, "test", []string{"/media/clips/"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.InputDir != "/media/clips" {
		t.Errorf("input dir = %q, want /media/clips", cfg.InputDir)
	}
}

func TestParseFlags_TooManyPositionals(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, "test", []string{"a", "b"}); err == nil {
		t.Error("expected error for extra positional args")
	}
}

// --- Preset file tests ---

func TestLoadPresetFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "render.yaml")
	doc := `
presets:
  dreamy:
    base: cinematic
    slow: 12
    window: 16
    crf: 20
  bg:
    base: ambient
    fps: 30
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	presets, err := LoadPresetFile(path)
	if err != nil {
		t.Fatalf("LoadPresetFile: %v", err)
	}

	dreamy := presets["dreamy"]
	if dreamy.SlowFactor != 12 || dreamy.BlendWindow != 16 || dreamy.CRF != 20 {
		t.Errorf("dreamy = %+v", dreamy)
	}
	// Unset keys inherit from the base preset.
	if dreamy.OutputFPS != BuiltinPresets["cinematic"].OutputFPS {
		t.Errorf("dreamy fps = %d, want inherited", dreamy.OutputFPS)
	}

	bg := presets["bg"]
	if bg.OutputFPS != 30 || bg.BlendWindow != BuiltinPresets["ambient"].BlendWindow {
		t.Errorf("bg = %+v", bg)
	}
}

func TestLoadPresetFile_InvalidEntryFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "render.yaml")
	doc := `
presets:
  broken:
    slow: 0
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadPresetFile(path); err == nil {
		t.Error("expected validation error for slow: 0")
	}
}

func TestLoadPresetFile_UnknownBaseFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "render.yaml")
	doc := `
presets:
  x:
    base: nonexistent
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadPresetFile(path); err == nil {
		t.Error("expected error for unknown base preset")
	}
}

func TestLoadPresetFile_EmptyFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "render.yaml")
	if err := os.WriteFile(path, []byte("presets: {}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadPresetFile(path); err == nil {
		t.Error("expected error for empty preset file")
	}
}

// --- Env tests ---

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv("SLOWGLASS_PRESET", "ambient")
	t.Setenv("SLOWGLASS_OUT", "loop.mp4")

	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	if cfg.PresetName != "ambient" || cfg.OutputName != "loop.mp4" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestNormalizeDirArg(t *testing.T) {
	if got := NormalizeDirArg("/a/b//"); got != "/a/b" {
		t.Errorf("got %q", got)
	}
	if got := NormalizeDirArg("/"); got != "/" {
		t.Errorf("root mangled: %q", got)
	}
}
