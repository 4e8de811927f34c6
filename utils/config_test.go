package utils

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func load(t *testing.T, path string) (Config, *ConfigFile, error) {
	t.Helper()
	return LoadConfig(path, model.DefaultWidth, model.DefaultHeight)
}

func TestLoadConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)

	config, file, err := load(t, path)
	if !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("LoadConfig error = %v, want not-exist", err)
	}
	if config.Foreground != DefaultConfig().Foreground || config.Interval != DefaultConfig().Interval || config.Pattern != nil {
		t.Fatalf("config = %+v, want defaults", config)
	}
	if file.Path() != path {
		t.Fatalf("file path = %q", file.Path())
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `[display]
fgcolour = 0,255,0
bgcolour = 10, 20, 30

[timer]
interval = 125

[pattern]
cells = 1,0|2,1|0,2|1,2|2,2
`)

	config, _, err := load(t, path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if want := (color.RGBA{G: 255, A: 255}); config.Foreground != want {
		t.Errorf("Foreground = %v, want %v", config.Foreground, want)
	}
	if want := (color.RGBA{R: 10, G: 20, B: 30, A: 255}); config.Background != want {
		t.Errorf("Background = %v, want %v", config.Background, want)
	}
	if config.Interval != 125*time.Millisecond {
		t.Errorf("Interval = %v", config.Interval)
	}
	if len(config.Pattern) != 5 || config.Pattern[4] != model.At(2, 2) {
		t.Errorf("Pattern = %v", config.Pattern)
	}
}

func TestLoadConfigDefaultsWrittenBack(t *testing.T) {
	path := writeConfig(t, `[display]
fgcolour = 1,2
bgcolour = 300,0,0

[timer]
interval = soon
`)

	config, file, err := load(t, path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	defaults := DefaultConfig()
	if config.Foreground != defaults.Foreground || config.Background != defaults.Background || config.Interval != defaults.Interval {
		t.Fatalf("config = %+v, want defaults", config)
	}

	if err := file.SavePattern("5,5"); err != nil {
		t.Fatalf("SavePattern: %v", err)
	}
	_, reloaded, err := load(t, path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	for _, kv := range [][3]string{
		{sectionDisplay, keyForeground, "255,255,255"},
		{sectionDisplay, keyBackground, "0,0,0"},
		{sectionTimer, keyInterval, "500"},
		{sectionPattern, keyCells, "5,5"},
	} {
		if got := reloaded.lookup(kv[0], kv[1]); got != kv[2] {
			t.Errorf("[%s] %s = %q, want %q", kv[0], kv[1], got, kv[2])
		}
	}
}

func TestLoadConfigRejectsPattern(t *testing.T) {
	tests := []struct {
		name  string
		cells string
		want  error
	}{
		{"out of range", "1,1|63,5", model.ErrOutOfRange},
		{"malformed", "1,1|x,2", model.ErrMalformedPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, "[display]\nfgcolour = 1,2,3\n[pattern]\ncells = "+tt.cells+"\n")

			config, _, err := load(t, path)
			if !errors.Is(err, tt.want) {
				t.Fatalf("LoadConfig error = %v, want %v", err, tt.want)
			}
			if config.Pattern != nil {
				t.Fatalf("partial pattern returned: %v", config.Pattern)
			}
			if want := (color.RGBA{R: 1, G: 2, B: 3, A: 255}); config.Foreground != want {
				t.Fatalf("other settings lost: %+v", config)
			}
		})
	}
}

func TestSavePatternEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	_, file, _ := load(t, path)

	if err := file.SavePattern(""); err != nil {
		t.Fatalf("SavePattern: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("empty pattern created the file: %v", err)
	}
}

func TestClearPattern(t *testing.T) {
	path := writeConfig(t, "[timer]\ninterval = 200\n[pattern]\ncells = 5,5\n")

	_, file, err := load(t, path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if err := file.ClearPattern(); err != nil {
		t.Fatalf("ClearPattern: %v", err)
	}

	config, reloaded, err := load(t, path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if config.Pattern != nil {
		t.Fatalf("pattern survived ClearPattern: %v", config.Pattern)
	}
	if reloaded.has(sectionPattern, keyCells) {
		t.Fatal("cells key still present")
	}
	if config.Interval != 200*time.Millisecond {
		t.Fatalf("other settings lost: %+v", config)
	}
}

func TestLoadConfigHugeInterval(t *testing.T) {
	path := writeConfig(t, "[timer]\ninterval = 9223372036854775807\n")

	config, file, err := load(t, path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Interval != DefaultConfig().Interval {
		t.Fatalf("Interval = %v, want the default", config.Interval)
	}
	if got := file.lookup(sectionTimer, keyInterval); got != "500" {
		t.Fatalf("interval written back as %q", got)
	}
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"255,255,255", color.RGBA{R: 255, G: 255, B: 255, A: 255}, true},
		{"0, 128 ,7", color.RGBA{G: 128, B: 7, A: 255}, true},
		{"", color.RGBA{}, false},
		{"1,2", color.RGBA{}, false},
		{"1,2,3,4", color.RGBA{}, false},
		{"256,0,0", color.RGBA{}, false},
		{"-1,0,0", color.RGBA{}, false},
		{"red,0,0", color.RGBA{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseColour(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseColour(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
	if got := FormatColour(color.RGBA{R: 1, G: 22, B: 255}); got != "1,22,255" {
		t.Errorf("FormatColour = %q", got)
	}
}

func TestParseInterval(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
		ok   bool
	}{
		{"500", 500 * time.Millisecond, true},
		{" 0 ", 0, true},
		{"-5", 0, false},
		{"1.5", 0, false},
		{"9223372036854775807", 0, false},
		{"9223372036855", 0, false},
		{"9223372036854", 9223372036854 * time.Millisecond, true},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseInterval(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseInterval(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
	if got := FormatInterval(250 * time.Millisecond); got != "250" {
		t.Errorf("FormatInterval = %q", got)
	}
}
