package utils

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	"github.com/sheikhrachel/go-life/model"
)

const (
	// DefaultConfigFile is read from and saved to the working directory
	DefaultConfigFile = "gameoflife.ini"

	sectionDisplay = "display"
	keyForeground  = "fgcolour"
	keyBackground  = "bgcolour"
	sectionTimer   = "timer"
	keyInterval    = "interval"
	sectionPattern = "pattern"
	keyCells       = "cells"
)

// Config holds the persisted settings of the game
type Config struct {
	Foreground color.RGBA
	Background color.RGBA
	Interval   time.Duration
	Pattern    []model.Cell // nil when no usable pattern was stored
}

// DefaultConfig returns the compiled-in defaults
func DefaultConfig() Config {
	return Config{
		Foreground: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Background: color.RGBA{A: 255},
		Interval:   500 * time.Millisecond,
	}
}

// ConfigFile is the in-memory copy of the settings file, kept so that saving
// the pattern also persists defaults written back during load
type ConfigFile struct {
	path string
	file *ini.File
}

// Path returns the file the config is saved to
func (f *ConfigFile) Path() string {
	return f.path
}

// LoadConfig loads the settings for a width x height grid. A Config and a
// ConfigFile are always returned. Missing or malformed display and timer keys
// fall back to defaults, which are written back into the ConfigFile. The
// error reports an unreadable file or a rejected pattern and is not fatal.
func LoadConfig(filename string, width, height int) (Config, *ConfigFile, error) {
	var (
		config = DefaultConfig()
		cf     = &ConfigFile{path: filename, file: ini.Empty()}
	)

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, cf, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	file, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, data)
	if err != nil {
		return config, cf, errors.Wrapf(err, "[LoadConfig] failed to parse file: %+v", filename)
	}
	cf.file = file

	if clr, ok := ParseColour(cf.lookup(sectionDisplay, keyForeground)); ok {
		config.Foreground = clr
	} else {
		cf.set(sectionDisplay, keyForeground, FormatColour(config.Foreground))
	}

	if clr, ok := ParseColour(cf.lookup(sectionDisplay, keyBackground)); ok {
		config.Background = clr
	} else {
		cf.set(sectionDisplay, keyBackground, FormatColour(config.Background))
	}

	if interval, ok := ParseInterval(cf.lookup(sectionTimer, keyInterval)); ok {
		config.Interval = interval
	} else {
		cf.set(sectionTimer, keyInterval, FormatInterval(config.Interval))
	}

	if !cf.has(sectionPattern, keyCells) {
		return config, cf, nil
	}
	cells, err := model.ParsePattern(cf.lookup(sectionPattern, keyCells), width, height)
	if err != nil {
		return config, cf, errors.Wrapf(err, "[LoadConfig] pattern in %+v rejected", filename)
	}
	config.Pattern = cells

	return config, cf, nil
}

// SavePattern stores a serialized pattern and writes the whole file to disk.
// An empty pattern leaves both the file and the stored pattern untouched.
func (f *ConfigFile) SavePattern(pattern string) error {
	if pattern == "" {
		return nil
	}
	f.set(sectionPattern, keyCells, pattern)
	if err := f.file.SaveTo(f.path); err != nil {
		return errors.Wrapf(err, "[SavePattern] failed to write file: %+v", f.path)
	}
	return nil
}

// ClearPattern removes the stored pattern and writes the file to disk
func (f *ConfigFile) ClearPattern() error {
	if f.file.HasSection(sectionPattern) {
		sec := f.file.Section(sectionPattern)
		sec.DeleteKey(keyCells)
		if len(sec.Keys()) == 0 {
			f.file.DeleteSection(sectionPattern)
		}
	}
	if err := f.file.SaveTo(f.path); err != nil {
		return errors.Wrapf(err, "[ClearPattern] failed to write file: %+v", f.path)
	}
	return nil
}

func (f *ConfigFile) has(section, key string) bool {
	return f.file.HasSection(section) && f.file.Section(section).HasKey(key)
}

// lookup returns "" for missing keys, which every parser rejects
func (f *ConfigFile) lookup(section, key string) string {
	if !f.has(section, key) {
		return ""
	}
	return f.file.Section(section).Key(key).String()
}

func (f *ConfigFile) set(section, key, value string) {
	f.file.Section(section).Key(key).SetValue(value)
}

// ParseColour parses an "R,G,B" triple of integers in [0,255]
func ParseColour(s string) (color.RGBA, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return color.RGBA{}, false
	}
	var rgb [3]uint8
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v < 0 || v > 255 {
			return color.RGBA{}, false
		}
		rgb[i] = uint8(v)
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, true
}

// FormatColour renders a colour as "R,G,B"
func FormatColour(c color.RGBA) string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// ParseInterval parses a non-negative whole number of milliseconds that fits
// in a time.Duration
func ParseInterval(s string) (time.Duration, bool) {
	ms, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || ms < 0 || ms > math.MaxInt64/int64(time.Millisecond) {
		return 0, false
	}
	return time.Duration(ms) * time.Millisecond, true
}

// FormatInterval renders an interval as whole milliseconds
func FormatInterval(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10)
}
