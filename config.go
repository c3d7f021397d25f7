package raffle

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Attribute keys read from the host markup.
const (
	AttrStartingNumber = "data-starting-number"
	AttrEndingNumber   = "data-ending-number"
	AttrRaffleDuration = "data-raffle-duration"
	AttrFullscreen     = "data-fullscreen"
	AttrAnimationType  = "data-animation-type"
	AttrLocale         = "data-locale"
)

// Limits and defaults for draw configuration.
const (
	MinNumber = -999999
	MaxNumber = 999999

	MinDuration = 1
	MaxDuration = 60

	DefaultRangeStart = 1
	DefaultRangeEnd   = 100
	DefaultDuration   = 5
)

// Config is the immutable per-draw configuration of a Widget.
type Config struct {
	RangeStart int
	RangeEnd   int
	Duration   int // rolling time in seconds
	Fullscreen bool
	Kind       Kind
	// Locale is an optional BCP 47 tag. When set, displayed numbers use the
	// locale's digit grouping.
	Locale string
}

// DefaultConfig returns the configuration used when no attributes are set.
func DefaultConfig() Config {
	return Config{
		RangeStart: DefaultRangeStart,
		RangeEnd:   DefaultRangeEnd,
		Duration:   DefaultDuration,
		Kind:       KindFirework,
	}
}

// Normalize clamps every field to its valid range and enforces
// RangeEnd > RangeStart by raising RangeEnd to RangeStart+1 when needed.
func (c Config) Normalize() Config {
	if c.RangeStart < MinNumber || c.RangeStart > MaxNumber {
		c.RangeStart = DefaultRangeStart
	}
	if c.RangeEnd < MinNumber || c.RangeEnd > MaxNumber {
		c.RangeEnd = c.RangeStart + 1
	}
	if c.RangeEnd <= c.RangeStart {
		c.RangeEnd = c.RangeStart + 1
	}
	if c.Duration < MinDuration || c.Duration > MaxDuration {
		c.Duration = DefaultDuration
	}
	if int(c.Kind) >= numKinds {
		c.Kind = KindFirework
	}
	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			c.Locale = ""
		}
	}
	return c
}

// RollTicks returns how many 100ms rolling ticks a draw performs.
func (c Config) RollTicks() int {
	return c.Duration * 1000 / int(RollInterval.Milliseconds())
}

// ParseAttributes builds a Config from host markup attributes. It never
// fails: every missing, malformed or out-of-range value falls back to its
// default, and the result is normalized.
func ParseAttributes(attrs map[string]string) Config {
	c := DefaultConfig()

	if v, ok := attrs[AttrStartingNumber]; ok {
		c.RangeStart = parseBounded(v, MinNumber, MaxNumber, DefaultRangeStart)
	}
	if v, ok := attrs[AttrEndingNumber]; ok {
		c.RangeEnd = parseBounded(v, MinNumber, MaxNumber, c.RangeStart+1)
	}
	if v, ok := attrs[AttrRaffleDuration]; ok {
		c.Duration = parseBounded(v, MinDuration, MaxDuration, DefaultDuration)
	}
	c.Fullscreen = strings.TrimSpace(attrs[AttrFullscreen]) == "true"
	if v, ok := attrs[AttrAnimationType]; ok {
		c.Kind = ParseKind(strings.TrimSpace(v))
	}
	c.Locale = strings.TrimSpace(attrs[AttrLocale])

	return c.Normalize()
}

// parseBounded parses a base-10 integer with optional surrounding space and
// returns fallback when parsing fails or the value is outside [lo, hi].
func parseBounded(s string, lo, hi, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < lo || n > hi {
		return fallback
	}
	return n
}

// fileAttributes maps YAML config keys to markup attribute keys.
var fileAttributes = map[string]string{
	"starting_number": AttrStartingNumber,
	"ending_number":   AttrEndingNumber,
	"raffle_duration": AttrRaffleDuration,
	"fullscreen":      AttrFullscreen,
	"animation_type":  AttrAnimationType,
	"locale":          AttrLocale,
}

// ParseConfigYAML reads a Config from YAML such as:
//
//	starting_number: 1
//	ending_number: 500
//	raffle_duration: 3
//	fullscreen: true
//	animation_type: confetti
//
// Values go through the same defensive parsing as ParseAttributes, so a
// document that decodes always yields a usable Config. Only malformed YAML
// is an error.
func ParseConfigYAML(data []byte) (Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return DefaultConfig(), fmt.Errorf("parse raffle config: %w", err)
	}
	attrs := make(map[string]string, len(raw))
	for key, value := range raw {
		attr, ok := fileAttributes[key]
		if !ok || value == nil {
			continue
		}
		attrs[attr] = fmt.Sprint(value)
	}
	return ParseAttributes(attrs), nil
}

// LoadConfigFile reads and parses a YAML config file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("read raffle config %s: %w", path, err)
	}
	cfg, err := ParseConfigYAML(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
