package raffle

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.RangeStart != 1 || c.RangeEnd != 100 || c.Duration != 5 || c.Fullscreen || c.Kind != KindFirework {
		t.Errorf("DefaultConfig = %+v", c)
	}
}

func TestParseAttributes(t *testing.T) {
	tests := []struct {
		name  string
		attrs map[string]string
		want  Config
	}{
		{
			name:  "empty",
			attrs: nil,
			want:  Config{RangeStart: 1, RangeEnd: 100, Duration: 5},
		},
		{
			name: "all set",
			attrs: map[string]string{
				AttrStartingNumber: "10",
				AttrEndingNumber:   "20",
				AttrRaffleDuration: "3",
				AttrFullscreen:     "true",
				AttrAnimationType:  "balloons",
			},
			want: Config{RangeStart: 10, RangeEnd: 20, Duration: 3, Fullscreen: true, Kind: KindBalloon},
		},
		{
			name:  "end not above start",
			attrs: map[string]string{AttrStartingNumber: "50", AttrEndingNumber: "50"},
			want:  Config{RangeStart: 50, RangeEnd: 51, Duration: 5},
		},
		{
			name:  "end below start",
			attrs: map[string]string{AttrStartingNumber: "50", AttrEndingNumber: "7"},
			want:  Config{RangeStart: 50, RangeEnd: 51, Duration: 5},
		},
		{
			name:  "malformed start",
			attrs: map[string]string{AttrStartingNumber: "abc"},
			want:  Config{RangeStart: 1, RangeEnd: 100, Duration: 5},
		},
		{
			name:  "start out of range",
			attrs: map[string]string{AttrStartingNumber: "1000000"},
			want:  Config{RangeStart: 1, RangeEnd: 100, Duration: 5},
		},
		{
			name:  "malformed end",
			attrs: map[string]string{AttrStartingNumber: "5", AttrEndingNumber: "x"},
			want:  Config{RangeStart: 5, RangeEnd: 6, Duration: 5},
		},
		{
			name:  "end out of range",
			attrs: map[string]string{AttrEndingNumber: "-1000000"},
			want:  Config{RangeStart: 1, RangeEnd: 2, Duration: 5},
		},
		{
			name:  "negative range",
			attrs: map[string]string{AttrStartingNumber: "-999999", AttrEndingNumber: "-999990"},
			want:  Config{RangeStart: -999999, RangeEnd: -999990, Duration: 5},
		},
		{
			name:  "duration too long",
			attrs: map[string]string{AttrRaffleDuration: "61"},
			want:  Config{RangeStart: 1, RangeEnd: 100, Duration: 5},
		},
		{
			name:  "duration zero",
			attrs: map[string]string{AttrRaffleDuration: "0"},
			want:  Config{RangeStart: 1, RangeEnd: 100, Duration: 5},
		},
		{
			name:  "duration bounds",
			attrs: map[string]string{AttrRaffleDuration: " 60 "},
			want:  Config{RangeStart: 1, RangeEnd: 100, Duration: 60},
		},
		{
			name:  "fullscreen only when true",
			attrs: map[string]string{AttrFullscreen: "yes"},
			want:  Config{RangeStart: 1, RangeEnd: 100, Duration: 5},
		},
		{
			name:  "unknown animation",
			attrs: map[string]string{AttrAnimationType: "unknown"},
			want:  Config{RangeStart: 1, RangeEnd: 100, Duration: 5, Kind: KindFirework},
		},
		{
			name:  "locale",
			attrs: map[string]string{AttrLocale: "de-DE"},
			want:  Config{RangeStart: 1, RangeEnd: 100, Duration: 5, Locale: "de-DE"},
		},
		{
			name:  "bad locale dropped",
			attrs: map[string]string{AttrLocale: "not a tag!"},
			want:  Config{RangeStart: 1, RangeEnd: 100, Duration: 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAttributes(tt.attrs); got != tt.want {
				t.Errorf("ParseAttributes = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"fireworks", KindFirework, true},
		{"confetti", KindConfetti, true},
		{"stars", KindStar, true},
		{"balloons", KindBalloon, true},
		{"Confetti", KindFirework, false},
		{"", KindFirework, false},
		{"unknown", KindFirework, false},
	}
	for _, tt := range tests {
		got, ok := LookupKind(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("LookupKind(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
		if ParseKind(tt.in) != tt.want {
			t.Errorf("ParseKind(%q) = %v", tt.in, ParseKind(tt.in))
		}
	}
}

func TestNormalize(t *testing.T) {
	c := Config{RangeStart: 999999, RangeEnd: 3, Duration: 100, Kind: Kind(9)}.Normalize()
	if c.RangeEnd != 1000000 {
		t.Errorf("RangeEnd = %d, want start+1", c.RangeEnd)
	}
	if c.Duration != DefaultDuration {
		t.Errorf("Duration = %d", c.Duration)
	}
	if c.Kind != KindFirework {
		t.Errorf("Kind = %v", c.Kind)
	}
}

func TestRollTicks(t *testing.T) {
	for _, tt := range []struct{ duration, want int }{{1, 10}, {2, 20}, {5, 50}, {60, 600}} {
		if got := (Config{Duration: tt.duration}).RollTicks(); got != tt.want {
			t.Errorf("RollTicks(%ds) = %d, want %d", tt.duration, got, tt.want)
		}
	}
}

func TestParseConfigYAML(t *testing.T) {
	data := []byte(`
starting_number: -5
ending_number: 5
raffle_duration: 2
fullscreen: true
animation_type: stars
locale: fr
unknown_key: ignored
`)
	got, err := ParseConfigYAML(data)
	if err != nil {
		t.Fatalf("ParseConfigYAML: %v", err)
	}
	want := Config{RangeStart: -5, RangeEnd: 5, Duration: 2, Fullscreen: true, Kind: KindStar, Locale: "fr"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestParseConfigYAMLClamps(t *testing.T) {
	got, err := ParseConfigYAML([]byte("raffle_duration: 500\nanimation_type: lasers\n"))
	if err != nil {
		t.Fatalf("ParseConfigYAML: %v", err)
	}
	if got.Duration != DefaultDuration || got.Kind != KindFirework {
		t.Errorf("got %+v", got)
	}
}

func TestParseConfigYAMLInvalid(t *testing.T) {
	_, err := ParseConfigYAML([]byte("starting_number: [1, 2\n"))
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "raffle.yaml")
	if err := os.WriteFile(path, []byte("ending_number: 42\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if got.RangeStart != 1 || got.RangeEnd != 42 {
		t.Errorf("got %+v", got)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want wrapped fs.ErrNotExist", err)
	}
}
