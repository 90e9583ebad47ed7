package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	"golang.org/x/sync/errgroup"
	yaml "gopkg.in/yaml.v3"
)

// Script is a declarative recording of input streams.
type Script struct {
	Streams []Stream `json:"streams" yaml:"streams" toml:"streams"`
}

// Stream is the ordered input of one source, e.g. a pointer or a keyboard.
type Stream struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Steps []Step `json:"steps" yaml:"steps" toml:"steps"`
}

// Step describes one event. Only the fields meaningful for Type are read.
type Step struct {
	Type      string   `json:"type" yaml:"type" toml:"type"`
	Timestamp uint64   `json:"timestamp" yaml:"timestamp" toml:"timestamp"`
	Modifiers []string `json:"modifiers,omitempty" yaml:"modifiers,omitempty" toml:"modifiers,omitempty"`

	// mouse position and buttons
	X          float64  `json:"x,omitempty" yaml:"x,omitempty" toml:"x,omitempty"`
	Y          float64  `json:"y,omitempty" yaml:"y,omitempty" toml:"y,omitempty"`
	Buttons    []string `json:"buttons,omitempty" yaml:"buttons,omitempty" toml:"buttons,omitempty"`
	ClickCount uint32   `json:"clickCount,omitempty" yaml:"clickCount,omitempty" toml:"clickCount,omitempty"`

	// wheel
	DeltaX     float64  `json:"deltaX,omitempty" yaml:"deltaX,omitempty" toml:"deltaX,omitempty"`
	DeltaY     float64  `json:"deltaY,omitempty" yaml:"deltaY,omitempty" toml:"deltaY,omitempty"`
	WheelFlags []string `json:"wheelFlags,omitempty" yaml:"wheelFlags,omitempty" toml:"wheelFlags,omitempty"`

	// zoom gesture
	Phase string  `json:"phase,omitempty" yaml:"phase,omitempty" toml:"phase,omitempty"`
	Zoom  float64 `json:"zoom,omitempty" yaml:"zoom,omitempty" toml:"zoom,omitempty"`

	// keyboard; Char is a one-character string, Code a raw UTF-16 unit
	Char   string `json:"char,omitempty" yaml:"char,omitempty" toml:"char,omitempty"`
	Code   uint32 `json:"code,omitempty" yaml:"code,omitempty" toml:"code,omitempty"`
	Virt   string `json:"virt,omitempty" yaml:"virt,omitempty" toml:"virt,omitempty"`
	Repeat bool   `json:"repeat,omitempty" yaml:"repeat,omitempty" toml:"repeat,omitempty"`
}

// FormatOf returns the script format for a file name by extension.
func FormatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	default:
		return ""
	}
}

// Decode reads a script in format "json", "yaml" or "toml".
func Decode(r io.Reader, format string) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var s Script
	switch format {
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&s)
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&s)
		if err == io.EOF {
			err = nil
		}
	case "toml":
		err = toml.NewDecoder(bytes.NewReader(data)).Strict(true).Decode(&s)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s script: %w", format, err)
	}
	return &s, nil
}

// Load reads a script file, picking the decoder by extension.
func Load(path string) (*Script, error) {
	format := FormatOf(path)
	if format == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// LoadAll loads several script files concurrently. The result keeps the
// order of paths; the first error cancels the rest.
func LoadAll(ctx context.Context, paths ...string) ([]*Script, error) {
	scripts := make([]*Script, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := Load(p)
			if err != nil {
				return err
			}
			scripts[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scripts, nil
}

// Merge concatenates the streams of scripts in order.
func Merge(scripts ...*Script) *Script {
	out := &Script{}
	for _, s := range scripts {
		if s == nil {
			continue
		}
		out.Streams = append(out.Streams, s.Streams...)
	}
	return out
}
