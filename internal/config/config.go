// Package config loads the evaluator's optional interpreter-options file,
// grounded on the teacher's gopkg.in/yaml.v3-based package.yml parsing
// (pkg/driver/manifest.go), repurposed here from a build manifest to a
// small set of evaluator-level knobs.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Options controls ambient evaluator behavior that has no natural home in
// the AST itself.
type Options struct {
	// Silent suppresses print output, matching the source's "silence
	// flag" (spec §5); console.silent toggles it at run time.
	Silent bool `yaml:"silent"`
	// MaxRangeSize caps how large an `a..b` range literal may realize to
	// before the evaluator raises RangeError instead of allocating (spec
	// §9, "very large ranges allocate eagerly").
	MaxRangeSize int `yaml:"max_range_size"`
}

// Default returns the zero-config evaluator behavior: not silent, no
// range size cap (0 means unlimited).
func Default() Options {
	return Options{Silent: false, MaxRangeSize: 0}
}

// Load reads path (typically "kiwiscript.yml") and overlays its fields on
// top of Default(). A missing file is not an error — it yields the
// default options, mirroring the teacher's manifest-optional CLI flow
// (cmd/able/main.go falls back to direct file execution when no manifest
// is present).
func Load(path string) (Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, err
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, err
	}
	return opts, nil
}
