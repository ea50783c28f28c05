package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"
)

// defaultIsortLineLength is isort's built-in line_length. A repository
// whose effective value is still the default (or anything below 80) is
// treated as not having configured isort at all.
const defaultIsortLineLength = 79

// MinIsortLineLength is the smallest acceptable configured line_length.
const MinIsortLineLength = 80

// IsortLineLength resolves the effective isort line_length for files in
// settingsDir, the way isort itself would: searching upward for the first
// configuration file carrying an isort section.
//
// Supported sources, in the order isort consults them within a directory:
//
//	.isort.cfg     [settings] (or [isort])
//	setup.cfg      [isort]
//	tox.ini        [isort]
//	pyproject.toml [tool.isort]
//
// Returns the built-in default when no configuration is found.
func IsortLineLength(settingsDir string) int {
	dir, err := filepath.Abs(settingsDir)
	if err != nil {
		return defaultIsortLineLength
	}

	for {
		if n, ok := isortLineLengthInDir(dir); ok {
			return n
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return defaultIsortLineLength
		}
		dir = parent
	}
}

// isortLineLengthInDir checks a single directory's candidate config files.
// The second return value reports whether an isort section was found; a
// found section without line_length yields the default.
func isortLineLengthInDir(dir string) (int, bool) {
	iniSources := []struct {
		file     string
		sections []string
	}{
		{".isort.cfg", []string{"settings", "isort"}},
		{"setup.cfg", []string{"isort"}},
		{"tox.ini", []string{"isort"}},
	}

	for _, src := range iniSources {
		path := filepath.Join(dir, src.file)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := ini.Load(path)
		if err != nil {
			continue
		}
		for _, name := range src.sections {
			section, err := cfg.GetSection(name)
			if err != nil {
				continue
			}
			n := section.Key("line_length").MustInt(defaultIsortLineLength)
			return n, true
		}
	}

	pyproject := filepath.Join(dir, "pyproject.toml")
	if _, err := os.Stat(pyproject); err == nil {
		var parsed struct {
			Tool struct {
				Isort struct {
					LineLength int `toml:"line_length"`
				} `toml:"isort"`
			} `toml:"tool"`
		}
		md, err := toml.DecodeFile(pyproject, &parsed)
		if err == nil && md.IsDefined("tool", "isort") {
			if parsed.Tool.Isort.LineLength == 0 {
				return defaultIsortLineLength, true
			}
			return parsed.Tool.Isort.LineLength, true
		}
	}

	return 0, false
}
