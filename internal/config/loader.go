package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProfilesFile is the file name searched for in the config directories.
const ProfilesFile = "balloon.yaml"

// SourceEmbedded is reported by Load when no file on disk was used.
const SourceEmbedded = "embedded"

// Load loads the profile tables.
// Search order: customPath -> ~/.arcade/configs/balloon.yaml -> ./configs/balloon.yaml -> embedded default.
// The returned source is the file path that was used, or SourceEmbedded.
func Load(customPath string) (Profiles, string, error) {
	// Try custom path first
	if customPath != "" {
		p, err := LoadFile(customPath)
		if err != nil {
			return Profiles{}, "", err
		}
		return p, customPath, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(ProfilesFile), filepath.Join("configs", ProfilesFile)} {
		if path == "" {
			continue
		}
		if p, err := LoadFile(path); err == nil {
			return p, path, nil
		}
	}

	// Use embedded default YAML
	p, err := Parse(defaultProfilesYAML)
	if err != nil {
		return DefaultProfiles(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return p, SourceEmbedded, nil
}

// LoadFile reads and parses a profiles file.
func LoadFile(path string) (Profiles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profiles{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return Profiles{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes profiles YAML over the built-in defaults.
// Profiles named in the document replace the built-in profile of the same name;
// others are kept.
func Parse(data []byte) (Profiles, error) {
	p := DefaultProfiles()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profiles{}, err
	}
	return p, nil
}

// ResolvePath returns the profiles file Load would read from disk, or "" when
// only the embedded defaults are available.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range []string{userConfigPath(ProfilesFile), filepath.Join("configs", ProfilesFile)} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
