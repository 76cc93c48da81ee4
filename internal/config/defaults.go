package config

import (
	_ "embed"
)

//go:embed defaults/balloon.yaml
var defaultProfilesYAML []byte

// Default selection used when no flag or stored preference is given.
const (
	DefaultDifficulty = "easy"
	DefaultTheme      = "mountain"
)

// DefaultProfiles returns the built-in difficulties and themes.
// It mirrors defaults/balloon.yaml and is used if the embedded file fails to parse.
func DefaultProfiles() Profiles {
	return Profiles{
		Difficulties: map[string]DifficultyProfile{
			"easy": {
				Name:              "easy",
				Gravity:           0.08,
				Lift:              -3.5,
				ObstacleSpeed:     1.8,
				ObstacleSpawnRate: 240,
				CloudSpeed:        0.5,
				BirdSpeed:         1.5,
			},
			"normal": {
				Name:              "normal",
				Gravity:           0.1,
				Lift:              -4,
				ObstacleSpeed:     2.2,
				ObstacleSpawnRate: 200,
				CloudSpeed:        0.7,
				BirdSpeed:         1.8,
			},
			"hard": {
				Name:              "hard",
				Gravity:           0.12,
				Lift:              -4.5,
				ObstacleSpeed:     2.6,
				ObstacleSpawnRate: 180,
				CloudSpeed:        0.9,
				BirdSpeed:         2.1,
			},
		},
		Themes: map[string]ThemeProfile{
			"mountain": {
				Name:           "Mountain",
				Sky:            "#87CEEB",
				Ground:         "#A0522D",
				GroundDetail:   "#8B4513",
				LayerColors:    []string{"#CD853F", "#A0522D", "#8B4513"},
				MountainColors: []string{"#8B4513", "#A0522D", "#CD853F", "#A9A9A9", "#808080", "#696969"},
				RockColors:     []string{"#A9A9A9", "#808080"},
				SnowCap:        "#FFFFFF",
				TreeColors:     []string{"#228B22", "#32CD32", "#006400"},
				ObstacleColors: []string{"#A9A9A9", "#808080", "#8B4513"},
				ObstacleStyle:  StyleRockStack,
				Distant:        []ElementKind{KindDistantPeak, KindRollingHill},
				Mid:            []ElementKind{KindFoothill, KindCliff, KindPineTree},
				Foreground:     []ElementKind{KindBoulder, KindPineTree, KindSmallRock, KindPineTree, KindBoulder, KindSmallRock},
			},
			"city": {
				Name:           "City",
				Sky:            "#4682B4",
				Ground:         "#808080",
				GroundDetail:   "#696969",
				LayerColors:    []string{"#2B4B6B", "#3B5B7B", "#4B6B8B"},
				MountainColors: []string{"#2B4B6B", "#3B5B7B", "#4B6B8B"},
				RockColors:     []string{"#696969", "#808080"},
				SnowCap:        "#FFD700",
				TreeColors:     []string{"#2E8B57"},
				ObstacleColors: []string{"#2F4F4F", "#1C2F2F", "#696969"},
				ObstacleStyle:  StyleBuilding,
				Distant:        []ElementKind{KindSkyscraper, KindTower},
				Mid:            []ElementKind{KindBuilding, KindAntenna},
				Foreground:     []ElementKind{KindLamppost, KindFence},
			},
			"beach": {
				Name:           "Beach",
				Sky:            "#87CEEB",
				Ground:         "#F4A460",
				GroundDetail:   "#DEB887",
				LayerColors:    []string{"#ADD8E6", "#87CEEB", "#E6C392"},
				MountainColors: []string{"#ADD8E6", "#87CEEB"},
				RockColors:     []string{"#DEB887", "#F5DEB3"},
				SnowCap:        "#FFFFFF",
				TreeColors:     []string{"#228B22", "#006400"},
				ObstacleColors: []string{"#8B4513", "#228B22", "#006400"},
				ObstacleStyle:  StylePalmTree,
				Distant:        []ElementKind{KindHorizon, KindIsland},
				Mid:            []ElementKind{KindWave, KindCloudReflection},
				Foreground:     []ElementKind{KindSeashell, KindDuneGrass},
			},
		},
	}
}

// DefaultYAML returns the embedded default profiles file.
func DefaultYAML() []byte {
	return defaultProfilesYAML
}
