package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ElementKind identifies a decorative background element.
// The set is closed; themes select their vocabularies from it.
type ElementKind int

const (
	KindDistantPeak ElementKind = iota
	KindRollingHill
	KindFoothill
	KindCliff
	KindPineTree
	KindBoulder
	KindSmallRock
	KindGroundDetailRock
	KindSkyscraper
	KindTower
	KindBuilding
	KindAntenna
	KindLamppost
	KindFence
	KindHorizon
	KindIsland
	KindWave
	KindCloudReflection
	KindSeashell
	KindDuneGrass

	kindCount // sentinel, keep last
)

var kindNames = [kindCount]string{
	KindDistantPeak:      "distant-peak",
	KindRollingHill:      "rolling-hill",
	KindFoothill:         "foothill",
	KindCliff:            "cliff",
	KindPineTree:         "pine-tree",
	KindBoulder:          "boulder",
	KindSmallRock:        "small-rock",
	KindGroundDetailRock: "ground-detail-rock",
	KindSkyscraper:       "skyscraper",
	KindTower:            "tower",
	KindBuilding:         "building",
	KindAntenna:          "antenna",
	KindLamppost:         "lamppost",
	KindFence:            "fence",
	KindHorizon:          "horizon",
	KindIsland:           "island",
	KindWave:             "wave",
	KindCloudReflection:  "cloud-reflection",
	KindSeashell:         "seashell",
	KindDuneGrass:        "dune-grass",
}

// AllKinds returns every element kind in declaration order.
func AllKinds() []ElementKind {
	kinds := make([]ElementKind, kindCount)
	for i := range kinds {
		kinds[i] = ElementKind(i)
	}
	return kinds
}

// String returns the YAML name of the kind.
func (k ElementKind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("ElementKind(%d)", int(k))
	}
	return kindNames[k]
}

// IsMountain reports whether the kind is drawn with the element's mountain color.
func (k ElementKind) IsMountain() bool {
	switch k {
	case KindDistantPeak, KindRollingHill, KindFoothill, KindCliff:
		return true
	}
	return false
}

// ParseElementKind converts a YAML name into an ElementKind.
func ParseElementKind(s string) (ElementKind, error) {
	for i, name := range kindNames {
		if name == s {
			return ElementKind(i), nil
		}
	}
	return 0, fmt.Errorf("config: unknown element kind %q", s)
}

// UnmarshalYAML decodes a kind from its name.
func (k *ElementKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseElementKind(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = parsed
	return nil
}

// MarshalYAML encodes a kind as its name.
func (k ElementKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// ObstacleStyle selects how a theme's obstacles are drawn.
// Segment geometry is identical for every style.
type ObstacleStyle int

const (
	StyleRockStack ObstacleStyle = iota
	StyleBuilding
	StylePalmTree
)

var styleNames = map[ObstacleStyle]string{
	StyleRockStack: "rock-stack",
	StyleBuilding:  "building",
	StylePalmTree:  "palm-tree",
}

// String returns the YAML name of the style.
func (s ObstacleStyle) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ObstacleStyle(%d)", int(s))
}

// UnmarshalYAML decodes a style from its name.
func (s *ObstacleStyle) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	for style, n := range styleNames {
		if n == name {
			*s = style
			return nil
		}
	}
	return fmt.Errorf("line %d: config: unknown obstacle style %q", value.Line, name)
}

// MarshalYAML encodes a style as its name.
func (s ObstacleStyle) MarshalYAML() (any, error) {
	return s.String(), nil
}
