package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PipeSpawnerSpec configures pipe pair spawning, scrolling and cleanup.
type PipeSpawnerSpec struct {
	IntervalSeconds float64 `yaml:"interval_seconds"`
	SpawnX          float64 `yaml:"spawn_x"`
	OffsetMin       int32   `yaml:"offset_min"`
	OffsetMax       int32   `yaml:"offset_max"`
	BarOffset       float64 `yaml:"bar_offset"`
	Speed           float64 `yaml:"speed"`
	DespawnX        float64 `yaml:"despawn_x"`
	AnchorPrefab    string  `yaml:"anchor_prefab"`
	BarPrefab       string  `yaml:"bar_prefab"`
}

func LoadPipeSpawnerSpec() (*PipeSpawnerSpec, error) {
	spec, err := LoadSpec[PipeSpawnerSpec]("pipe_spawner.yaml")
	if err != nil {
		return nil, err
	}
	if spec.IntervalSeconds <= 0 {
		return nil, fmt.Errorf("prefabs: pipe_spawner.yaml: interval_seconds must be positive, got %v", spec.IntervalSeconds)
	}
	if spec.OffsetMin > spec.OffsetMax {
		return nil, fmt.Errorf("prefabs: pipe_spawner.yaml: offset_min %d > offset_max %d", spec.OffsetMin, spec.OffsetMax)
	}
	if spec.AnchorPrefab == "" || spec.BarPrefab == "" {
		return nil, fmt.Errorf("prefabs: pipe_spawner.yaml: anchor_prefab and bar_prefab are required")
	}
	return &spec, nil
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// MarshalYAML writes the color back as "#rrggbbaa" so decoded specs survive a
// DecodeComponentSpec round trip.
func (c YAMLColor) MarshalYAML() (any, error) {
	if c.Color == nil {
		return nil, nil
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A), nil
}
