package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type PlayerComponentSpec struct {
	Name        string  `yaml:"name"`
	Health      float64 `yaml:"health"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type ShapeComponentSpec struct {
	Kind   string     `yaml:"kind"`
	Radius float64    `yaml:"radius"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type CameraComponentSpec struct {
	ClearColor *YAMLColor `yaml:"clear_color"`
	Zoom       float64    `yaml:"zoom"`
}

type PhysicsBodyComponentSpec struct {
	Type       string  `yaml:"type"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Radius     float64 `yaml:"radius"`
	Density    float64 `yaml:"density"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
	CCD        bool    `yaml:"ccd"`
	CanSleep   *bool   `yaml:"can_sleep"`
}

type VelocityComponentSpec struct {
	LinearX float64 `yaml:"linear_x"`
	LinearY float64 `yaml:"linear_y"`
	Angular float64 `yaml:"angular"`
}

type GravityScaleComponentSpec struct {
	Scale float64 `yaml:"scale"`
}

type ExternalImpulseComponentSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Torque float64 `yaml:"torque"`
}

type PipeBarComponentSpec struct {
	Side string `yaml:"side"`
}
