// types.go
package config

// Raw config loaded from YAML; pointer fields stay nil when unset.
type RawConfig struct {
	Version   string           `yaml:"version"`
	Generator *GeneratorConfig `yaml:"generator,omitempty"`
	Die       DieConfig        `yaml:"die"`
	Demo      *DemoConfig      `yaml:"demo,omitempty"`
	Log       *LogConfig       `yaml:"log,omitempty"`
	Notes     string           `yaml:"notes,omitempty"`
}

type GeneratorConfig struct {
	Seed *float64 `yaml:"seed"`
	A    *float64 `yaml:"a"`
	C    *float64 `yaml:"c"`
	M    *float64 `yaml:"m"`
}
type DieConfig struct {
	Sides *int `yaml:"sides"`
}
type DemoConfig struct {
	Rolls  *int `yaml:"rolls"`  // rolls printed by the demo
	Trials *int `yaml:"trials"` // rolls used by stats
}
type LogConfig struct {
	Level string `yaml:"level"` // debug | info | warn | error
}

// Normalized params used by the demo, dice and cmd.
type Params struct {
	Seed     float64
	A        float64
	C        float64
	M        float64
	Sides    int
	Rolls    int
	Trials   int
	LogLevel string
	Version  string // effective config version for tracing
}
