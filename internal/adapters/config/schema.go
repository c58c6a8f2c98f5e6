package config

// settingsFile is the on-disk shape of the settings file. Every field is
// optional; absent fields keep their default.
type settingsFile struct {
	Animate              *bool `yaml:"animate" toml:"animate"`
	ShowConnectionStats  *bool `yaml:"showConnectionStats" toml:"showConnectionStats"`
	ShowDebugInformation *bool `yaml:"showDebugInformation" toml:"showDebugInformation"`
	ShowBaselines        *bool `yaml:"showBaselines" toml:"showBaselines"`
	ShowDummyData        *bool `yaml:"showDummyData" toml:"showDummyData"`

	SumTimings             *bool `yaml:"sumTimings" toml:"sumTimings"`
	FilterEmptyConnections *bool `yaml:"filterEmptyConnections" toml:"filterEmptyConnections"`

	ServiceIcons  []serviceIconDTO  `yaml:"serviceIcons" toml:"serviceIcons" validate:"omitempty,dive"`
	ExternalIcons []externalIconDTO `yaml:"externalIcons" toml:"externalIcons" validate:"omitempty,dive"`

	Style     *styleDTO     `yaml:"style" toml:"style"`
	Particles *particlesDTO `yaml:"particles" toml:"particles"`
}

type serviceIconDTO struct {
	Pattern  string `yaml:"pattern" toml:"pattern" validate:"required"`
	Filename string `yaml:"filename" toml:"filename" validate:"required,excludesall=/\\"`
}

type externalIconDTO struct {
	Name     string `yaml:"name" toml:"name" validate:"required"`
	Filename string `yaml:"filename" toml:"filename" validate:"required,excludesall=/\\"`
}

type styleDTO struct {
	HealthyColor string `yaml:"healthyColor" toml:"healthyColor"`
	DangerColor  string `yaml:"dangerColor" toml:"dangerColor"`
	UnknownColor string `yaml:"unknownColor" toml:"unknownColor"`
}

type particlesDTO struct {
	Cadence      string   `yaml:"cadence" toml:"cadence"`
	MaxSpawnRate *float64 `yaml:"maxSpawnRate" toml:"maxSpawnRate" validate:"omitempty,gt=0,lte=1000"`
	MinVelocity  *float64 `yaml:"minVelocity" toml:"minVelocity" validate:"omitempty,gt=0,lte=1"`
	MaxVelocity  *float64 `yaml:"maxVelocity" toml:"maxVelocity" validate:"omitempty,gt=0,lte=1"`
	MaxPerEdge   *int     `yaml:"maxPerEdge" toml:"maxPerEdge" validate:"omitempty,gte=0,lte=10000"`
}
