package config

// ProjectFile represents the structure of cproject.toml.
type ProjectFile struct {
	Project     ProjectDTO     `toml:"project"`
	BuildSystem BuildSystemDTO `toml:"build-system"`
}

// ProjectDTO is the [project] table.
type ProjectDTO struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// BuildSystemDTO is the [build-system] table.
type BuildSystemDTO struct {
	Settings  SettingsDTO          `toml:"settings"`
	Compiler  CompilerDTO          `toml:"compiler"`
	Toolchain ToolchainDTO         `toml:"toolchain"`
	Modules   ModulesDTO           `toml:"modules"`
	Targets   map[string]TargetDTO `toml:"targets"`
}

// SettingsDTO is the [build-system.settings] table.
type SettingsDTO struct {
	BuildType string `toml:"build_type"`
}

// CompilerDTO is the [build-system.compiler] table.
type CompilerDTO struct {
	// CXXStandard is either a string ("20") or an integer (20).
	CXXStandard any `toml:"cxx_standard"`
}

// ToolchainDTO is the [build-system.toolchain] table.
type ToolchainDTO struct {
	CC      string `toml:"C_COMPILER"`
	CXX     string `toml:"CXX_COMPILER"`
	AR      string `toml:"AR"`
	Scanner string `toml:"SCANNER"`
}

// ModulesDTO is the [build-system.modules] table.
type ModulesDTO struct {
	External        []string `toml:"external"`
	AllowUnresolved bool     `toml:"allow_unresolved"`
}

// TargetDTO is one [build-system.targets.<name>] table.
type TargetDTO struct {
	Type    string   `toml:"type"`
	Sources []string `toml:"sources"`
}
