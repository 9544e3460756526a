package domain

import "strings"

// BuildType selects the optimization profile of compile commands.
type BuildType string

const (
	// BuildTypeRelease compiles with optimizations.
	BuildTypeRelease BuildType = "Release"
	// BuildTypeDebug compiles without optimizations and with debug info.
	BuildTypeDebug BuildType = "Debug"
)

// NormalizeBuildType maps a configured build type to a known value, defaulting to Release.
func NormalizeBuildType(s string) BuildType {
	if strings.EqualFold(s, string(BuildTypeDebug)) {
		return BuildTypeDebug
	}
	return BuildTypeRelease
}

// TargetKind is the artifact a target produces.
type TargetKind string

const (
	// TargetExecutable links an executable.
	TargetExecutable TargetKind = "executable"
	// TargetLibrary links a shared library.
	TargetLibrary TargetKind = "library"
	// TargetStaticLibrary archives a static library.
	TargetStaticLibrary TargetKind = "static_library"
)

// Valid reports whether k is a supported target kind.
func (k TargetKind) Valid() bool {
	switch k {
	case TargetExecutable, TargetLibrary, TargetStaticLibrary:
		return true
	default:
		return false
	}
}

// ArtifactName returns the file name of the artifact produced for target name.
func (k TargetKind) ArtifactName(name string) string {
	switch k {
	case TargetLibrary:
		return "lib" + name + ".so"
	case TargetStaticLibrary:
		return "lib" + name + ".a"
	default:
		return name
	}
}

// Toolchain names the programs used to build and scan the project.
type Toolchain struct {
	CC      string
	CXX     string
	AR      string
	Scanner string
}

// Default toolchain programs.
const (
	DefaultCC      = "clang"
	DefaultCXX     = "clang++"
	DefaultAR      = "ar"
	DefaultScanner = "clang-scan-deps"
)

// DefaultCXXStandard is used when the project does not declare one.
const DefaultCXXStandard = "20"

// Target is a named artifact built from a set of source patterns.
type Target struct {
	Name string
	Kind TargetKind
	// Sources are glob patterns relative to the project root.
	Sources []string
}

// ModuleSettings controls how logical modules are resolved.
type ModuleSettings struct {
	// External lists modules provided outside the project in addition to the defaults.
	External []string
	// AllowUnresolved drops required modules that nothing provides instead of failing.
	AllowUnresolved bool
}

// Project is the loaded and validated cproject.toml.
type Project struct {
	Name        string
	Version     string
	Root        string
	BuildType   BuildType
	CXXStandard string
	Toolchain   Toolchain
	// Targets are sorted by name.
	Targets []Target
	Modules ModuleSettings
}

// ExternalModules returns the project's declared external modules.
func (p *Project) ExternalModules() ExternalModuleSet {
	return NewExternalModuleSet(p.Modules.External...)
}
