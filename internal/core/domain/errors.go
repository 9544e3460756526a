package domain

import "go.trai.ch/zerr"

var (
	// ErrCycleDetected is returned when the resolved dependency graph contains a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrUnresolvedModule is returned when a required module has no provider and is not external.
	ErrUnresolvedModule = zerr.New("unresolved module")

	// ErrDuplicateProvider is returned when two rules provide the same module.
	ErrDuplicateProvider = zerr.New("module provided by more than one rule")

	// ErrMissingPrimaryOutput is returned when a scan rule has no primary output.
	ErrMissingPrimaryOutput = zerr.New("rule has no primary output")

	// ErrDuplicateRuleOutput is returned when two scan rules share a primary output.
	ErrDuplicateRuleOutput = zerr.New("duplicate rule output")
)

var (
	// ErrConfigNotFound is returned when no cproject.toml is found walking up from the working directory.
	ErrConfigNotFound = zerr.New("could not find " + ProjectFileName)

	// ErrConfigReadFailed is returned when the project file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read project file")

	// ErrConfigParseFailed is returned when the project file is not valid TOML.
	ErrConfigParseFailed = zerr.New("failed to parse project file")

	// ErrInvalidProjectName is returned when the project name contains unsupported characters.
	ErrInvalidProjectName = zerr.New("invalid project name")

	// ErrInvalidTarget is returned when a target declares no sources.
	ErrInvalidTarget = zerr.New("invalid target")

	// ErrUnknownTargetType is returned when a target type is not supported.
	ErrUnknownTargetType = zerr.New("unknown target type")

	// ErrSourceNotFound is returned when a source pattern matches no file.
	ErrSourceNotFound = zerr.New("no source files match pattern")

	// ErrInvalidSourcePattern is returned when a source pattern is not a valid glob.
	ErrInvalidSourcePattern = zerr.New("invalid source pattern")
)

var (
	// ErrScanReadFailed is returned when a scan document cannot be read.
	ErrScanReadFailed = zerr.New("failed to read scan document")

	// ErrScanParseFailed is returned when a scan document is not valid P1689 JSON.
	ErrScanParseFailed = zerr.New("failed to parse scan document")

	// ErrScannerFailed is returned when the dependency scanner exits with an error.
	ErrScannerFailed = zerr.New("dependency scanner failed")

	// ErrCommandFailed is returned when an external command fails.
	ErrCommandFailed = zerr.New("command failed")
)

var (
	// ErrStoreReadFailed is returned when reading from the plan store fails.
	ErrStoreReadFailed = zerr.New("failed to read plan store")

	// ErrStoreWriteFailed is returned when writing to the plan store fails.
	ErrStoreWriteFailed = zerr.New("failed to write plan store")

	// ErrStoreUnmarshalFailed is returned when a stored plan is corrupt.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal stored plan")

	// ErrStoreMarshalFailed is returned when a plan cannot be serialized.
	ErrStoreMarshalFailed = zerr.New("failed to marshal plan")

	// ErrStoreCreateFailed is returned when the plan store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create plan store")
)

var (
	// ErrBuildFileWriteFailed is returned when build.ninja cannot be written.
	ErrBuildFileWriteFailed = zerr.New("failed to write build file")

	// ErrCompileDBWriteFailed is returned when compile_commands.json cannot be written.
	ErrCompileDBWriteFailed = zerr.New("failed to write compile database")

	// ErrUnknownTaskOutput is returned when a resolved task has no compile command producing it.
	ErrUnknownTaskOutput = zerr.New("no compile command produces task output")

	// ErrUnsupportedOutputFormat is returned for an unknown --format value.
	ErrUnsupportedOutputFormat = zerr.New("unsupported output format")
)
