package domain

import "path/filepath"

const (
	// ProjectFileName is the name of the project description file.
	ProjectFileName = "cproject.toml"

	// DefaultBuildDir is the build directory used when none is given, relative to the project root.
	DefaultBuildDir = "build"

	// ModuleCacheDirName holds precompiled module interfaces (.pcm).
	ModuleCacheDirName = "module_cache"
	// ObjectsDirName holds object files.
	ObjectsDirName = "objects"
	// TargetsDirName holds linked executables and libraries.
	TargetsDirName = "targets"
	// StateDirName holds internal state such as cached plans.
	StateDirName = ".cuv"
	// PlansDirName is the plan cache directory below StateDirName.
	PlansDirName = "plans"

	// CompileDBFileName is the compilation database file name.
	CompileDBFileName = "compile_commands.json"
	// ScanFileName is the merged P1689 dependency description.
	ScanFileName = "deps.json"
	// BuildFileName is the generated ninja file.
	BuildFileName = "build.ninja"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750
	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// BuildLayout resolves the well-known paths below a build directory.
type BuildLayout struct {
	Root string
}

// NewBuildLayout returns the layout rooted at dir.
func NewBuildLayout(dir string) BuildLayout {
	return BuildLayout{Root: dir}
}

// ModuleCacheDir returns the directory for precompiled module interfaces.
func (l BuildLayout) ModuleCacheDir() string { return filepath.Join(l.Root, ModuleCacheDirName) }

// ObjectsDir returns the directory for object files.
func (l BuildLayout) ObjectsDir() string { return filepath.Join(l.Root, ObjectsDirName) }

// TargetsDir returns the directory for linked artifacts.
func (l BuildLayout) TargetsDir() string { return filepath.Join(l.Root, TargetsDirName) }

// PlansDir returns the plan cache directory.
func (l BuildLayout) PlansDir() string { return filepath.Join(l.Root, StateDirName, PlansDirName) }

// CompileDBPath returns the path of compile_commands.json.
func (l BuildLayout) CompileDBPath() string { return filepath.Join(l.Root, CompileDBFileName) }

// ScanPath returns the path of the merged scan document.
func (l BuildLayout) ScanPath() string { return filepath.Join(l.Root, ScanFileName) }

// BuildFilePath returns the path of build.ninja.
func (l BuildLayout) BuildFilePath() string { return filepath.Join(l.Root, BuildFileName) }
