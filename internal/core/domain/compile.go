package domain

import (
	"path/filepath"
	"strings"
)

// SourceKind classifies a translation unit by extension.
type SourceKind int

const (
	// SourceUnknown is a file the planner does not compile.
	SourceUnknown SourceKind = iota
	// SourceModuleInterface is a module interface unit (.cppm, .ixx).
	SourceModuleInterface
	// SourceImplementation is an ordinary translation unit (.cpp, .cc, .cxx).
	SourceImplementation
)

// ClassifySource returns the kind of the source file at path.
func ClassifySource(path string) SourceKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cppm", ".ixx":
		return SourceModuleInterface
	case ".cpp", ".cc", ".cxx":
		return SourceImplementation
	default:
		return SourceUnknown
	}
}

// CompileCommand is one entry of compile_commands.json.
type CompileCommand struct {
	Directory string   `json:"directory"`
	File      string   `json:"file"`
	Arguments []string `json:"arguments"`
	Output    string   `json:"output"`
}

// SourceKind returns the kind of the command's input file.
func (c CompileCommand) SourceKind() SourceKind {
	return ClassifySource(c.File)
}

// BuildStatement is one edge of the generated build file.
type BuildStatement struct {
	Outputs   []string
	Rule      string
	Inputs    []string
	OrderOnly []string
}

// BuildVariable is a top-level variable of the generated build file.
type BuildVariable struct {
	Name  string
	Value string
}

// BuildPlan is the fully ordered content of the generated build file.
type BuildPlan struct {
	Variables  []BuildVariable
	Statements []BuildStatement
	Defaults   []string
}

// Names of the rules a BuildPlan may reference.
const (
	RulePrecompileModule = "precompile_module"
	RuleCompileCPP       = "compile_cpp"
	RuleLink             = "link"
	RuleLinkShared       = "link_shared"
	RuleArchive          = "archive"
)
