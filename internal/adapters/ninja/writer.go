// Package ninja renders build plans as ninja build files.
package ninja

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/cuv/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildFileWriter = (*Writer)(nil)

// RequiredVersion is the minimum ninja version for the generated file.
const RequiredVersion = "1.10"

type ruleDef struct {
	name        string
	command     string
	description string
	depfile     bool
}

// rules lists every rule a plan may use, in the order they are emitted.
var rules = []ruleDef{
	{
		name:        domain.RulePrecompileModule,
		command:     "$cxx $cxxflags --precompile $in -o $out",
		description: "PCM $out",
	},
	{
		name:        domain.RuleCompileCPP,
		command:     "$cxx $cxxflags -MMD -MF $out.d -c $in -o $out",
		description: "CXX $out",
		depfile:     true,
	},
	{
		name:        domain.RuleLink,
		command:     "$cxx $in -o $out $ldflags",
		description: "LINK $out",
	},
	{
		name:        domain.RuleLinkShared,
		command:     "$cxx -shared $in -o $out $ldflags",
		description: "LINK $out",
	},
	{
		name:        domain.RuleArchive,
		command:     "rm -f $out && $ar rcs $out $in",
		description: "AR $out",
	},
}

// Writer implements ports.BuildFileWriter.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write renders plan and replaces the file at path.
func (w *Writer) Write(path string, plan *domain.BuildPlan) error {
	var buf bytes.Buffer
	if err := Render(&buf, plan); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrBuildFileWriteFailed, err.Error()), "path", path)
	}
	//nolint:gosec // Path is derived from the build directory
	if err := os.WriteFile(path, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrBuildFileWriteFailed, err.Error()), "path", path)
	}
	return nil
}

// Render writes plan in ninja syntax. Only rules referenced by a statement are defined.
func Render(out io.Writer, plan *domain.BuildPlan) error {
	used := make(map[string]bool)
	for _, st := range plan.Statements {
		if !slices.ContainsFunc(rules, func(r ruleDef) bool { return r.name == st.Rule }) {
			return zerr.With(zerr.Wrap(domain.ErrBuildFileWriteFailed, "unknown rule"), "rule", st.Rule)
		}
		used[st.Rule] = true
	}

	w := bufio.NewWriter(out)
	w.WriteString("ninja_required_version = " + RequiredVersion + "\n")

	if len(plan.Variables) > 0 {
		w.WriteString("\n")
		for _, v := range plan.Variables {
			w.WriteString(v.Name + " = " + v.Value + "\n")
		}
	}

	for _, r := range rules {
		if !used[r.name] {
			continue
		}
		w.WriteString("\nrule " + r.name + "\n")
		w.WriteString("  command = " + r.command + "\n")
		w.WriteString("  description = " + r.description + "\n")
		if r.depfile {
			w.WriteString("  depfile = $out.d\n")
			w.WriteString("  deps = gcc\n")
		}
	}

	if len(plan.Statements) > 0 {
		w.WriteString("\n")
	}
	for _, st := range plan.Statements {
		w.WriteString("build " + joinPaths(st.Outputs) + ": " + st.Rule)
		if len(st.Inputs) > 0 {
			w.WriteString(" " + joinPaths(st.Inputs))
		}
		if len(st.OrderOnly) > 0 {
			w.WriteString(" || " + joinPaths(st.OrderOnly))
		}
		w.WriteString("\n")
	}

	if len(plan.Defaults) > 0 {
		w.WriteString("\ndefault " + joinPaths(plan.Defaults) + "\n")
	}

	if err := w.Flush(); err != nil {
		return zerr.Wrap(domain.ErrBuildFileWriteFailed, err.Error())
	}
	return nil
}

var pathEscaper = strings.NewReplacer("$", "$$", " ", "$ ", ":", "$:", "\n", "$\n")

// EscapePath escapes a path for use in a build statement.
func EscapePath(p string) string {
	return pathEscaper.Replace(p)
}

func joinPaths(paths []string) string {
	escaped := make([]string, len(paths))
	for i, p := range paths {
		escaped[i] = EscapePath(p)
	}
	return strings.Join(escaped, " ")
}
