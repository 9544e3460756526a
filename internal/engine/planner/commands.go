// Package planner turns a project into compile commands and a resolved
// task order into a build plan.
package planner

import (
	"path/filepath"
	"strings"

	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/zerr"
)

// TargetSources pairs a target with its expanded source files.
type TargetSources struct {
	Target  domain.Target
	Sources []string
}

// CompileFlags returns the flags shared by every compile command of p.
func CompileFlags(p *domain.Project, layout domain.BuildLayout) []string {
	flags := []string{"-std=c++" + p.CXXStandard, "-Wall"}
	if p.BuildType == domain.BuildTypeDebug {
		flags = append(flags, "-O0", "-g")
	} else {
		flags = append(flags, "-O2")
	}
	if hasSharedLibrary(p) {
		flags = append(flags, "-fPIC")
	}
	return append(flags, "-fprebuilt-module-path="+layout.ModuleCacheDir())
}

func hasSharedLibrary(p *domain.Project) bool {
	for _, t := range p.Targets {
		if t.Kind == domain.TargetLibrary {
			return true
		}
	}
	return false
}

// PrimaryOutput returns the file the compile command for src produces, or ""
// for files that are not compiled.
func PrimaryOutput(layout domain.BuildLayout, src string) string {
	switch domain.ClassifySource(src) {
	case domain.SourceModuleInterface:
		return filepath.Join(layout.ModuleCacheDir(), stem(src)+".pcm")
	case domain.SourceImplementation:
		return filepath.Join(layout.ObjectsDir(), stem(src)+".o")
	default:
		return ""
	}
}

// ObjectFile returns the object linked into targets for src. Interface units
// compile their precompiled module into a separate object.
func ObjectFile(layout domain.BuildLayout, src string) string {
	switch domain.ClassifySource(src) {
	case domain.SourceModuleInterface:
		return filepath.Join(layout.ObjectsDir(), stem(src)+".pcm.o")
	case domain.SourceImplementation:
		return filepath.Join(layout.ObjectsDir(), stem(src)+".o")
	default:
		return ""
	}
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// CompileCommands builds one command per compilable source, in target order
// then source order. A source shared by several targets is compiled once;
// two different sources that map to the same output are rejected.
func CompileCommands(p *domain.Project, layout domain.BuildLayout, targets []TargetSources) ([]domain.CompileCommand, error) {
	flags := CompileFlags(p, layout)
	owner := make(map[string]string)

	var cmds []domain.CompileCommand
	for _, ts := range targets {
		for _, src := range ts.Sources {
			output := PrimaryOutput(layout, src)
			if output == "" {
				continue
			}
			if prev, ok := owner[output]; ok {
				if prev == src {
					continue
				}
				err := zerr.Wrap(domain.ErrDuplicateRuleOutput, "two sources compile to the same output")
				err = zerr.With(err, "output", output)
				return nil, zerr.With(err, "sources", []string{prev, src})
			}
			owner[output] = src
			cmds = append(cmds, compileCommand(p, flags, src, output))
		}
	}
	return cmds, nil
}

func compileCommand(p *domain.Project, flags []string, src, output string) domain.CompileCommand {
	args := make([]string, 0, len(flags)+5)
	args = append(args, p.Toolchain.CXX)
	args = append(args, flags...)
	if domain.ClassifySource(src) == domain.SourceModuleInterface {
		args = append(args, "--precompile")
	} else {
		args = append(args, "-c")
	}
	args = append(args, src, "-o", output)

	return domain.CompileCommand{
		Directory: p.Root,
		File:      src,
		Arguments: args,
		Output:    output,
	}
}
