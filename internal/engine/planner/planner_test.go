package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/cuv/internal/engine/planner"
	"go.trai.ch/zerr"
)

var layout = domain.NewBuildLayout("/work/build")

func project(targets ...domain.Target) *domain.Project {
	return &domain.Project{
		Name:        "hello",
		Root:        "/work",
		BuildType:   domain.BuildTypeRelease,
		CXXStandard: "20",
		Toolchain:   domain.Toolchain{CC: "clang", CXX: "clang++", AR: "ar", Scanner: "clang-scan-deps"},
		Targets:     targets,
	}
}

func helloTargets() []planner.TargetSources {
	return []planner.TargetSources{
		{
			Target:  domain.Target{Name: "hello", Kind: domain.TargetExecutable},
			Sources: []string{"/work/src/M.cppm", "/work/src/main.cpp", "/work/include/util.h"},
		},
		{
			Target:  domain.Target{Name: "greet", Kind: domain.TargetStaticLibrary},
			Sources: []string{"/work/src/M.cppm"},
		},
	}
}

func TestCompileFlags(t *testing.T) {
	p := project(domain.Target{Name: "hello", Kind: domain.TargetExecutable})
	assert.Equal(t,
		[]string{"-std=c++20", "-Wall", "-O2", "-fprebuilt-module-path=/work/build/module_cache"},
		planner.CompileFlags(p, layout),
	)

	p.BuildType = domain.BuildTypeDebug
	p.CXXStandard = "23"
	p.Targets = append(p.Targets, domain.Target{Name: "shared", Kind: domain.TargetLibrary})
	assert.Equal(t,
		[]string{"-std=c++23", "-Wall", "-O0", "-g", "-fPIC", "-fprebuilt-module-path=/work/build/module_cache"},
		planner.CompileFlags(p, layout),
	)
}

func TestOutputs(t *testing.T) {
	assert.Equal(t, "/work/build/module_cache/M.pcm", planner.PrimaryOutput(layout, "/work/src/M.cppm"))
	assert.Equal(t, "/work/build/module_cache/N.pcm", planner.PrimaryOutput(layout, "/work/src/N.ixx"))
	assert.Equal(t, "/work/build/objects/main.o", planner.PrimaryOutput(layout, "/work/src/main.cpp"))
	assert.Empty(t, planner.PrimaryOutput(layout, "/work/include/util.h"))

	assert.Equal(t, "/work/build/objects/M.pcm.o", planner.ObjectFile(layout, "/work/src/M.cppm"))
	assert.Equal(t, "/work/build/objects/main.o", planner.ObjectFile(layout, "/work/src/main.cpp"))
	assert.Empty(t, planner.ObjectFile(layout, "/work/include/util.h"))
}

func TestCompileCommands(t *testing.T) {
	cmds, err := planner.CompileCommands(project(), layout, helloTargets())
	require.NoError(t, err)

	require.Len(t, cmds, 2)
	assert.Equal(t, domain.CompileCommand{
		Directory: "/work",
		File:      "/work/src/M.cppm",
		Arguments: []string{
			"clang++", "-std=c++20", "-Wall", "-O2", "-fprebuilt-module-path=/work/build/module_cache",
			"--precompile", "/work/src/M.cppm", "-o", "/work/build/module_cache/M.pcm",
		},
		Output: "/work/build/module_cache/M.pcm",
	}, cmds[0])
	assert.Equal(t, "/work/build/objects/main.o", cmds[1].Output)
	assert.Contains(t, cmds[1].Arguments, "-c")
}

func TestCompileCommands_OutputCollision(t *testing.T) {
	targets := []planner.TargetSources{{
		Target:  domain.Target{Name: "hello", Kind: domain.TargetExecutable},
		Sources: []string{"/work/a/util.cpp", "/work/b/util.cpp"},
	}}

	_, err := planner.CompileCommands(project(), layout, targets)
	require.ErrorIs(t, err, domain.ErrDuplicateRuleOutput)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, []string{"/work/a/util.cpp", "/work/b/util.cpp"}, zErr.Metadata()["sources"])
}

func TestBuildPlan(t *testing.T) {
	p := project()
	targets := helloTargets()
	cmds, err := planner.CompileCommands(p, layout, targets)
	require.NoError(t, err)

	tasks := []domain.Task{
		{Name: domain.NewInternedString("/work/build/module_cache/M.pcm")},
		{
			Name:         domain.NewInternedString("/work/build/objects/main.o"),
			Dependencies: domain.NewInternedStrings([]string{"/work/build/module_cache/M.pcm"}),
		},
	}

	plan, err := planner.BuildPlan(p, layout, cmds, tasks, targets)
	require.NoError(t, err)

	assert.Equal(t, []domain.BuildVariable{
		{Name: "cxx", Value: "clang++"},
		{Name: "ar", Value: "ar"},
		{Name: "cxxflags", Value: "-std=c++20 -Wall -O2 -fprebuilt-module-path=/work/build/module_cache"},
		{Name: "ldflags", Value: ""},
	}, plan.Variables)

	assert.Equal(t, []domain.BuildStatement{
		{
			Outputs:   []string{"/work/build/module_cache/M.pcm"},
			Rule:      domain.RulePrecompileModule,
			Inputs:    []string{"/work/src/M.cppm"},
			OrderOnly: []string{},
		},
		{
			Outputs: []string{"/work/build/objects/M.pcm.o"},
			Rule:    domain.RuleCompileCPP,
			Inputs:  []string{"/work/build/module_cache/M.pcm"},
		},
		{
			Outputs:   []string{"/work/build/objects/main.o"},
			Rule:      domain.RuleCompileCPP,
			Inputs:    []string{"/work/src/main.cpp"},
			OrderOnly: []string{"/work/build/module_cache/M.pcm"},
		},
		{
			Outputs: []string{"/work/build/targets/hello"},
			Rule:    domain.RuleLink,
			Inputs:  []string{"/work/build/objects/M.pcm.o", "/work/build/objects/main.o"},
		},
		{
			Outputs: []string{"/work/build/targets/libgreet.a"},
			Rule:    domain.RuleArchive,
			Inputs:  []string{"/work/build/objects/M.pcm.o"},
		},
	}, plan.Statements)

	assert.Equal(t, []string{"/work/build/targets/hello", "/work/build/targets/libgreet.a"}, plan.Defaults)
}

func TestBuildPlan_SharedLibrary(t *testing.T) {
	targets := []planner.TargetSources{{
		Target:  domain.Target{Name: "greet", Kind: domain.TargetLibrary},
		Sources: []string{"/work/src/greet.cpp"},
	}}
	p := project(targets[0].Target)
	cmds, err := planner.CompileCommands(p, layout, targets)
	require.NoError(t, err)

	plan, err := planner.BuildPlan(p, layout, cmds, []domain.Task{{Name: domain.NewInternedString(cmds[0].Output)}}, targets)
	require.NoError(t, err)

	last := plan.Statements[len(plan.Statements)-1]
	assert.Equal(t, domain.RuleLinkShared, last.Rule)
	assert.Equal(t, []string{"/work/build/targets/libgreet.so"}, last.Outputs)
}

func TestBuildPlan_UnknownTaskOutput(t *testing.T) {
	p := project()
	tasks := []domain.Task{{Name: domain.NewInternedString("/elsewhere/x.o")}}

	_, err := planner.BuildPlan(p, layout, nil, tasks, nil)
	require.ErrorIs(t, err, domain.ErrUnknownTaskOutput)
}
