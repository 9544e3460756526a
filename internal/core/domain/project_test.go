package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cuv/internal/core/domain"
)

func TestNormalizeBuildType(t *testing.T) {
	assert.Equal(t, domain.BuildTypeDebug, domain.NormalizeBuildType("debug"))
	assert.Equal(t, domain.BuildTypeDebug, domain.NormalizeBuildType("Debug"))
	assert.Equal(t, domain.BuildTypeRelease, domain.NormalizeBuildType("Release"))
	assert.Equal(t, domain.BuildTypeRelease, domain.NormalizeBuildType(""))
}

func TestTargetKind(t *testing.T) {
	tests := []struct {
		kind     domain.TargetKind
		valid    bool
		artifact string
	}{
		{domain.TargetExecutable, true, "hello"},
		{domain.TargetLibrary, true, "libhello.so"},
		{domain.TargetStaticLibrary, true, "libhello.a"},
		{domain.TargetKind("plugin"), false, "hello"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.kind.Valid())
			assert.Equal(t, tt.artifact, tt.kind.ArtifactName("hello"))
		})
	}
}

func TestClassifySource(t *testing.T) {
	assert.Equal(t, domain.SourceModuleInterface, domain.ClassifySource("src/M.cppm"))
	assert.Equal(t, domain.SourceModuleInterface, domain.ClassifySource("src/M.IXX"))
	assert.Equal(t, domain.SourceImplementation, domain.ClassifySource("main.cpp"))
	assert.Equal(t, domain.SourceImplementation, domain.ClassifySource("a.cc"))
	assert.Equal(t, domain.SourceImplementation, domain.ClassifySource("a.cxx"))
	assert.Equal(t, domain.SourceUnknown, domain.ClassifySource("include/a.h"))
}

func TestBuildLayout(t *testing.T) {
	layout := domain.NewBuildLayout("/work/build")

	assert.Equal(t, filepath.Join("/work/build", "module_cache"), layout.ModuleCacheDir())
	assert.Equal(t, filepath.Join("/work/build", "objects"), layout.ObjectsDir())
	assert.Equal(t, filepath.Join("/work/build", "targets"), layout.TargetsDir())
	assert.Equal(t, filepath.Join("/work/build", ".cuv", "plans"), layout.PlansDir())
	assert.Equal(t, filepath.Join("/work/build", "compile_commands.json"), layout.CompileDBPath())
	assert.Equal(t, filepath.Join("/work/build", "deps.json"), layout.ScanPath())
	assert.Equal(t, filepath.Join("/work/build", "build.ninja"), layout.BuildFilePath())
}

func TestProject_ExternalModules(t *testing.T) {
	p := domain.Project{Modules: domain.ModuleSettings{External: []string{"fmt", "boost.json"}}}

	assert.Equal(t, []string{"boost.json", "fmt"}, p.ExternalModules().Names())
}
