// Package config provides the cproject.toml loader for cuv.
package config

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/cuv/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectLoader = (*Loader)(nil)

var validProjectNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// Loader implements ports.ProjectLoader by decoding cproject.toml.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a new Loader reading from fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load finds the nearest cproject.toml at or above cwd and returns the validated project.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var file ProjectFile
	if err := l.readAndUnmarshalTOML(configPath, &file); err != nil {
		return nil, err
	}

	project, err := l.buildProject(&file, filepath.Dir(configPath))
	if err != nil {
		return nil, zerr.With(err, "config_path", configPath)
	}
	return project, nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := filepath.Clean(cwd)
	for {
		candidate := filepath.Join(currentDir, domain.ProjectFileName)
		if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "no project file in any parent directory"), "cwd", cwd)
}

func (l *Loader) readAndUnmarshalTOML(configPath string, target *ProjectFile) error {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "config_path", configPath)
	}

	if err := toml.Unmarshal(data, target); err != nil {
		parseErr := zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "config_path", configPath)
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			parseErr = zerr.With(parseErr, "line", row)
			parseErr = zerr.With(parseErr, "column", col)
		}
		return parseErr
	}
	return nil
}

func (l *Loader) buildProject(file *ProjectFile, root string) (*domain.Project, error) {
	if err := validateProjectName(file.Project.Name); err != nil {
		return nil, err
	}

	standard, err := normalizeStandard(file.BuildSystem.Compiler.CXXStandard)
	if err != nil {
		return nil, err
	}

	buildType := file.BuildSystem.Settings.BuildType
	if buildType != "" &&
		!strings.EqualFold(buildType, string(domain.BuildTypeRelease)) &&
		!strings.EqualFold(buildType, string(domain.BuildTypeDebug)) {
		l.Logger.Warn(fmt.Sprintf("unknown build_type %q, using %s", buildType, domain.BuildTypeRelease))
	}

	targets, err := buildTargets(file.BuildSystem.Targets)
	if err != nil {
		return nil, err
	}

	return &domain.Project{
		Name:        file.Project.Name,
		Version:     file.Project.Version,
		Root:        root,
		BuildType:   domain.NormalizeBuildType(buildType),
		CXXStandard: standard,
		Toolchain:   resolveToolchain(file.BuildSystem.Toolchain),
		Targets:     targets,
		Modules: domain.ModuleSettings{
			External:        canonicalizeStrings(file.BuildSystem.Modules.External),
			AllowUnresolved: file.BuildSystem.Modules.AllowUnresolved,
		},
	}, nil
}

func validateProjectName(name string) error {
	if !validProjectNameRegex.MatchString(name) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidProjectName, "project name must match "+validProjectNameRegex.String()),
			"project_name", name)
	}
	return nil
}

// normalizeStandard accepts cxx_standard as a string or an integer.
func normalizeStandard(raw any) (string, error) {
	switch v := raw.(type) {
	case nil:
		return domain.DefaultCXXStandard, nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return domain.DefaultCXXStandard, nil
		}
		return v, nil
	default:
		return "", zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "cxx_standard must be a string or an integer"),
			"cxx_standard", fmt.Sprint(raw))
	}
}

func buildTargets(dtos map[string]TargetDTO) ([]domain.Target, error) {
	names := slices.Sorted(maps.Keys(dtos))

	targets := make([]domain.Target, 0, len(names))
	for _, name := range names {
		dto := dtos[name]

		kind := domain.TargetKind(dto.Type)
		if dto.Type == "" {
			kind = domain.TargetExecutable
		}
		if !kind.Valid() {
			err := zerr.Wrap(domain.ErrUnknownTargetType, "target type must be executable, library or static_library")
			err = zerr.With(err, "target", name)
			return nil, zerr.With(err, "type", dto.Type)
		}

		if len(dto.Sources) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTarget, "target declares no sources"), "target", name)
		}

		targets = append(targets, domain.Target{
			Name:    name,
			Kind:    kind,
			Sources: slices.Clone(dto.Sources),
		})
	}
	return targets, nil
}

func resolveToolchain(dto ToolchainDTO) domain.Toolchain {
	return domain.Toolchain{
		CC:      valueOr(dto.CC, domain.DefaultCC),
		CXX:     valueOr(dto.CXX, domain.DefaultCXX),
		AR:      valueOr(dto.AR, domain.DefaultAR),
		Scanner: valueOr(dto.Scanner, domain.DefaultScanner),
	}
}

func valueOr(s, fallback string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return fallback
}

// canonicalizeStrings sorts, deduplicates and drops empty entries.
func canonicalizeStrings(strs []string) []string {
	if len(strs) == 0 {
		return nil
	}
	sorted := slices.DeleteFunc(slices.Clone(strs), func(s string) bool { return s == "" })
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
