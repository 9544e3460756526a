// Package app implements the application layer for cuv.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/cuv/internal/core/ports"
	"go.trai.ch/cuv/internal/engine/planner"
	"go.trai.ch/cuv/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// Ports groups the adapters the App orchestrates.
type Ports struct {
	Loader    ports.ProjectLoader
	Sources   ports.SourceResolver
	Scanner   ports.DependencyScanner
	Scans     ports.ScanStore
	Hasher    ports.Hasher
	Plans     ports.PlanStore
	CompileDB ports.CompileDatabase
	BuildFile ports.BuildFileWriter
	Watcher   ports.Watcher
	Telemetry ports.Telemetry
	Logger    ports.Logger
}

// App represents the main application logic.
type App struct {
	deps     Ports
	resolver *resolver.Resolver
	now      func() time.Time
}

// New creates a new App instance.
func New(p Ports, r *resolver.Resolver) *App {
	return &App{
		deps:     p,
		resolver: r,
		now:      time.Now,
	}
}

// Options configures a single invocation.
type Options struct {
	// Cwd is where project discovery starts.
	Cwd string
	// BuildDir overrides the build directory. Relative paths are resolved against Cwd.
	BuildDir string
	// Externals are added to the project's external modules.
	Externals []string
	// AllowUnresolved drops unprovided modules even if the project does not.
	AllowUnresolved bool
	// NoCache bypasses the plan cache.
	NoCache bool
}

// PlanResult is an ordered task list with the key it is cached under.
type PlanResult struct {
	Key        string
	Tasks      []domain.Task
	Unresolved []domain.UnresolvedModule
	Cached     bool
}

// GenerateResult describes the files written by Generate.
type GenerateResult struct {
	Project  *domain.Project
	Layout   domain.BuildLayout
	Commands []domain.CompileCommand
	Plan     *PlanResult
}

// Plan resolves the scan document at scanPath. If scanPath is empty the
// document written by the last generate run is used.
func (a *App) Plan(ctx context.Context, scanPath string, opts Options) (*PlanResult, error) {
	project, err := a.deps.Loader.Load(opts.Cwd)
	if err != nil {
		if scanPath == "" || !errors.Is(err, domain.ErrConfigNotFound) {
			return nil, zerr.Wrap(err, "failed to load project")
		}
		project = nil
	}

	var layout domain.BuildLayout
	switch {
	case project != nil:
		layout = a.layout(project, opts)
	case opts.BuildDir != "":
		layout = domain.NewBuildLayout(absPath(opts.Cwd, opts.BuildDir))
	default:
		layout = domain.NewBuildLayout(filepath.Dir(absPath(opts.Cwd, scanPath)))
	}

	if scanPath == "" {
		scanPath = layout.ScanPath()
	} else {
		scanPath = absPath(opts.Cwd, scanPath)
	}

	doc, err := a.deps.Scans.Load(scanPath)
	if err != nil {
		return nil, err
	}

	externals, allow := effectiveModules(project, opts)
	return a.resolve(ctx, doc, externals, allow, opts.NoCache, layout.PlansDir())
}

// CompileDB writes compile_commands.json for the project and returns the commands.
func (a *App) CompileDB(ctx context.Context, opts Options) (*GenerateResult, error) {
	project, err := a.deps.Loader.Load(opts.Cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load project")
	}
	layout := a.layout(project, opts)

	_, cmds, err := a.compileCommands(ctx, project, layout)
	if err != nil {
		return nil, err
	}
	if err := a.deps.CompileDB.Write(layout.CompileDBPath(), cmds); err != nil {
		return nil, err
	}

	a.deps.Logger.Info(fmt.Sprintf("wrote %s (%d commands)", layout.CompileDBPath(), len(cmds)))
	return &GenerateResult{Project: project, Layout: layout, Commands: cmds}, nil
}

// Generate runs the whole pipeline: compile commands, dependency scan,
// resolution and build file.
func (a *App) Generate(ctx context.Context, opts Options) (*GenerateResult, error) {
	project, err := a.deps.Loader.Load(opts.Cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load project")
	}
	layout := a.layout(project, opts)

	targets, cmds, err := a.compileCommands(ctx, project, layout)
	if err != nil {
		return nil, err
	}
	if err := a.deps.CompileDB.Write(layout.CompileDBPath(), cmds); err != nil {
		return nil, err
	}

	doc, err := a.deps.Scanner.Scan(ctx, project.Toolchain.Scanner, cmds)
	if err != nil {
		return nil, err
	}
	if err := a.deps.Scans.Save(layout.ScanPath(), doc); err != nil {
		return nil, err
	}

	externals, allow := effectiveModules(project, opts)
	plan, err := a.resolve(ctx, doc, externals, allow, opts.NoCache, layout.PlansDir())
	if err != nil {
		return nil, err
	}

	buildPlan, err := planner.BuildPlan(project, layout, cmds, plan.Tasks, targets)
	if err != nil {
		return nil, err
	}
	if err := a.deps.BuildFile.Write(layout.BuildFilePath(), buildPlan); err != nil {
		return nil, err
	}

	a.deps.Logger.Info(fmt.Sprintf("wrote %s (%d tasks, %d targets)", layout.BuildFilePath(), len(plan.Tasks), len(targets)))
	return &GenerateResult{Project: project, Layout: layout, Commands: cmds, Plan: plan}, nil
}

func (a *App) compileCommands(
	ctx context.Context,
	project *domain.Project,
	layout domain.BuildLayout,
) ([]planner.TargetSources, []domain.CompileCommand, error) {
	_, vertex := a.deps.Telemetry.Record(ctx, "expand sources", ports.WithInternal())

	targets := make([]planner.TargetSources, 0, len(project.Targets))
	for _, target := range project.Targets {
		sources, err := a.deps.Sources.ResolveSources(target.Sources, project.Root)
		if err != nil {
			err = zerr.With(err, "target", target.Name)
			vertex.Complete(err)
			return nil, nil, err
		}
		targets = append(targets, planner.TargetSources{Target: target, Sources: sources})
	}

	cmds, err := planner.CompileCommands(project, layout, targets)
	vertex.Complete(err)
	if err != nil {
		return nil, nil, err
	}
	return targets, cmds, nil
}

// resolve returns the cached plan for doc if there is one and resolves it otherwise.
func (a *App) resolve(
	ctx context.Context,
	doc *domain.ScanDocument,
	externals domain.ExternalModuleSet,
	allowUnresolved bool,
	noCache bool,
	plansDir string,
) (*PlanResult, error) {
	key, err := a.deps.Hasher.ComputePlanKey(doc, externals, allowUnresolved)
	if err != nil {
		return nil, err
	}

	ctx, vertex := a.deps.Telemetry.Record(ctx, "resolve "+key)

	if !noCache {
		info, err := a.deps.Plans.Get(plansDir, key)
		if err != nil {
			a.deps.Logger.Warn(fmt.Sprintf("ignoring plan cache: %v", err))
		} else if info != nil {
			vertex.Cached()
			vertex.Complete(nil)
			a.warnUnresolved(info.Unresolved)
			return &PlanResult{Key: key, Tasks: info.Tasks, Unresolved: info.Unresolved, Cached: true}, nil
		}
	}

	res, err := a.resolver.Resolve(ctx, doc.Rules, externals, resolver.Options{AllowUnresolved: allowUnresolved})
	vertex.Complete(err)
	if err != nil {
		return nil, err
	}
	a.warnUnresolved(res.Unresolved)

	info := domain.PlanInfo{
		Key:        key,
		Tasks:      res.Tasks,
		Unresolved: res.Unresolved,
		CreatedAt:  a.now(),
	}
	if err := a.deps.Plans.Put(plansDir, info); err != nil {
		a.deps.Logger.Warn(fmt.Sprintf("failed to cache plan: %v", err))
	}

	return &PlanResult{Key: key, Tasks: res.Tasks, Unresolved: res.Unresolved}, nil
}

func (a *App) warnUnresolved(unresolved []domain.UnresolvedModule) {
	for _, u := range unresolved {
		a.deps.Logger.Warn(fmt.Sprintf("module %s is not provided by any source (required by %v)", u.Module, u.RequiredBy))
	}
}

func (a *App) layout(project *domain.Project, opts Options) domain.BuildLayout {
	if opts.BuildDir != "" {
		return domain.NewBuildLayout(absPath(opts.Cwd, opts.BuildDir))
	}
	return domain.NewBuildLayout(filepath.Join(project.Root, domain.DefaultBuildDir))
}

func effectiveModules(project *domain.Project, opts Options) (domain.ExternalModuleSet, bool) {
	externals := domain.NewExternalModuleSet(opts.Externals...)
	allow := opts.AllowUnresolved
	if project != nil {
		externals = project.ExternalModules().Union(externals)
		allow = allow || project.Modules.AllowUnresolved
	}
	return externals, allow
}

func absPath(cwd, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(cwd, path)
}
