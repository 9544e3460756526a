package planner

import (
	"path/filepath"
	"strings"

	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/zerr"
)

// BuildPlan lays out the build file: one statement per task in task order,
// an object for every module interface, and one link or archive statement per
// target. Task dependencies become order-only inputs.
func BuildPlan(
	p *domain.Project,
	layout domain.BuildLayout,
	cmds []domain.CompileCommand,
	tasks []domain.Task,
	targets []TargetSources,
) (*domain.BuildPlan, error) {
	byOutput := make(map[string]*domain.CompileCommand, len(cmds))
	for i := range cmds {
		byOutput[cmds[i].Output] = &cmds[i]
	}

	plan := &domain.BuildPlan{
		Variables: []domain.BuildVariable{
			{Name: "cxx", Value: p.Toolchain.CXX},
			{Name: "ar", Value: p.Toolchain.AR},
			{Name: "cxxflags", Value: strings.Join(CompileFlags(p, layout), " ")},
			{Name: "ldflags", Value: ""},
		},
	}

	for _, task := range tasks {
		output := task.Name.String()
		cmd, ok := byOutput[output]
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownTaskOutput, "task has no compile command"), "output", output)
		}

		deps := domain.Strings(task.Dependencies)
		if cmd.SourceKind() == domain.SourceModuleInterface {
			plan.Statements = append(plan.Statements,
				domain.BuildStatement{
					Outputs:   []string{output},
					Rule:      domain.RulePrecompileModule,
					Inputs:    []string{cmd.File},
					OrderOnly: deps,
				},
				domain.BuildStatement{
					Outputs: []string{ObjectFile(layout, cmd.File)},
					Rule:    domain.RuleCompileCPP,
					Inputs:  []string{output},
				},
			)
			continue
		}

		plan.Statements = append(plan.Statements, domain.BuildStatement{
			Outputs:   []string{output},
			Rule:      domain.RuleCompileCPP,
			Inputs:    []string{cmd.File},
			OrderOnly: deps,
		})
	}

	for _, ts := range targets {
		objects := targetObjects(layout, ts.Sources, byOutput)
		if len(objects) == 0 {
			continue
		}

		artifact := filepath.Join(layout.TargetsDir(), ts.Target.Kind.ArtifactName(ts.Target.Name))
		plan.Statements = append(plan.Statements, domain.BuildStatement{
			Outputs: []string{artifact},
			Rule:    linkRule(ts.Target.Kind),
			Inputs:  objects,
		})
		plan.Defaults = append(plan.Defaults, artifact)
	}

	return plan, nil
}

// targetObjects returns the objects of the sources that have a compile command, deduplicated.
func targetObjects(layout domain.BuildLayout, sources []string, byOutput map[string]*domain.CompileCommand) []string {
	seen := make(map[string]bool, len(sources))
	var objects []string
	for _, src := range sources {
		cmd, ok := byOutput[PrimaryOutput(layout, src)]
		if !ok || cmd.File != src {
			continue
		}
		obj := ObjectFile(layout, src)
		if seen[obj] {
			continue
		}
		seen[obj] = true
		objects = append(objects, obj)
	}
	return objects
}

func linkRule(kind domain.TargetKind) string {
	switch kind {
	case domain.TargetLibrary:
		return domain.RuleLinkShared
	case domain.TargetStaticLibrary:
		return domain.RuleArchive
	default:
		return domain.RuleLink
	}
}
