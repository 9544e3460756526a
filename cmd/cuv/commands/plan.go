package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/cuv/internal/app"
	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by plan --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [deps.json]",
		Short: "Resolve a dependency scan into an ordered task list",
		Long: "Resolve a P1689 dependency scan into build order and print it.\n" +
			"Without an argument the scan written by the last generate run is used.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			if !isKnownFormat(format) {
				return zerr.With(zerr.Wrap(domain.ErrUnsupportedOutputFormat, "unknown --format"), "format", format)
			}

			opts, err := c.options(cmd)
			if err != nil {
				return err
			}

			var scanPath string
			if len(args) == 1 {
				scanPath = args[0]
			}

			res, err := c.app.Plan(cmd.Context(), scanPath, opts)
			if err != nil {
				return err
			}
			return writePlan(cmd.OutOrStdout(), res, format)
		},
	}
	addModuleFlags(cmd)
	cmd.Flags().StringP("format", "f", FormatText, "Output format: text, json, or yaml")
	return cmd
}

func isKnownFormat(format string) bool {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

type taskView struct {
	Output       string   `json:"output" yaml:"output"`
	Dependencies []string `json:"dependencies" yaml:"dependencies"`
}

type unresolvedView struct {
	Module     string   `json:"module" yaml:"module"`
	RequiredBy []string `json:"required_by" yaml:"required_by"`
}

type planView struct {
	Key        string           `json:"key" yaml:"key"`
	Cached     bool             `json:"cached" yaml:"cached"`
	Tasks      []taskView       `json:"tasks" yaml:"tasks"`
	Unresolved []unresolvedView `json:"unresolved,omitempty" yaml:"unresolved,omitempty"`
}

func newPlanView(res *app.PlanResult) planView {
	view := planView{
		Key:    res.Key,
		Cached: res.Cached,
		Tasks:  make([]taskView, 0, len(res.Tasks)),
	}
	for _, task := range res.Tasks {
		view.Tasks = append(view.Tasks, taskView{
			Output:       task.Name.String(),
			Dependencies: domain.Strings(task.Dependencies),
		})
	}
	for _, u := range res.Unresolved {
		view.Unresolved = append(view.Unresolved, unresolvedView(u))
	}
	return view
}

func writePlan(w io.Writer, res *app.PlanResult, format string) error {
	view := newPlanView(res)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, task := range view.Tasks {
			line := task.Output + ":"
			if len(task.Dependencies) > 0 {
				line += " " + strings.Join(task.Dependencies, " ")
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	}
}
