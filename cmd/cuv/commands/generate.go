package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Scan module dependencies and write build.ninja",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.options(cmd)
			if err != nil {
				return err
			}

			watch, _ := cmd.Flags().GetBool("watch")
			if watch {
				debounce, _ := cmd.Flags().GetDuration("debounce")
				return c.app.Watch(cmd.Context(), opts, debounce)
			}

			_, err = c.app.Generate(cmd.Context(), opts)
			return err
		},
	}
	addModuleFlags(cmd)
	cmd.Flags().BoolP("watch", "w", false, "Regenerate whenever sources or cproject.toml change")
	cmd.Flags().Duration("debounce", 0, "Quiet period before regenerating in watch mode (default 200ms)")
	return cmd
}

func (c *CLI) newCompileDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compdb",
		Short: "Write compile_commands.json without scanning",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.options(cmd)
			if err != nil {
				return err
			}
			_, err = c.app.CompileDB(cmd.Context(), opts)
			return err
		},
	}
}
