// Package commands implements the CLI commands for cuv.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/cuv/internal/app"
	"go.trai.ch/cuv/internal/build"
	"go.trai.ch/cuv/internal/core/ports"
)

// Application represents the application logic interface.
type Application interface {
	Plan(ctx context.Context, scanPath string, opts app.Options) (*app.PlanResult, error)
	CompileDB(ctx context.Context, opts app.Options) (*app.GenerateResult, error)
	Generate(ctx context.Context, opts app.Options) (*app.GenerateResult, error)
	Watch(ctx context.Context, opts app.Options, window time.Duration) error
}

// Progress renders live telemetry until it is closed. Run returning before
// Close means the user dismissed the view, which cancels the command.
type Progress interface {
	Run(ctx context.Context, out io.Writer) error
	Close() error
}

// jsonSwitcher is implemented by loggers that can emit JSON.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// CLI represents the command line interface for cuv.
type CLI struct {
	app      Application
	logger   ports.Logger
	progress Progress
	rootCmd  *cobra.Command
	getwd    func() (string, error)
	running  chan error
	cancel   context.CancelFunc
	closing  atomic.Bool
}

// New creates a new CLI instance with the given app. log may be nil.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cuv",
		Short:         "Build planner for C++20 modules",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("build-dir", "B", "", "Build directory (default <project>/build)")
	rootCmd.PersistentFlags().Bool("json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().Bool("progress", false, "Show live progress of scans and resolution")

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
		getwd:   os.Getwd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		enable, _ := cmd.Flags().GetBool("json")
		if s, ok := c.logger.(jsonSwitcher); ok && enable {
			s.SetJSON(true)
		}

		progress, _ := cmd.Flags().GetBool("progress")
		if progress && c.progress != nil {
			ctx, cancel := context.WithCancel(cmd.Context())
			cmd.SetContext(ctx)
			c.cancel = cancel
			c.running = make(chan error, 1)
			go func() {
				err := c.progress.Run(ctx, cmd.ErrOrStderr())
				if !c.closing.Load() {
					cancel()
				}
				c.running <- err
			}()
		}
	}

	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newCompileDBCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()

	if c.running != nil {
		c.closing.Store(true)
		_ = c.progress.Close()
		if perr := <-c.running; perr != nil && err == nil {
			err = perr
		}
		c.cancel()
		c.running = nil
	}
	return err
}

// SetProgress sets the renderer used by --progress.
func (c *CLI) SetProgress(p Progress) {
	c.progress = p
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetWorkingDir pins the directory project discovery starts from. Used for testing.
func (c *CLI) SetWorkingDir(dir string) {
	c.getwd = func() (string, error) { return dir, nil }
}

func addModuleFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("extern", nil, "Additional external modules (repeatable, comma separated)")
	cmd.Flags().Bool("allow-unresolved", false, "Drop modules no source provides instead of failing")
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the plan cache")
}

func (c *CLI) options(cmd *cobra.Command) (app.Options, error) {
	cwd, err := c.getwd()
	if err != nil {
		return app.Options{}, err
	}

	buildDir, _ := cmd.Flags().GetString("build-dir")
	opts := app.Options{Cwd: cwd, BuildDir: buildDir}

	if cmd.Flags().Lookup("extern") != nil {
		opts.Externals, _ = cmd.Flags().GetStringSlice("extern")
		opts.AllowUnresolved, _ = cmd.Flags().GetBool("allow-unresolved")
		opts.NoCache, _ = cmd.Flags().GetBool("no-cache")
	}
	return opts, nil
}
