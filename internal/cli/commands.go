package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/brewboot/internal/version"
	"github.com/arthur-debert/brewboot/pkg/bootstrap"
	"github.com/arthur-debert/brewboot/pkg/config"
	"github.com/arthur-debert/brewboot/pkg/environ"
	"github.com/arthur-debert/brewboot/pkg/errors"
	"github.com/arthur-debert/brewboot/pkg/items"
	"github.com/arthur-debert/brewboot/pkg/logging"
	"github.com/arthur-debert/brewboot/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the brew root command. Anything that is not one of
// the in-process subcommands is handed to the interpreted core unchanged,
// flags included.
func NewRootCmd(rt Runtime) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "brew",
		Short: "The missing package manager",
		Long: `brew prepares a sanitized environment and hands every command to the
Homebrew core. Listing installed-tap formulae and casks is answered directly.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(logging.VerbosityFromEnv(envLookup(rt)))
			log.Debug().Str("command", cmd.Name()).Fields(version.Fields()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.handoff(args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// help belongs to the core
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:                "help",
		Hidden:             true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.handoff(append([]string{"help"}, args...))
		},
	})

	rootCmd.AddCommand(newListCmd(rt, "formulae", items.Formula, "List all locally installable formulae"))
	rootCmd.AddCommand(newListCmd(rt, "casks", items.Cask, "List all locally installable casks"))
	rootCmd.AddCommand(newBootEnvCmd(rt))

	rootCmd.SetOut(rt.Stdout)
	rootCmd.SetErr(rt.Stderr)
	return rootCmd
}

func newListCmd(rt Runtime, use string, kind items.Kind, short string) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// with arguments the core handles it
			if len(args) > 0 {
				return rt.handoff(append([]string{use}, args...))
			}

			resolved, err := rt.resolve([]string{use})
			if err != nil {
				return err
			}
			warnConfig(cmd.ErrOrStderr(), resolved)

			rules := rt.rules()
			settings, err := items.SettingsFromEnv(resolved.Filtered, rules.Namespace, rt.GOOS)
			if err != nil {
				return err
			}

			names := items.NewLister(rt.FS, settings, rules.Taps).List(kind)
			return writeLines(cmd.OutOrStdout(), names)
		},
	}
}

func newBootEnvCmd(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:    "boot-env",
		Short:  "Print the environment handed to the core",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := rt.resolve(nil)
			if err != nil {
				return err
			}
			warnConfig(cmd.ErrOrStderr(), resolved)
			return writeLines(cmd.OutOrStdout(), resolved.Filtered.Pairs())
		},
	}
}

func (rt Runtime) rules() *config.Rules {
	if rt.Rules == nil {
		return config.Default()
	}
	return rt.Rules
}

func envLookup(rt Runtime) func(string) string {
	return environ.FromPairs(rt.Environ).Get
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, errors.ErrFileAccess, "failed to write output")
		}
	}
	return nil
}

// warnConfig reports malformed brew.env lines, one per line
func warnConfig(w io.Writer, resolved *bootstrap.Environment) {
	printer := ui.NewPrinter(w)
	for _, lineErr := range config.LineErrors(resolved.ConfigErr) {
		printer.Warning(fmt.Sprintf("%s: %v", lineErr.Message, lineErr.Wrapped))
	}
}

// Execute runs the root command and returns the process exit code
func Execute(rt Runtime, args []string) int {
	rootCmd := NewRootCmd(rt)
	// cobra falls back to os.Args for nil
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		ui.NewPrinter(rt.Stderr).Error(errors.UserMessage(err))
		return 1
	}
	return 0
}
