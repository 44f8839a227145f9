package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/endlessm/xdg-user-dirs/internal/version"
	"github.com/endlessm/xdg-user-dirs/pkg/commands"
	"github.com/endlessm/xdg-user-dirs/pkg/errors"
	"github.com/endlessm/xdg-user-dirs/pkg/logging"
	"github.com/endlessm/xdg-user-dirs/pkg/types"
	"github.com/endlessm/xdg-user-dirs/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command. Running it without a
// subcommand performs an update.
func NewRootCmd() *cobra.Command {
	var (
		verbosity   int
		force       bool
		move        bool
		dummyOutput string
		setRole     string
	)

	rootCmd := &cobra.Command{
		Use:     "xdg-user-dirs-update",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if setRole != "" {
				if len(args) != 1 {
					return errors.New(errors.ErrInvalidInput, MsgErrSetArgs)
				}
				return runSet(setRole, args[0], dummyOutput)
			}
			if len(args) > 0 {
				return errors.Newf(errors.ErrInvalidInput, "unexpected argument %q", args[0])
			}
			return runUpdate(cmd, commands.UpdateOptions{
				Force:       force,
				Move:        move,
				DummyOutput: absOrEmpty(dummyOutput),
			})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&dummyOutput, "dummy-output", "", MsgFlagDummyOutput)
	rootCmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	rootCmd.Flags().BoolVar(&move, "move", false, MsgFlagMove)
	rootCmd.Flags().StringVar(&setRole, "set", "", MsgFlagSet)

	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func runUpdate(cmd *cobra.Command, opts commands.UpdateOptions) error {
	result, err := commands.Update(opts)
	if err != nil {
		return err
	}

	for _, line := range result.Skipped {
		log.Warn().Int("line", line.Line).Str("reason", line.Reason).Msg("Ignoring malformed line in user-dirs.dirs")
	}
	for _, event := range result.Events {
		msg := event.Message()
		if msg == "" {
			continue
		}
		if event.IsError() {
			fmt.Fprintln(cmd.ErrOrStderr(), msg)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), msg)
		}
	}
	return nil
}

func runSet(role, path, dummyOutput string) error {
	_, err := commands.Set(commands.SetOptions{
		Role:        types.Role(role),
		Path:        path,
		DummyOutput: absOrEmpty(dummyOutput),
	})
	return err
}

// absOrEmpty makes a --dummy-output value absolute so it does not depend on
// the process working directory once resolved
func absOrEmpty(p string) string {
	if p == "" {
		return ""
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "set ROLE PATH",
		Short:   MsgSetShort,
		Long:    MsgSetLong,
		Example: MsgSetExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dummyOutput, _ := cmd.Flags().GetString("dummy-output")
			return runSet(args[0], args[1], dummyOutput)
		},
	}
}

func newListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}
			listing, err := commands.List(commands.ListOptions{})
			if err != nil {
				return err
			}
			renderer, err := ui.NewRenderer(f, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderListing(listing)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get ROLE",
		Short:   MsgGetShort,
		Long:    MsgGetLong,
		Example: MsgGetExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role := types.Role(args[0])
			if !role.IsDescriptor() {
				role = types.Role(strings.ToUpper(args[0]))
			}
			path, err := commands.Get(commands.GetOptions{Role: role})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "completion bash|zsh|fish|powershell",
		Short:     MsgCompletionShort,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}

// GenCompletion writes the completion script for shell
func GenCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownShell, shell)
	}
}
