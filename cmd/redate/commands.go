package redate

import (
	"fmt"

	"github.com/arthur-debert/redate/internal/version"
	"github.com/arthur-debert/redate/pkg/commands"
	"github.com/spf13/cobra"
)

func completeDirs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveFilterDirs
}

// directoryCmd builds a command that processes the directory given as its
// only argument
func directoryCmd(flags *globalFlags, use, short, long string, action func(*session) error) *cobra.Command {
	return &cobra.Command{
		Use:               use + " DIR",
		Short:             short,
		Long:              long,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDirs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, flags, args[0], nil)
			if err != nil {
				return err
			}
			defer s.Close()
			return action(s)
		},
	}
}

func newScanCmd(flags *globalFlags) *cobra.Command {
	return directoryCmd(flags, "scan", MsgScanShort, MsgScanLong, (*session).scan)
}

func newRenameCmd(flags *globalFlags) *cobra.Command {
	return directoryCmd(flags, "rename", MsgRenameShort, MsgRenameLong, (*session).rename)
}

func newRelinkCmd(flags *globalFlags) *cobra.Command {
	return directoryCmd(flags, "relink", MsgRelinkShort, MsgRelinkLong, (*session).relink)
}

func newRunCmd(flags *globalFlags) *cobra.Command {
	cmd := directoryCmd(flags, "run", MsgRunShort, MsgRunLong, (*session).run)
	cmd.Example = MsgRunExample
	return cmd
}

func newGenConfigCmd(flags *globalFlags) *cobra.Command {
	var output string
	var force bool

	cmd := &cobra.Command{
		Use:     "genconfig [DIR]",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir string
			if len(args) > 0 {
				dir = args[0]
			}
			s, err := newSession(cmd, flags, dir, nil)
			if err != nil {
				return err
			}
			defer s.Close()

			result, err := commands.GenConfig(commands.GenConfigOptions{
				Config: s.cfg,
				Output: output,
				Force:  force,
				Logger: s.logger,
			})
			if err != nil {
				return err
			}
			if result.Written == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), result.Content)
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, result.Written)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			helpCmd, _, err := cmd.Root().Find([]string{"help"})
			if err != nil {
				return err
			}
			helpCmd.SetOut(cmd.OutOrStdout())
			helpCmd.Run(helpCmd, []string{"topics"})
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}
