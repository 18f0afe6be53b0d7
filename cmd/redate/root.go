package redate

import (
	"embed"
	"fmt"
	"os"

	"github.com/arthur-debert/redate/internal/version"
	"github.com/arthur-debert/redate/pkg/cobrax/topics"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

// globalFlags holds the persistent flags shared by every command
type globalFlags struct {
	verbosity  int
	dryRun     bool
	yes        bool
	configFile string
	pattern    string
	ext        string
	exclude    []string
	mode       string
	format     string
	logFile    string
}

// overrides maps the flags set on the command line to configuration keys
func (f *globalFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	values := make(map[string]interface{})
	set := func(flag, key string, value interface{}) {
		if cmd.Flags().Changed(flag) {
			values[key] = value
		}
	}
	set("pattern", "scan.pattern", f.pattern)
	set("ext", "scan.shortcut_extension", f.ext)
	set("exclude", "scan.exclude", f.exclude)
	set("mode", "shortcuts.commit_mode", f.mode)
	set("format", "output.format", f.format)
	set("log-file", "logging.file", f.logFile)
	return values
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "redate",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoSubcommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.BoolVar(&flags.dryRun, "dry-run", false, MsgFlagDryRun)
	pf.BoolVarP(&flags.yes, "yes", "y", false, MsgFlagYes)
	pf.StringVarP(&flags.configFile, "config", "c", "", MsgFlagConfig)
	pf.StringVar(&flags.pattern, "pattern", "", MsgFlagPattern)
	pf.StringVar(&flags.ext, "ext", "", MsgFlagExt)
	pf.StringSliceVar(&flags.exclude, "exclude", nil, MsgFlagExclude)
	pf.StringVar(&flags.mode, "mode", "", MsgFlagMode)
	pf.StringVar(&flags.format, "format", "", MsgFlagFormat)
	pf.StringVar(&flags.logFile, "log-file", "", MsgFlagLogFile)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newScanCmd(flags))
	rootCmd.AddCommand(newRenameCmd(flags))
	rootCmd.AddCommand(newRelinkCmd(flags))
	rootCmd.AddCommand(newRunCmd(flags))
	rootCmd.AddCommand(newMenuCmd(flags))
	rootCmd.AddCommand(newGenConfigCmd(flags))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	if _, err := topics.Initialize(rootCmd, topicsFS, topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: help topics unavailable: %v\n", err)
	}

	return rootCmd
}
