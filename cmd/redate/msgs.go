package redate

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Rewrite DD.MM.YY name prefixes as YYYY.MM.DD"
	MsgScanShort       = "List dated entries without changing anything"
	MsgScanLong        = "Scan lists every entry under DIR whose name starts with a DD.MM.YY prefix. Directories are marked with #, files with - and shortcuts with @."
	MsgRenameShort     = "Rename dated files and directories"
	MsgRenameLong      = "Rename rewrites the date prefix of every dated file and directory under DIR, deepest entries first. Shortcuts are left to relink."
	MsgRelinkShort     = "Point dated shortcuts at their renamed targets"
	MsgRunShort        = "Rename, then relink, in one pass"
	MsgMenuShort       = "Interactive session"
	MsgGenConfigShort  = "Print or write the effective configuration"
	MsgGenConfigLong   = "GenConfig prints the effective configuration as TOML. Save it as ~/.config/redate/config.toml, or as .redate.toml in a directory you process."
	MsgVersionShort    = "Print version information"
	MsgTopicsShort     = "Display available documentation topics"
	MsgCompletionShort = "Generate shell completion script"

	// Prompts and notices
	MsgConfirmFormat   = "%s %d entries under %s? [y/N]: "
	MsgAborted         = "Aborted, nothing was changed."
	MsgNothingToDo     = "Nothing to do."
	MsgDryRunNotice    = "DRY RUN MODE - No changes were made"
	MsgMenuTitle       = "redate: date prefix converter"
	MsgMenuPrompt      = "\nChoose an action: [s]can, [r]ename, re[l]ink, [a]ll, [q]uit: "
	MsgMenuDirPrompt   = "Directory: "
	MsgMenuUnknown     = "Unknown action %q\n"
	MsgMenuBye         = "Bye!"
	MsgConfigWritten   = "Configuration written to %s\n"
	MsgVersionFormat   = "redate version %s\n  commit: %s\n  built:  %s\n"
	MsgFailuresSummary = "%d of %d entries failed"

	// Error messages
	MsgErrConfig       = "failed to load configuration: %w"
	MsgErrReadInput    = "failed to read input: %w"
	MsgErrRender       = "failed to render output: %w"
	MsgErrNoSubcommand = "no command specified"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without executing them"
	MsgFlagYes     = "Do not ask for confirmation"
	MsgFlagConfig  = "Configuration file (TOML or YAML)"
	MsgFlagPattern = "Glob matched against entry names"
	MsgFlagExt     = "Extension of shortcut files"
	MsgFlagExclude = "Name globs to skip (repeatable)"
	MsgFlagMode    = "Shortcut commit mode: replace or safe"
	MsgFlagFormat  = "Output format: auto, term, text or json"
	MsgFlagLogFile = "Log file, - to disable"
	MsgFlagOutput  = "Write the configuration to this file"
	MsgFlagForce   = "Overwrite an existing file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/run-long.txt
	msgRunLongRaw string
	MsgRunLong    = strings.TrimSpace(msgRunLongRaw)

	//go:embed msgs/run-example.txt
	msgRunExampleRaw string
	MsgRunExample    = strings.TrimRight(msgRunExampleRaw, "\n")

	//go:embed msgs/relink-long.txt
	msgRelinkLongRaw string
	MsgRelinkLong    = strings.TrimSpace(msgRelinkLongRaw)

	//go:embed msgs/menu-long.txt
	msgMenuLongRaw string
	MsgMenuLong    = strings.TrimSpace(msgMenuLongRaw)
)
