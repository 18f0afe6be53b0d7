package redate

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/redate/pkg/commands"
	"github.com/arthur-debert/redate/pkg/config"
	"github.com/arthur-debert/redate/pkg/display"
	"github.com/arthur-debert/redate/pkg/logging"
	"github.com/arthur-debert/redate/pkg/paths"
	"github.com/arthur-debert/redate/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// session is everything a command needs to process one directory
type session struct {
	flags    *globalFlags
	root     string
	cfg      *config.Config
	logger   zerolog.Logger
	closer   io.Closer
	renderer display.Renderer
	in       *bufio.Reader
	out      io.Writer
	// preview renders a dry run before asking for confirmation
	preview bool
}

// newSession resolves dir, loads the configuration for it and sets up
// logging and output. An empty dir skips the root configuration layer.
func newSession(cmd *cobra.Command, flags *globalFlags, dir string, in *bufio.Reader) (*session, error) {
	var root string
	if dir != "" {
		normalized, err := paths.Normalize(dir)
		if err != nil {
			return nil, err
		}
		root = normalized
	}

	cfg, err := config.Load(config.LoadOptions{
		Root:       root,
		ConfigFile: flags.configFile,
		Overrides:  flags.overrides(cmd),
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrConfig, err)
	}

	logger, closer := logging.New(logging.Options{
		Verbosity: flags.verbosity,
		Console:   cmd.ErrOrStderr(),
		LogFile:   cfg.Logging.File,
		NoColor:   os.Getenv("NO_COLOR") != "" || !isTerminal(os.Stderr),
	})
	logger.Debug().Str("command", cmd.Name()).Str("root", root).Msg("Command started")

	renderer, err := display.NewRenderer(cfg.OutputFormat(), cmd.OutOrStdout(), root)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	if in == nil {
		in = bufio.NewReader(cmd.InOrStdin())
	}
	return &session{
		flags:    flags,
		root:     root,
		cfg:      cfg,
		logger:   logger,
		closer:   closer,
		renderer: renderer,
		in:       in,
		out:      cmd.OutOrStdout(),
	}, nil
}

// Close releases the log file
func (s *session) Close() {
	_ = s.closer.Close()
}

func (s *session) interactiveOutput() bool {
	return s.cfg.OutputFormat() != display.FormatJSON
}

func (s *session) message(msg string) error {
	if !s.interactiveOutput() {
		return nil
	}
	return s.renderer.RenderMessage(msg)
}

// confirm asks before a destructive action. --yes and --dry-run skip it.
func (s *session) confirm(action string, count int) (bool, error) {
	if s.flags.yes || s.flags.dryRun {
		return true, nil
	}
	fmt.Fprintf(s.out, MsgConfirmFormat, action, count, s.root)
	line, err := s.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf(MsgErrReadInput, err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// finish prints the dry run notice and turns failed outcomes into an error
// so the process exits non-zero
func (s *session) finish(summaries ...types.Summary) error {
	if s.flags.dryRun {
		if err := s.message(MsgDryRunNotice); err != nil {
			return err
		}
	}
	var failed, total int
	for _, sum := range summaries {
		failed += sum.Failed
		total += sum.Total
	}
	if failed > 0 {
		return fmt.Errorf(MsgFailuresSummary, failed, total)
	}
	return nil
}

func (s *session) scan() error {
	result, err := commands.Scan(commands.ScanOptions{
		Root:   s.root,
		Logger: s.logger,
		Scan:   s.cfg.ScanOptions(),
	})
	if err != nil {
		return err
	}
	if err := s.renderer.RenderScan(result); err != nil {
		return fmt.Errorf(MsgErrRender, err)
	}
	return nil
}

func (s *session) rename() error {
	opts := commands.RenameOptions{
		Root:   s.root,
		Logger: s.logger,
		Scan:   s.cfg.ScanOptions(),
	}
	result, err := commands.Scan(commands.ScanOptions{Root: s.root, Logger: s.logger, Scan: opts.Scan})
	if err != nil {
		return err
	}
	if len(result.Files) == 0 {
		return s.message(MsgNothingToDo)
	}

	if s.preview && !s.flags.dryRun {
		opts.DryRun = true
		batch, err := commands.RenameFiles(opts)
		if err != nil {
			return err
		}
		if err := s.renderer.RenderBatch(batch); err != nil {
			return fmt.Errorf(MsgErrRender, err)
		}
	}
	if ok, err := s.confirm("Rename", len(result.Files)); err != nil || !ok {
		if err != nil {
			return err
		}
		return s.message(MsgAborted)
	}

	opts.DryRun = s.flags.dryRun
	batch, err := commands.RenameFiles(opts)
	if err != nil {
		return err
	}
	if err := s.renderer.RenderBatch(batch); err != nil {
		return fmt.Errorf(MsgErrRender, err)
	}
	return s.finish(batch.Summary())
}

func (s *session) relink() error {
	opts := commands.RelinkOptions{
		Root:   s.root,
		Logger: s.logger,
		Scan:   s.cfg.ScanOptions(),
		Mode:   s.cfg.CommitMode(),
	}
	result, err := commands.Scan(commands.ScanOptions{Root: s.root, Logger: s.logger, Scan: opts.Scan})
	if err != nil {
		return err
	}
	if len(result.Shortcuts) == 0 {
		return s.message(MsgNothingToDo)
	}

	if s.preview && !s.flags.dryRun {
		opts.DryRun = true
		batch, err := commands.RelinkShortcuts(opts)
		if err != nil {
			return err
		}
		if err := s.renderer.RenderBatch(batch); err != nil {
			return fmt.Errorf(MsgErrRender, err)
		}
	}
	if ok, err := s.confirm("Relink", len(result.Shortcuts)); err != nil || !ok {
		if err != nil {
			return err
		}
		return s.message(MsgAborted)
	}

	opts.DryRun = s.flags.dryRun
	batch, err := commands.RelinkShortcuts(opts)
	if err != nil {
		return err
	}
	if err := s.renderer.RenderBatch(batch); err != nil {
		return fmt.Errorf(MsgErrRender, err)
	}
	return s.finish(batch.Summary())
}

func (s *session) run() error {
	opts := commands.RunOptions{
		Root:   s.root,
		Logger: s.logger,
		Scan:   s.cfg.ScanOptions(),
		Mode:   s.cfg.CommitMode(),
	}
	result, err := commands.Scan(commands.ScanOptions{Root: s.root, Logger: s.logger, Scan: opts.Scan})
	if err != nil {
		return err
	}
	if result.Total() == 0 {
		return s.message(MsgNothingToDo)
	}

	if s.preview && !s.flags.dryRun {
		opts.DryRun = true
		preview, err := commands.Run(opts)
		if err != nil {
			return err
		}
		if err := s.renderer.RenderRun(preview); err != nil {
			return fmt.Errorf(MsgErrRender, err)
		}
	}
	if ok, err := s.confirm("Process", result.Total()); err != nil || !ok {
		if err != nil {
			return err
		}
		return s.message(MsgAborted)
	}

	opts.DryRun = s.flags.dryRun
	run, err := commands.Run(opts)
	if err != nil {
		return err
	}
	if err := s.renderer.RenderRun(run); err != nil {
		return fmt.Errorf(MsgErrRender, err)
	}
	return s.finish(run.Renames.Summary(), run.Relinks.Summary())
}
