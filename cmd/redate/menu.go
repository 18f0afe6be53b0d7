package redate

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var menuActions = map[string]func(*session) error{
	"s":      (*session).scan,
	"scan":   (*session).scan,
	"r":      (*session).rename,
	"rename": (*session).rename,
	"l":      (*session).relink,
	"relink": (*session).relink,
	"a":      (*session).run,
	"all":    (*session).run,
}

func newMenuCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "menu",
		Short:   MsgMenuShort,
		Long:    MsgMenuLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, flags)
		},
	}
}

// runMenu loops until the user quits or input ends. Errors of a single
// action are reported and the loop goes on.
func runMenu(cmd *cobra.Command, flags *globalFlags) error {
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, MsgMenuTitle)
	for {
		fmt.Fprint(out, MsgMenuPrompt)
		choice, eof, err := readLine(in)
		if err != nil {
			return err
		}
		choice = strings.ToLower(choice)
		if choice == "q" || choice == "quit" || (eof && choice == "") {
			fmt.Fprintln(out, MsgMenuBye)
			return nil
		}

		action, ok := menuActions[choice]
		if !ok {
			fmt.Fprintf(out, MsgMenuUnknown, choice)
			continue
		}

		fmt.Fprint(out, MsgMenuDirPrompt)
		dir, _, err := readLine(in)
		if err != nil {
			return err
		}
		// dropped folders arrive quoted; Normalize strips the quotes
		if err := menuAction(cmd, flags, dir, in, action); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		}
	}
}

func menuAction(cmd *cobra.Command, flags *globalFlags, dir string, in *bufio.Reader, action func(*session) error) error {
	s, err := newSession(cmd, flags, dir, in)
	if err != nil {
		return err
	}
	defer s.Close()
	s.preview = true
	return action(s)
}

// readLine returns the next trimmed line and whether input has ended
func readLine(in *bufio.Reader) (string, bool, error) {
	line, err := in.ReadString('\n')
	if err == io.EOF {
		return strings.TrimSpace(line), true, nil
	}
	if err != nil {
		return "", false, fmt.Errorf(MsgErrReadInput, err)
	}
	return strings.TrimSpace(line), false, nil
}
