package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/japaniel/wordgen/pkg/session"
)

const shellHelp = `commands:
  word N [L]     N random words (L letters each for letter-built lexicons)
  phrase N       N phrases
  name N         N full names
  history        list this session's results
  export [PATH]  write the history to PATH
  help           show this text
  quit           leave the shell`

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive generation session",
		Long:  "Start a line-oriented session that keeps a history of every result and can export it.\n\n" + shellHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.newSession(cmd.Context())
			if err != nil {
				return err
			}
			sh := &shell{
				session:    s,
				out:        cmd.OutOrStdout(),
				exportPath: a.cfg.History,
			}
			return sh.run(cmd.Context(), cmd.InOrStdin())
		},
	}
}

// shell reads commands line by line and prints one response per command. Command
// errors are printed and the loop continues.
type shell struct {
	session    *session.Session
	out        io.Writer
	exportPath string
}

func (sh *shell) run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(sh.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(sh.out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		quit, err := sh.exec(strings.Fields(scanner.Text()))
		if err != nil {
			fmt.Fprintf(sh.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

func (sh *shell) exec(args []string) (quit bool, err error) {
	if len(args) == 0 {
		return false, nil
	}
	switch cmd := strings.ToLower(args[0]); cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(sh.out, shellHelp)
	case "history":
		entries := sh.session.History()
		if len(entries) == 0 {
			fmt.Fprintln(sh.out, "history is empty")
		}
		for i, e := range entries {
			fmt.Fprintf(sh.out, "%d. %s\n", i+1, e)
		}
	case "export":
		path := sh.exportPath
		if len(args) > 1 {
			path = args[1]
		}
		if err := sh.session.ExportHistory(path); err != nil {
			return false, err
		}
		fmt.Fprintf(sh.out, "exported %d entries to %s\n", len(sh.session.History()), path)
	default:
		mode, err := session.ParseMode(cmd)
		if err != nil {
			return false, fmt.Errorf("unknown command %q (try help)", args[0])
		}
		req, err := parseRequest(mode, args[1:])
		if err != nil {
			return false, err
		}
		res, err := sh.session.Generate(req)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(sh.out, res.Summary)
	}
	return false, nil
}

func parseRequest(mode session.Mode, args []string) (session.Request, error) {
	req := session.Request{Mode: mode}
	maxArgs := 1
	if mode == session.Word {
		maxArgs = 2
	}
	if len(args) == 0 || len(args) > maxArgs {
		return req, fmt.Errorf("usage: %s", usage(mode))
	}
	var err error
	if req.Count, err = strconv.Atoi(args[0]); err != nil {
		return req, fmt.Errorf("count %q is not a number", args[0])
	}
	if len(args) == 2 {
		if req.Length, err = strconv.Atoi(args[1]); err != nil {
			return req, fmt.Errorf("length %q is not a number", args[1])
		}
	}
	return req, nil
}

func usage(mode session.Mode) string {
	if mode == session.Word {
		return "word N [L]"
	}
	return mode.String() + " N"
}
