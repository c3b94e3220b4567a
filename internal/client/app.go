package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/session"
)

const usage = `usage: journal <command> [arguments]

  signin  -email E [-password P]
  signup  -name N -email E [-password P]
  signout
  whoami
  profile [set key=value ...]
  picture set <path> | picture rm
  entries [search <term> | mood <mood>]
  entry add -title T -content C [-mood M] [-tags a,b] [-private]
  entry show <id>
  entry edit <id> [-title T] [-content C] [-mood M] [-tags a,b] [-private=true|false]
  entry rm <id>

A password left out is read from the first line of standard input.`

var _ Client = (*App)(nil)

type command func(ctx context.Context, args []string) error

type App struct {
	holder *session.Holder
	in     *bufio.Reader
	out    io.Writer

	commands map[string]command
	logger   *logger.Logger
}

func NewApp(holder *session.Holder, in io.Reader, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		holder: holder,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
	a.commands = map[string]command{
		"signin":  a.signIn,
		"signup":  a.signUp,
		"signout": a.signOut,
		"whoami":  a.whoAmI,
		"profile": a.profile,
		"picture": a.picture,
		"entries": a.entries,
		"entry":   a.entry,
	}
	return a
}

// Run restores the cached session and executes one subcommand.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.printf("%s\n", helpStyle.Render(usage))
		return nil
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		a.printf("%s\n", helpStyle.Render(usage))
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	if res := a.holder.Hydrate(ctx); !res.Success {
		// a failed check leaves the holder anonymous; sign-in can still run
		a.logger.Warn().Str("func", "*App.Run").Str("error", res.Error).Msg("session check failed")
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd(ctx, args[1:])
}

// readPassword returns the first line of the input.
func (a *App) readPassword() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("%w: no password given", ErrUsage)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
