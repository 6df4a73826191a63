package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/polisai/passgen/pkg/domain"
	"github.com/polisai/passgen/pkg/passgen"
	"github.com/spf13/cobra"
)

const interactiveHelp = `Commands:
  generate, g          generate a password with the current settings (or press enter)
  length N             set the password length
  toggle CLASS         toggle upper, lower, digits, symbols or ambiguous
  show                 print the current settings
  clear                clear the last password
  help                 print this help
  quit, exit           leave`

func newInteractiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Generate passwords from an interactive prompt",
		Args:  cobra.NoArgs,
		RunE:  runInteractive,
	}
	addGenerationFlags(cmd)
	return cmd
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd, cfg)
	s := &session{
		svc:      passgen.NewService(passgen.WithLogger(logger)),
		settings: cfg.Generation.GenerationConfig,
		out:      cmd.OutOrStdout(),
	}
	return s.run(cmd.Context(), cmd.InOrStdin())
}

// session owns the mutable prompt state. Every generate call hands the
// service a copy of the current settings.
type session struct {
	svc      *passgen.Service
	settings domain.GenerationConfig
	out      io.Writer
}

var errQuit = errors.New("quit")

func (s *session) run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(s.out, "=== Password Generator (interactive mode) ===")
	fmt.Fprintln(s.out, `Type "help" for commands.`)
	fmt.Fprintln(s.out)

	s.generate(ctx)

	lines, readErr := readLines(ctx, in)
	for {
		fmt.Fprint(s.out, "> ")
		select {
		case <-ctx.Done():
			// Interrupted at the prompt; leave like quit does.
			fmt.Fprintln(s.out)
			return nil
		case err := <-readErr:
			fmt.Fprintln(s.out)
			return err
		case line := <-lines:
			if err := s.handle(ctx, line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				fmt.Fprintf(s.out, "Error: %v\n", err)
			}
		}
	}
}

// readLines scans in on its own goroutine so a blocked read never delays
// cancellation. The error channel receives the scanner result once every
// line has been delivered.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}

func (s *session) handle(ctx context.Context, line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		s.generate(ctx)
		return nil
	}

	switch fields[0] {
	case "generate", "g":
		s.generate(ctx)
	case "length":
		if len(fields) != 2 {
			return errors.New("usage: length N")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("invalid length %q", fields[1])
		}
		if n > domain.MaxLength {
			return fmt.Errorf("length must be at most %d", domain.MaxLength)
		}
		s.settings.Length = n
		s.show()
	case "toggle":
		if len(fields) != 2 {
			return errors.New("usage: toggle upper|lower|digits|symbols|ambiguous")
		}
		if err := s.toggle(fields[1]); err != nil {
			return err
		}
		s.show()
	case "show":
		s.show()
	case "clear":
		fmt.Fprintln(s.out, "Entropy: –  |  Strength: –")
	case "help", "?":
		fmt.Fprintln(s.out, interactiveHelp)
	case "quit", "exit", "q":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q (try help)", fields[0])
	}
	return nil
}

func (s *session) toggle(name string) error {
	switch name {
	case "upper":
		s.settings.IncludeUpper = !s.settings.IncludeUpper
	case "lower":
		s.settings.IncludeLower = !s.settings.IncludeLower
	case "digits":
		s.settings.IncludeDigits = !s.settings.IncludeDigits
	case "symbols":
		s.settings.IncludeSymbols = !s.settings.IncludeSymbols
	case "ambiguous":
		s.settings.AvoidAmbiguous = !s.settings.AvoidAmbiguous
	default:
		return fmt.Errorf("unknown class %q", name)
	}
	return nil
}

// generate reports config errors to the user and keeps the session alive.
func (s *session) generate(ctx context.Context) {
	res, err := s.svc.Generate(ctx, s.settings)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%s\n%s\n", res.Password, strengthLine(res.Strength))
}

func (s *session) show() {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	fmt.Fprintf(s.out, "length=%d upper=%s lower=%s digits=%s symbols=%s avoid-ambiguous=%s\n",
		s.settings.Length,
		onOff(s.settings.IncludeUpper),
		onOff(s.settings.IncludeLower),
		onOff(s.settings.IncludeDigits),
		onOff(s.settings.IncludeSymbols),
		onOff(s.settings.AvoidAmbiguous),
	)
}
