package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"septic/src"
	"septic/src/analysis"
	"septic/src/base"
	"septic/src/engine"
	"septic/src/logic/convert/convpos"
	"strconv"
	"strings"

	"golang.org/x/term"
)

type DrawFunc func(w io.Writer, s base.Snapshot)

var errQuit = errors.New("quit")

const help = `commands:
  sel c<0-8> | sel r<0-2>   select a cell or a reserve tier of the mover
  desel                     clear the selection
  play <move>               n<size><to> or b<size><from><to>
  moves                     legal moves
  eval                      rank the legal moves with the engine
  undo | redo | reset
  pos                       snapshot string
  hist                      played moves
  q                         quit
`

type CLIProcessing struct {
	builder  *src.GameBuilder
	analyzer *analysis.Analyzer // nil disables eval
	draw     DrawFunc
	in       *os.File
	out      io.Writer
}

func NewCLI(b *src.GameBuilder, a *analysis.Analyzer, draw DrawFunc) *CLIProcessing {
	return &CLIProcessing{builder: b, analyzer: a, draw: draw, in: os.Stdin, out: os.Stdout}
}

// Run reads commands in raw mode: left/right arrows undo/redo, Enter runs
// the typed command, q or Ctrl+C quits. Falls back to line mode when the
// terminal cannot be put in raw mode.
func (c *CLIProcessing) Run() error {
	fd := int(c.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.RunLineMode(c.in)
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	out := c.out
	c.out = crlf{out}
	defer func() { c.out = out }()

	r := bufio.NewReader(c.in)
	var inputBuf strings.Builder

	c.redraw()
	fmt.Fprint(c.out, "\ntype a command and press Enter, arrows undo/redo, 'help' for commands\n> ")
	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}
		switch {
		case b == 3: // Ctrl+C
			fmt.Fprintln(c.out, "\nInterrupted")
			return nil
		case b == 0x1b: // CSI arrow
			b1, err1 := r.ReadByte()
			b2, err2 := r.ReadByte()
			if err1 != nil || err2 != nil || b1 != '[' {
				continue
			}
			cmd := map[byte]string{'D': "undo", 'C': "redo"}[b2]
			if cmd == "" {
				continue
			}
			fmt.Fprintln(c.out)
			if err := c.Exec(cmd); err != nil {
				return nil
			}
			fmt.Fprint(c.out, "> ")
		case b == '\r' || b == '\n':
			line := inputBuf.String()
			inputBuf.Reset()
			fmt.Fprintln(c.out)
			if err := c.Exec(line); errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprint(c.out, "> ")
		case b == 0x7f || b == 0x08: // backspace
			if s := inputBuf.String(); len(s) > 0 {
				inputBuf.Reset()
				inputBuf.WriteString(s[:len(s)-1])
				fmt.Fprint(c.out, "\b \b")
			}
		case b >= 32 && b <= 126:
			inputBuf.WriteByte(b)
			fmt.Fprintf(c.out, "%c", b)
		}
	}
}

func (c *CLIProcessing) RunLineMode(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	c.redraw()
	fmt.Fprint(c.out, help)
	for scanner.Scan() {
		if err := c.Exec(scanner.Text()); errors.Is(err, errQuit) {
			return nil
		}
	}
	return scanner.Err()
}

// Exec runs one command line. Game errors are printed, not returned; only
// quitting ends the session.
func (c *CLIProcessing) Exec(line string) error {
	fld := strings.Fields(line)
	if len(fld) == 0 {
		return nil
	}
	var err error
	redraw := true
	switch cmd, args := strings.ToLower(fld[0]), fld[1:]; cmd {
	case "q", "quit", "exit":
		return errQuit
	case "help", "?":
		fmt.Fprint(c.out, help)
		redraw = false
	case "sel":
		err = c.sel(args)
	case "desel":
		c.builder.ClearSelection()
	case "play":
		if len(args) != 1 {
			err = errors.New("usage: play <move>")
			break
		}
		err = c.play(args[0])
	case "moves":
		redraw = false
		err = c.printMoves()
	case "eval":
		redraw = false
		err = c.printEval()
	case "undo":
		err = c.builder.Undo()
	case "redo":
		err = c.builder.Redo()
	case "reset":
		err = c.builder.Reset()
	case "pos":
		redraw = false
		fmt.Fprintln(c.out, c.builder.String())
	case "hist":
		redraw = false
		fmt.Fprintln(c.out, c.builder.MovesString())
	default:
		redraw = false
		err = fmt.Errorf("unknown command %q, try help", cmd)
	}
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return nil
	}
	if redraw {
		c.redraw()
	}
	return nil
}

func (c *CLIProcessing) sel(args []string) error {
	if len(args) != 1 || len(args[0]) < 2 {
		return errors.New("usage: sel c<cell> | sel r<size>")
	}
	n, err := strconv.Atoi(args[0][1:])
	if err != nil {
		return fmt.Errorf("bad index %q", args[0][1:])
	}
	var t base.Target
	switch args[0][0] {
	case 'c':
		if !base.IsValidCell(n) {
			return fmt.Errorf("cell out of range: %d", n)
		}
		t = base.CellTarget(n)
	case 'r':
		if n < 0 || !base.IsValidSize(base.PieceSize(n)) {
			return fmt.Errorf("size out of range: %d", n)
		}
		t = base.ReserveTarget(c.builder.Snapshot().Player(), base.PieceSize(n))
	default:
		return fmt.Errorf("bad target %q", args[0])
	}
	return c.builder.Select(t)
}

// play checks the move against the legal list before sending it to the rules.
func (c *CLIProcessing) play(str string) error {
	mv, err := convpos.ConvertStringToMove(str)
	if err != nil {
		return err
	}
	ok, err := c.builder.IsLegal(mv)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %w", str, engine.ErrIllegalMove)
	}
	return c.builder.Move(mv)
}

func (c *CLIProcessing) printMoves() error {
	moves, err := c.builder.LegalMoves()
	if err != nil {
		return err
	}
	strs := make([]string, 0, len(moves))
	for _, mv := range moves {
		strs = append(strs, convpos.ConvertMoveToString(mv))
	}
	fmt.Fprintf(c.out, "%d: %s\n", len(moves), strings.Join(strs, " "))
	return nil
}

func (c *CLIProcessing) printEval() error {
	if c.analyzer == nil {
		return errors.New("no engine for evaluation")
	}
	s := c.builder.Snapshot()
	c.analyzer.Observe(s)
	c.analyzer.Wait()
	v := c.analyzer.View()
	switch v.Phase(s.Status) {
	case analysis.PhaseOver:
		fmt.Fprintf(c.out, "game over: %s\n", s.Status)
		return nil
	case analysis.PhaseFailed:
		return v.Err
	case analysis.PhaseNoMoves:
		fmt.Fprintln(c.out, "no legal moves")
		return nil
	}
	for i, e := range v.Entries {
		fmt.Fprintf(c.out, "%2d. %-6s %-22s %s\n", i+1, convpos.ConvertMoveToString(e.Move), e.MoveLabel(), e.EvalLabel())
	}
	return nil
}

func (c *CLIProcessing) redraw() {
	c.draw(c.out, c.builder.Snapshot())
	fmt.Fprintf(c.out, "  moves: %s\n", c.builder.MovesString())
}

// crlf turns \n into \r\n for a terminal in raw mode.
type crlf struct{ w io.Writer }

func (c crlf) Write(p []byte) (int, error) {
	if _, err := c.w.Write([]byte(strings.ReplaceAll(string(p), "\n", "\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
