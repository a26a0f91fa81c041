// Package gbp drives an external game engine over its stdin/stdout with a
// line protocol: one command per line, one answer line per command.
// Lines starting with "info" or "id" are logged and skipped.
package gbp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"septic/src/base"
	"septic/src/engine"
	"septic/src/logic/convert/convpos"
	"septic/src/logx"
	"strings"
	"sync"
	"time"
)

var ErrNotRunning = errors.New("no running engine process")

// Exec implements engine.Rules and engine.Oracle. Requests are serialized,
// so one Exec may be shared, but the Analyzer gives each worker its own.
type Exec struct {
	// init
	path string
	args []string
	// Env, when set, replaces the environment of the engine process.
	Env []string

	// process
	cmd *exec.Cmd
	in  io.WriteCloser
	out io.ReadCloser

	// read stdout
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	lines  chan string

	// runtime
	mu    sync.Mutex
	name  string
	stale int // answers owed to requests abandoned by their caller
	logx  logx.Logger
}

var (
	_ engine.Rules  = (*Exec)(nil)
	_ engine.Oracle = (*Exec)(nil)
)

// to open a process, need to call Init()
func NewExec(logx logx.Logger, enginePath string, engineArgs ...string) *Exec {
	return &Exec{path: enginePath, args: engineArgs, logx: logx}
}

// Factory makes unstarted sessions of the same executable, one per caller.
func Factory(logx logx.Logger, enginePath string, engineArgs ...string) func() engine.Oracle {
	return func() engine.Oracle {
		return NewExec(logx, enginePath, engineArgs...)
	}
}

// Init starts the process and runs the gbp / isready handshake.
func (e *Exec) Init() error {
	if e.path == "" {
		return errors.New("engine path is empty")
	}

	cmd := exec.Command(e.path, e.args...)
	if e.Env != nil {
		cmd.Env = e.Env
	}
	in, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("connect to engine stdin: %w", err)
	}
	out, err := cmd.StdoutPipe()
	if err != nil {
		in.Close()
		return fmt.Errorf("connect to engine stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		in.Close()
		return fmt.Errorf("start engine %s: %w", e.path, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.cmd = cmd
	e.in = in
	e.out = out
	e.lines = make(chan string, 64)
	e.stale = 0

	e.ctx, e.cancel = context.WithCancel(context.Background())
	e.wg.Add(1)
	go e.stdoutLoop(e.ctx, out, e.lines)

	if err := e.handshake(); err != nil {
		go e.Close()
		return err
	}
	e.logx.Infof("open engine: %s (pid %d)", e.name, cmd.Process.Pid)
	return nil
}

func (e *Exec) handshake() error {
	if err := e.write("gbp"); err != nil {
		return err
	}
	if err := e.waitSuffix("gbpok", engine.HandshakeTimeout); err != nil {
		return err
	}
	if err := e.write("isready"); err != nil {
		return err
	}
	return e.waitSuffix("readyok", engine.HandshakeTimeout)
}

// Name is the engine's self-reported name, if it sent one.
func (e *Exec) Name() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.name
}

// ---- engine.Rules ----

func (e *Exec) NewGame(startingPlayer bool) (base.Snapshot, error) {
	side := "second"
	if startingPlayer {
		side = "first"
	}
	return e.requestState(context.Background(), "newgame "+side)
}

func (e *Exec) LegalMoves(s base.Snapshot) ([]base.Move, error) {
	fld, err := e.request(context.Background(), "moves "+convpos.ConvertSnapshotToString(s), "moves", engine.RequestTimeout)
	if err != nil {
		return nil, err
	}
	moves := make([]base.Move, 0, len(fld))
	for _, tok := range fld {
		mv, err := convpos.ConvertStringToMove(tok)
		if err != nil {
			return nil, fmt.Errorf("engine moves: %w", err)
		}
		moves = append(moves, mv)
	}
	return moves, nil
}

func (e *Exec) Apply(s base.Snapshot, mv base.Move) (base.Snapshot, error) {
	return e.requestState(context.Background(),
		fmt.Sprintf("apply %s %s", convpos.ConvertSnapshotToString(s), convpos.ConvertMoveToString(mv)))
}

func (e *Exec) Select(s base.Snapshot, t base.Target) (base.Snapshot, error) {
	return e.requestState(context.Background(),
		fmt.Sprintf("select %s %s", convpos.ConvertSnapshotToString(s), convpos.ConvertTargetToString(t)))
}

func (e *Exec) requestState(ctx context.Context, cmd string) (base.Snapshot, error) {
	fld, err := e.request(ctx, cmd, "state", engine.RequestTimeout)
	if err != nil {
		return base.Snapshot{}, err
	}
	s, err := convpos.ConvertFieldsToSnapshot(fld)
	if err != nil {
		return base.Snapshot{}, fmt.Errorf("engine state: %w", err)
	}
	return s, nil
}

// ---- engine.Oracle ----

func (e *Exec) Evaluate(ctx context.Context, pos base.Position, maxDepth int) (base.Evaluation, error) {
	if maxDepth <= 0 {
		maxDepth = engine.DefaultDepth
	}
	cmd := fmt.Sprintf("eval %s depth %d", convpos.ConvertPositionToString(pos), maxDepth)
	fld, err := e.request(ctx, cmd, "eval", engine.EvaluateTimeout)
	if err != nil {
		return base.Evaluation{}, err
	}
	return convpos.ConvertFieldsToEval(fld)
}

// Flush asks the engine to drop its search cache. No answer is expected.
func (e *Exec) Flush() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.write("flush"); err != nil {
		e.logx.Debugf("flush: %v", err)
	}
}

// Close terminates the process; safe to call more than once.
func (e *Exec) Close() {
	e.mu.Lock()
	if e.cmd == nil {
		e.mu.Unlock()
		return
	}
	_ = e.write("quit")
	_ = e.in.Close()
	e.cancel()
	cmd := e.cmd
	e.cmd = nil
	e.in = nil
	e.mu.Unlock()

	done := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(engine.CloseTimeout):
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
		<-done
	}
	e.wg.Wait()
	e.logx.Info("engine process terminated")
}

// ---- plumbing ----

// request sends cmd and returns the fields after the expected answer keyword.
// An "error <text>" answer becomes an error; "error illegal ..." wraps
// engine.ErrIllegalMove. If ctx ends or the wait times out, the answer is owed
// and dropped by the next request.
func (e *Exec) request(ctx context.Context, cmd, keyword string, timeout time.Duration) ([]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cmd == nil {
		return nil, ErrNotRunning
	}
	for e.stale > 0 {
		if _, err := e.waitAnswer(context.Background(), timeout); err != nil {
			return nil, fmt.Errorf("drain stale answer: %w", err)
		}
		e.stale--
	}

	e.logx.Debugf("GUI: %s", cmd)
	if err := e.write(cmd); err != nil {
		return nil, err
	}
	line, err := e.waitAnswer(ctx, timeout)
	if err != nil {
		e.stale++
		return nil, err
	}

	fld := strings.Fields(line)
	switch {
	case fld[0] == keyword:
		return fld[1:], nil
	case fld[0] == "error" && len(fld) > 1 && fld[1] == "illegal":
		return nil, fmt.Errorf("%w: %s", engine.ErrIllegalMove, strings.Join(fld[2:], " "))
	case fld[0] == "error":
		return nil, fmt.Errorf("engine: %s", strings.Join(fld[1:], " "))
	default:
		return nil, fmt.Errorf("engine: unexpected answer to %q: %q", keyword, line)
	}
}

func (e *Exec) write(cmd string) error {
	if e.in == nil {
		return ErrNotRunning
	}
	_, err := io.WriteString(e.in, cmd+"\n")
	return err
}

func (e *Exec) waitAnswer(ctx context.Context, timeout time.Duration) (string, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case line, ok := <-e.lines:
			if !ok {
				return "", errors.New("engine closed its output")
			}
			if line == "" || strings.HasPrefix(line, "info") || strings.HasPrefix(line, "id ") {
				continue
			}
			return line, nil
		case <-timer.C:
			return "", errors.New("timeout waiting for engine")
		case <-ctx.Done():
			return "", ctx.Err()
		case <-e.ctx.Done():
			return "", errors.New("stopped")
		}
	}
}

func (e *Exec) waitSuffix(str string, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case line, ok := <-e.lines:
			if !ok {
				return fmt.Errorf("engine exited before %s", str)
			}
			if name, found := strings.CutPrefix(line, "id name "); found {
				e.name = name
			}
			if strings.HasSuffix(line, str) {
				return nil
			}
		case <-timer.C:
			return fmt.Errorf("timeout waiting for %s", str)
		case <-e.ctx.Done():
			return errors.New("stopped")
		}
	}
}

func (e *Exec) stdoutLoop(ctx context.Context, out io.Reader, lines chan<- string) {
	defer e.wg.Done()
	defer close(lines)
	scr := bufio.NewScanner(out)
	for scr.Scan() {
		line := strings.TrimSpace(scr.Text())
		e.logx.Debugf("ENGINE: %s", line)
		select {
		case lines <- line:
		case <-ctx.Done():
			return
		}
	}
}
