// Package analysis evaluates every legal move of the current snapshot in the
// background and keeps the ranked results for the UI to poll.
package analysis

import (
	"context"
	"errors"
	"septic/src/base"
	"septic/src/engine"
	"septic/src/logic/rank"
	"septic/src/logx"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// OracleFactory makes a new, not yet initialized, oracle session.
type OracleFactory func() engine.Oracle

// View is what the UI shows for one frame.
type View struct {
	Entries []rank.Entry // ranked, completed evaluations only
	Done    int
	Total   int  // legal moves, known once listing finished
	Running bool // a job is listing or evaluating
	Err     error
}

// Pending is the number of moves still being evaluated.
func (v View) Pending() int { return v.Total - v.Done }

type Phase int

const (
	PhaseEvaluating Phase = iota // listing moves or waiting for evaluations
	PhaseDone
	PhaseNoMoves
	PhaseOver // the game has ended, nothing to rank
	PhaseFailed
)

// Phase tells the list renderer which of its states to show. Pending
// evaluations and an empty move list are different states.
func (v View) Phase(status base.GameStatus) Phase {
	switch {
	case status.Terminal():
		return PhaseOver
	case v.Err != nil:
		return PhaseFailed
	case v.Running:
		return PhaseEvaluating
	case v.Total == 0:
		return PhaseNoMoves
	}
	return PhaseDone
}

type Analyzer struct {
	rules     engine.Rules
	newOracle OracleFactory
	depth     int
	workers   int
	logx      logx.Logger

	idle chan engine.Oracle // initialized sessions between jobs
	wg   sync.WaitGroup

	mu      sync.Mutex
	gen     uint64
	last    base.Position
	hasLast bool
	cancel  context.CancelFunc
	results []rank.Entry
	ranked  []rank.Entry
	total   int
	running bool
	err     error
}

// New returns an Analyzer. workers == 0 evaluates inline inside Observe.
func New(logger logx.Logger, rules engine.Rules, oracles OracleFactory, depth, workers int) *Analyzer {
	if depth <= 0 {
		depth = engine.DefaultDepth
	}
	if workers < 0 {
		workers = 0
	}
	return &Analyzer{
		rules:     rules,
		newOracle: oracles,
		depth:     depth,
		workers:   workers,
		logx:      logger,
		idle:      make(chan engine.Oracle, max(workers, 1)),
	}
}

// EvaluateMove plays mv on s and asks the oracle about the resulting
// position, flipped back to the perspective of the player who moved.
// Any failure yields Unavailable for this move only.
func EvaluateMove(ctx context.Context, rules engine.Rules, o engine.Oracle, s base.Snapshot, mv base.Move, depth int) (rank.Entry, error) {
	e := rank.Entry{Move: mv}
	next, err := rules.Apply(s, mv)
	if err != nil {
		e.Eval = base.Evaluation{Kind: base.EvalUnavailable}.Flip()
		return e, err
	}
	start := time.Now()
	ev, err := o.Evaluate(ctx, next.Position, depth)
	if err != nil {
		e.Eval = base.Evaluation{Kind: base.EvalUnavailable, Time: time.Since(start).Seconds()}.Flip()
		return e, err
	}
	e.Eval = ev.Flip()
	return e, nil
}

// Observe feeds the snapshot shown to the user. An unchanged position is a
// no-op, a terminal one clears the list, anything else restarts analysis.
// It reports whether the list was reset.
func (a *Analyzer) Observe(s base.Snapshot) bool {
	a.mu.Lock()
	if a.hasLast && a.last == s.Position {
		a.mu.Unlock()
		return false
	}
	a.last, a.hasLast = s.Position, true
	ctx := a.restartLocked()
	if s.Status.Terminal() {
		a.running = false
		a.mu.Unlock()
		return true
	}
	gen := a.gen
	a.mu.Unlock()

	if a.workers == 0 {
		a.run(ctx, gen, s)
		return true
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.run(ctx, gen, s)
	}()
	return true
}

// Reset forgets the last position so the next Observe always runs.
func (a *Analyzer) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hasLast = false
	a.restartLocked()
	a.running = false
}

func (a *Analyzer) restartLocked() context.Context {
	if a.cancel != nil {
		a.cancel()
	}
	var ctx context.Context
	ctx, a.cancel = context.WithCancel(context.Background())
	a.gen++
	a.results, a.ranked = nil, nil
	a.total = 0
	a.err = nil
	a.running = true
	return ctx
}

func (a *Analyzer) View() View {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ranked == nil && len(a.results) > 0 {
		a.ranked = rank.Rank(a.results)
	}
	return View{
		Entries: a.ranked,
		Done:    len(a.results),
		Total:   a.total,
		Running: a.running,
		Err:     a.err,
	}
}

// Wait blocks until background jobs finished or were cancelled.
func (a *Analyzer) Wait() {
	a.wg.Wait()
}

// Close cancels the current job and closes every oracle session.
func (a *Analyzer) Close() {
	a.Reset()
	a.wg.Wait()
	for {
		select {
		case o := <-a.idle:
			o.Close()
		default:
			return
		}
	}
}

func (a *Analyzer) run(ctx context.Context, gen uint64, s base.Snapshot) {
	moves, err := a.rules.LegalMoves(s)
	if err != nil {
		a.logx.Errorf("analysis: legal moves: %v", err)
		a.finish(gen, err)
		return
	}
	if !a.setTotal(gen, len(moves)) {
		return
	}

	jobs := make(chan base.Move)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(a.workers, 1) + 1)

	g.Go(func() error {
		defer close(jobs)
		for _, mv := range moves {
			select {
			case jobs <- mv:
			case <-gctx.Done():
				return nil
			}
		}
		return nil
	})

	n := min(max(a.workers, 1), len(moves))
	for w := 0; w < n; w++ {
		g.Go(func() error {
			a.worker(gctx, gen, s, jobs)
			return nil
		})
	}
	_ = g.Wait()
	a.finish(gen, nil)
}

// worker holds one oracle session for the length of a job.
func (a *Analyzer) worker(ctx context.Context, gen uint64, s base.Snapshot, jobs <-chan base.Move) {
	o, err := a.acquire()
	broken := err != nil
	if broken {
		a.logx.Warnf("analysis: oracle init: %v", err)
	}

	for mv := range jobs {
		if ctx.Err() != nil {
			continue
		}
		var e rank.Entry
		if broken {
			e = rank.Entry{Move: mv, Eval: base.Evaluation{Kind: base.EvalUnavailable}.Flip()}
		} else {
			e, err = EvaluateMove(ctx, a.rules, o, s, mv, a.depth)
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				a.logx.Warnf("analysis: %s: %v", mv, err)
				// the session may be dead; start over with another one
				o.Close()
				if o, err = a.acquire(); err != nil {
					a.logx.Warnf("analysis: oracle init: %v", err)
					broken = true
				}
			}
		}
		a.add(gen, e)
	}

	if !broken {
		a.release(o)
	}
}

func (a *Analyzer) acquire() (engine.Oracle, error) {
	select {
	case o := <-a.idle:
		return o, nil
	default:
	}
	o := a.newOracle()
	if err := o.Init(); err != nil {
		o.Close()
		return nil, err
	}
	return o, nil
}

// release flushes the session and parks it for the next job.
func (a *Analyzer) release(o engine.Oracle) {
	o.Flush()
	select {
	case a.idle <- o:
	default:
		o.Close()
	}
}

func (a *Analyzer) setTotal(gen uint64, n int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if gen != a.gen {
		return false
	}
	a.total = n
	return true
}

func (a *Analyzer) add(gen uint64, e rank.Entry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if gen != a.gen {
		return
	}
	a.results = append(a.results, e)
	a.ranked = nil
}

func (a *Analyzer) finish(gen uint64, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if gen != a.gen {
		return
	}
	a.running = false
	if err != nil && !errors.Is(err, context.Canceled) {
		a.err = err
	}
}
