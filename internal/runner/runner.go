package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"advent2020/internal/log"
	"advent2020/internal/solve"
)

// Result is the terminal record for one executed day.
type Result struct {
	Day   int
	Title string

	// Part1/Part2 hold the computed answers; a part that was not
	// requested or did not complete is empty.
	Part1 string
	Part2 string

	State    DayState
	Err      error
	Duration time.Duration
}

// Runner executes day solutions against a data directory.
type Runner struct {
	Registry *solve.Registry
	DataDir  string

	// Part selects which parts run: 1, 2, or 0 for both.
	Part int

	// Jobs bounds parallelism in RunAll. 1 runs serially.
	Jobs int

	Logger zerolog.Logger

	mu    sync.Mutex
	state RunState
}

// InputPath returns the conventional input location for a day:
// <dataDir>/dayNN/input.txt with a zero-padded day number.
func InputPath(dataDir string, day int) string {
	return filepath.Join(dataDir, fmt.Sprintf("day%02d", day), "input.txt")
}

// RunDay executes a single registered day and returns its result.
// An unregistered day is the caller's error, not a failed Result.
func (r *Runner) RunDay(ctx context.Context, day int) (Result, error) {
	sol, ok := r.Registry.Lookup(day)
	if !ok {
		return Result{}, fmt.Errorf("no solution registered for day %d", day)
	}
	return r.execute(ctx, sol), nil
}

// RunAll executes every registered day and returns results in ascending
// day order. A day failing does not abort the run; infrastructure errors
// (cancellation, state machine violations) do.
func (r *Runner) RunAll(ctx context.Context) ([]Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	days := r.Registry.Days()

	r.mu.Lock()
	r.state = make(RunState, len(days))
	for _, d := range days {
		r.state[d] = DayPending
	}
	r.mu.Unlock()

	results := make(map[int]Result, len(days))

	jobs := r.Jobs
	if jobs < 1 {
		jobs = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, day := range days {
		day := day
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("run cancelled: %w", err)
			}
			sol, _ := r.Registry.Lookup(day)

			if err := r.transition(day, DayPending, DayRunning); err != nil {
				return err
			}
			res := r.execute(gctx, sol)
			if err := r.transition(day, DayRunning, res.State); err != nil {
				return err
			}

			r.mu.Lock()
			results[day] = res
			r.mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ordered := make([]Result, 0, len(results))
	for _, day := range days {
		ordered = append(ordered, results[day])
	}
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Day < ordered[j].Day })
	return ordered, nil
}

func (r *Runner) transition(day int, from, to DayState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Transition(r.state, day, from, to)
}

// execute runs the selected parts of one solution. All failures end up
// in the Result; execute never returns an invalid Result.
func (r *Runner) execute(ctx context.Context, sol solve.Solution) Result {
	logger := log.WithDay(r.Logger, sol.Day)
	res := Result{Day: sol.Day, Title: sol.Title, State: DayFailed}
	start := time.Now()
	defer func() {
		res.Duration = time.Since(start)
	}()

	in, err := solve.Load(InputPath(r.DataDir, sol.Day))
	if err != nil {
		logger.Warn().Err(err).Msg("input unavailable")
		res.Err = err
		return res
	}

	parts := []int{1, 2}
	if r.Part == 1 || r.Part == 2 {
		parts = []int{r.Part}
	}
	for _, p := range parts {
		if err := ctx.Err(); err != nil {
			res.Err = err
			return res
		}
		fn := sol.Part(p)
		if fn == nil {
			// Day 25 has no part 2.
			continue
		}
		answer, err := runPart(fn, in)
		if err != nil {
			logger.Error().Err(err).Int("part", p).Msg("solve failed")
			res.Err = fmt.Errorf("part %d: %w", p, err)
			return res
		}
		logger.Debug().Int("part", p).Str("answer", answer).Msg("solved")
		switch p {
		case 1:
			res.Part1 = answer
		case 2:
			res.Part2 = answer
		}
	}

	res.State = DayCompleted
	return res
}

// runPart isolates a single part invocation so a panicking solution is
// reported as that day's failure instead of tearing down the whole run.
func runPart(fn solve.PartFunc, in *solve.Input) (answer string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			answer = ""
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return fn(in)
}
