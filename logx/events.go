package logx

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Logger is a secondary, optional diagnostic channel for a run: it never
// replaces a caller's own report callback, it just narrates the same
// events to a writer in the channel-tagged style the rest of this
// package renders. The zero value is disabled (every method is then a
// no-op), so embedding a Logger in a struct never requires a nil check.
// Methods are safe to call concurrently, since islands report events
// from their own goroutines.
type Logger struct {
	mu      sync.Mutex
	w       io.Writer
	enabled bool
}

// New returns a disabled Logger. Call Enable or EnableFromEnv to turn it
// on; leaving it disabled keeps every method call a cheap no-op.
func New() *Logger {
	return &Logger{w: os.Stderr}
}

// Enable turns the logger on (or off) and is safe to call at any point.
func (l *Logger) Enable(on bool) *Logger {
	l.mu.Lock()
	l.enabled = on
	l.mu.Unlock()
	return l
}

// EnableFromEnv turns the logger on when the GOGP_LOG environment
// variable is set to a non-empty value, mirroring the convention other
// ambient concerns in this module use for opt-in verbosity.
func (l *Logger) EnableFromEnv() *Logger {
	return l.Enable(os.Getenv("GOGP_LOG") != "")
}

func (l *Logger) line(ch, msg string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled {
		return
	}
	ts := TS(time.Now().UTC().Format("15:04:05.000"))
	fmt.Fprintf(l.w, "%s %s %s\n", ts, Channel(ch), msg)
}

// RunStart announces the island/population shape a run begins with.
func (l *Logger) RunStart(islands, populationSize int) {
	l.line("RUN ", Infof("starting %d island(s) x %d individuals", islands, populationSize))
}

// Generation reports a single island's best-of-generation fitness.
func (l *Logger) Generation(island, gen int, fitness float64) {
	l.line("GEN ", fmt.Sprintf("island %d gen %d best=%s", island, gen, FitnessColor(fitness, 1.0)))
}

// Migration announces a completed migration round.
func (l *Logger) Migration(round, islands int) {
	l.line("MIG ", Infof("round %d: migrated one individual across %d islands", round, islands))
}

// BestUpdate reports a new or re-confirmed global best after a
// migration round, mirroring the ReportBest event shape.
func (l *Logger) BestUpdate(round int, fitness float64) {
	l.line("RUN ", fmt.Sprintf("round %d global best=%s", round, FitnessColor(fitness, 1.0)))
}

// FitnessFailure reports a caller fitness callback error.
func (l *Logger) FitnessFailure(err error) {
	l.line("ERR ", Errorf("fitness callback failed: %v", err))
}

// Done announces run completion with the wall-clock elapsed and the
// final best fitness observed.
func (l *Logger) Done(elapsed time.Duration, fitness float64) {
	l.line("RUN ", fmt.Sprintf("finished in %s, best=%s", FormatDuration(elapsed), FitnessColor(fitness, 1.0)))
}
