package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps and level
// labels in the terminal palette.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
	styles := log.DefaultStyles()
	styles.Levels[log.DebugLevel] = styles.Levels[log.DebugLevel].Foreground(colorDim)
	styles.Levels[log.InfoLevel] = styles.Levels[log.InfoLevel].Foreground(colorCyan)
	styles.Levels[log.WarnLevel] = styles.Levels[log.WarnLevel].Foreground(colorYellow)
	styles.Levels[log.ErrorLevel] = styles.Levels[log.ErrorLevel].Foreground(colorRed)
	styles.Keys["stage"] = lipgloss.NewStyle().Foreground(colorGray)
	l.SetStyles(styles)
	return l
}

// stageTimer collects how long each report stage took (import, graph,
// build, write) and logs them as one line when the command finishes.
type stageTimer struct {
	logger *log.Logger
	start  time.Time
	stages []string
	times  map[string]time.Duration
}

func newStageTimer(l *log.Logger) *stageTimer {
	return &stageTimer{logger: l, start: time.Now(), times: map[string]time.Duration{}}
}

// begin starts timing stage and returns the function that ends it.
func (t *stageTimer) begin(stage string) func() {
	start := time.Now()
	return func() { t.record(stage, time.Since(start)) }
}

// record adds a duration measured elsewhere. Zero durations are skipped,
// so stages that did not run stay out of the summary.
func (t *stageTimer) record(stage string, d time.Duration) {
	if d <= 0 {
		return
	}
	if _, ok := t.times[stage]; !ok {
		t.stages = append(t.stages, stage)
	}
	t.times[stage] += d
	t.logger.Debug("stage finished", "stage", stage, "duration", d.Round(time.Microsecond))
}

// done logs msg with the total time and each stage in the order first seen.
func (t *stageTimer) done(msg string, keyvals ...any) {
	for _, s := range t.stages {
		keyvals = append(keyvals, s, t.times[s].Round(time.Microsecond))
	}
	keyvals = append(keyvals, "total", time.Since(t.start).Round(time.Millisecond))
	t.logger.Info(msg, keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger in ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
