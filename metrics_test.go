package gather_test

import (
	"errors"
	"slices"
	"testing"

	. "github.com/fxsml/gather"
	"github.com/fxsml/gather/internal/test"
)

func TestInstrument_CountsElements(t *testing.T) {
	var m *RunMetrics
	g := Instrument(Filter(func(n int) bool { return n%2 == 0 }),
		func(metrics *RunMetrics) { m = metrics })

	got := GatherSlice([]int{1, 2, 3, 4, 5}, g)

	if !slices.Equal(got, []int{2, 4}) {
		t.Errorf("expected [2 4], got %v", got)
	}
	if m == nil {
		t.Fatalf("expected metrics to be collected")
	}
	if m.In != 5 || m.Out != 2 {
		t.Errorf("expected in=5 out=2, got in=%d out=%d", m.In, m.Out)
	}
	if m.Stopped {
		t.Errorf("expected exhaustion, not a stop signal")
	}
}

func TestInstrument_CountsFinisherOutput(t *testing.T) {
	var m *RunMetrics
	g := Instrument(WindowFixed[int](2), func(metrics *RunMetrics) { m = metrics })

	got := GatherSlice([]int{1, 2, 3}, g)

	if len(got) != 2 {
		t.Fatalf("expected 2 windows, got %v", got)
	}
	if m.Out != 2 {
		t.Errorf("expected finisher output to be counted, got out=%d", m.Out)
	}
}

func TestInstrument_ReportsStop(t *testing.T) {
	var m *RunMetrics
	g := Instrument(TakeWhile(lessThan(3)), func(metrics *RunMetrics) { m = metrics })

	got := slices.Collect(g.Gather(test.Naturals()))

	if !slices.Equal(got, []int{0, 1, 2}) {
		t.Errorf("expected [0 1 2], got %v", got)
	}
	if m == nil {
		t.Fatalf("expected metrics to be collected")
	}
	if !m.Stopped {
		t.Errorf("expected stop signal to be recorded")
	}
}

func TestInstrument_Validation(t *testing.T) {
	expectPanic(t, "nil collector", func() { Instrument(Map(double), nil) })
}

func TestRunMetrics_Indicators(t *testing.T) {
	m := &RunMetrics{}
	if m.Success() != 1 || m.Failure() != 0 || m.Cancel() != 0 {
		t.Errorf("expected success indicators for nil error")
	}

	m = &RunMetrics{Err: ErrCancel}
	if m.Success() != 0 || m.Cancel() != 1 {
		t.Errorf("expected cancel indicators")
	}

	m = &RunMetrics{Err: ErrFailure}
	if m.Failure() != 1 {
		t.Errorf("expected failure indicator")
	}
}

// recordingLogger captures log calls for assertions.
type recordingLogger struct {
	levels   []string
	messages []string
}

func (l *recordingLogger) log(level string) func(string, ...any) {
	return func(msg string, _ ...any) {
		l.levels = append(l.levels, level)
		l.messages = append(l.messages, msg)
	}
}

func (l *recordingLogger) Debug(msg string, args ...any) { l.log("debug")(msg, args...) }
func (l *recordingLogger) Info(msg string, args ...any)  { l.log("info")(msg, args...) }
func (l *recordingLogger) Warn(msg string, args ...any)  { l.log("warn")(msg, args...) }
func (l *recordingLogger) Error(msg string, args ...any) { l.log("error")(msg, args...) }

func TestMetricsLogger_Levels(t *testing.T) {
	logger := &recordingLogger{}
	collect := NewMetricsLogger(LogConfig{Logger: logger})

	collect(&RunMetrics{})
	collect(&RunMetrics{Err: errors.Join(ErrCancel)})
	collect(&RunMetrics{Err: errors.Join(ErrFailure)})

	want := []string{"debug", "warn", "error"}
	if !slices.Equal(logger.levels, want) {
		t.Errorf("expected levels %v, got %v", want, logger.levels)
	}
	wantMessages := []string{"GATHER: Success", "GATHER: Cancel", "GATHER: Failure"}
	if !slices.Equal(logger.messages, wantMessages) {
		t.Errorf("expected messages %v, got %v", wantMessages, logger.messages)
	}
}

func TestGatherChan_WithLogger(t *testing.T) {
	ctx := t.Context()
	in := test.Chan(1, 2, 3)
	logger := &recordingLogger{}

	out := Map(identity[int]).GatherChan(ctx, in, WithLogger[int](LogConfig{Logger: logger}))
	for range out {
	}

	if !slices.Equal(logger.messages, []string{"GATHER: Success"}) {
		t.Errorf("expected one success log, got %v", logger.messages)
	}
	if !slices.Equal(logger.levels, []string{"debug"}) {
		t.Errorf("expected debug level, got %v", logger.levels)
	}
}

func TestMetricsLogger_CustomLevels(t *testing.T) {
	logger := &recordingLogger{}
	collect := NewMetricsLogger(LogConfig{
		Logger:         logger,
		LevelSuccess:   LogLevelInfo,
		MessageSuccess: "run done",
	})

	collect(&RunMetrics{})

	if !slices.Equal(logger.levels, []string{"info"}) {
		t.Errorf("expected [info], got %v", logger.levels)
	}
	if !slices.Equal(logger.messages, []string{"run done"}) {
		t.Errorf("expected [run done], got %v", logger.messages)
	}
}
