package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestTickerSchedulerRunsJob(t *testing.T) {
	t.Parallel()

	fired := make(chan time.Time, 8)
	sched := NewTickerScheduler(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := sched.Start(ctx, func(trigger time.Time) {
		select {
		case fired <- trigger:
		default:
		}
	}); err != nil {
		t.Fatalf("Start error: %v", err)
	}

	// first run is immediate, second comes from the ticker
	for i := 0; i < 2; i++ {
		select {
		case <-fired:
		case <-time.After(2 * time.Second):
			t.Fatalf("job did not fire (run %d)", i+1)
		}
	}

	if err := sched.Stop(context.Background()); err != nil {
		t.Fatalf("Stop error: %v", err)
	}
}

func TestTickerSchedulerStopHaltsJob(t *testing.T) {
	t.Parallel()

	var fired atomic.Int64
	sched := NewTickerScheduler(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := sched.Start(ctx, func(time.Time) {
		fired.Add(1)
	}); err != nil {
		t.Fatalf("Start error: %v", err)
	}

	// Wait for the immediate run, then stop. Stop clears the stop
	// channel field; the goroutine must still observe the close and
	// fire no further runs.
	deadline := time.After(2 * time.Second)
	for fired.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("job did not fire")
		case <-time.After(time.Millisecond):
		}
	}

	if err := sched.Stop(context.Background()); err != nil {
		t.Fatalf("Stop error: %v", err)
	}

	seen := fired.Load()
	time.Sleep(50 * time.Millisecond)
	if got := fired.Load(); got > seen+1 {
		t.Fatalf("job kept firing after Stop: %d runs before, %d after", seen, got)
	}
}

func TestTickerSchedulerStopWithoutStart(t *testing.T) {
	t.Parallel()

	sched := NewTickerScheduler(time.Second)
	if err := sched.Stop(context.Background()); err != nil {
		t.Fatalf("Stop error: %v", err)
	}
}

func TestTickerSchedulerNilJob(t *testing.T) {
	t.Parallel()

	sched := NewTickerScheduler(time.Second)
	if err := sched.Start(context.Background(), nil); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	if err := sched.Stop(context.Background()); err != nil {
		t.Fatalf("Stop error: %v", err)
	}
}
