package cron

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRegisterAndRunJob(t *testing.T) {
	runs := 0
	Register("test:warm", Job{Schedule: "@every 1h", Run: func(context.Context) error {
		runs++
		return nil
	}})
	defer Unregister("test:warm")

	j, ok := Jobs()["test:warm"]
	if !ok || j.Schedule != "@every 1h" {
		t.Fatalf("job = %+v, registered %v", j, ok)
	}
	if err := RunJob(context.Background(), "test:warm"); err != nil {
		t.Fatalf("RunJob: %v", err)
	}
	if runs != 1 {
		t.Errorf("runs = %d, want 1", runs)
	}
}

func TestRunJobTimeoutAndError(t *testing.T) {
	Register("test:slow", Job{Schedule: "@hourly", Timeout: 10 * time.Millisecond, Run: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}})
	defer Unregister("test:slow")

	err := RunJob(context.Background(), "test:slow")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
}

func TestRunJobUnknown(t *testing.T) {
	defer Unregister("test:missing") // reopens the registry locked by RunJob
	if err := RunJob(context.Background(), "test:missing"); err == nil {
		t.Fatal("want error for an unknown job")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test:dup", Job{Schedule: "@hourly", Run: func(context.Context) error { return nil }})
	defer Unregister("test:dup")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate")
		}
	}()
	Register("test:dup", Job{Schedule: "@daily", Run: func(context.Context) error { return nil }})
}

func TestNamesSorted(t *testing.T) {
	noop := func(context.Context) error { return nil }
	Register("test:b", Job{Schedule: "@hourly", Run: noop})
	defer Unregister("test:b")
	Register("test:a", Job{Schedule: "@hourly", Run: noop})
	defer Unregister("test:a")

	var got []string
	for _, n := range Names() {
		if n == "test:a" || n == "test:b" {
			got = append(got, n)
		}
	}
	if len(got) != 2 || got[0] != "test:a" {
		t.Errorf("Names order = %v, want [test:a test:b]", got)
	}
}

func TestStartCron(t *testing.T) {
	Register("test:start", Job{Schedule: "@every 1h", Run: func(context.Context) error { return nil }})
	defer Unregister("test:start")

	c, err := StartCron()
	if err != nil {
		t.Fatalf("StartCron: %v", err)
	}
	defer c.Stop()
	if len(c.Entries()) == 0 {
		t.Error("no entries scheduled")
	}
}

func TestStartCronBadSchedule(t *testing.T) {
	Register("test:bad", Job{Schedule: "every now and then", Run: func(context.Context) error { return nil }})
	defer Unregister("test:bad")

	if _, err := StartCron(); err == nil {
		t.Error("want error for an invalid schedule")
	}
}
