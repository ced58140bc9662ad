package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunsJobImmediatelyAndOnInterval(t *testing.T) {
	var runs atomic.Int32
	s := NewScheduler()
	s.AddJob("tick", 10*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
	s.Stop()

	after := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestScheduler_RunOnceSurvivesFailures(t *testing.T) {
	var order []string
	s := NewScheduler()
	s.AddJob("fails", time.Hour, func(ctx context.Context) error {
		order = append(order, "fails")
		return errors.New("boom")
	})
	s.AddJob("panics", time.Hour, func(ctx context.Context) error {
		order = append(order, "panics")
		panic("unexpected")
	})
	s.AddJob("ok", time.Hour, func(ctx context.Context) error {
		order = append(order, "ok")
		return nil
	})

	s.RunOnce(context.Background())
	assert.Equal(t, []string{"fails", "panics", "ok"}, order)
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	s := NewScheduler()
	s.Stop()
}
