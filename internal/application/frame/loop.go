package frame

import (
	"context"
	"time"

	"github.com/penwyp/go-linechart/internal/util"
)

// Loop is a host event loop. Posted tasks and frame callbacks all run on the
// goroutine calling Run, so the controllers they drive need no locking.
type Loop struct {
	queue

	interval   time.Duration
	tasks      chan func()
	afterFrame func()
}

// NewLoop creates a loop refreshing rate times per second
func NewLoop(rate float64) *Loop {
	if rate <= 0 {
		rate = 60
	}
	return &Loop{
		interval: time.Duration(float64(time.Second) / rate),
		tasks:    make(chan func(), 256),
	}
}

// AfterFrame registers fn to run after every frame that executed callbacks
func (l *Loop) AfterFrame(fn func()) {
	l.afterFrame = fn
}

// Post queues a task for the loop goroutine. It blocks when the task buffer
// is full.
func (l *Loop) Post(task func()) {
	l.tasks <- task
}

// Run processes tasks and frames until ctx is done
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	util.LogDebugf("Frame loop started, interval %v", l.interval)
	for {
		select {
		case <-ctx.Done():
			util.LogDebug("Frame loop stopped")
			return ctx.Err()

		case task := <-l.tasks:
			task()

		case now := <-ticker.C:
			if l.run(now) > 0 && l.afterFrame != nil {
				l.afterFrame()
			}
		}
	}
}
