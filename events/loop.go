// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"context"
	"log/slog"
	"time"
)

// Loop is a single-threaded event loop. Events and functions can be
// sent to it from any goroutine, and are processed one at a time on
// the goroutine that calls [Loop.Run]. It implements [Scheduler] by
// posting timer callbacks back onto the loop.
type Loop struct {
	// Listeners are called for each event that is not a function.
	Listeners Listeners

	queue *queue
	wake  chan struct{}
}

// NewLoop returns a new, empty loop.
func NewLoop() *Loop {
	return &Loop{queue: newQueue(), wake: make(chan struct{}, 1)}
}

// Send adds an event to the queue. It is safe to call from any goroutine.
func (l *Loop) Send(ev Event) {
	l.queue.push(ev)
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Post adds a function to run on the loop goroutine.
// It is safe to call from any goroutine.
func (l *Loop) Post(fn func()) {
	l.Send(NewCustom(fn))
}

// Run processes events until the context is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.RunPending()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

// RunPending processes the events that are currently queued,
// returning the number processed. Consecutive non-unique events of
// the same type are compressed to the last one.
func (l *Loop) RunPending() int {
	batch := l.queue.drain()
	for _, ev := range batch {
		l.dispatch(ev)
	}
	return len(batch)
}

func (l *Loop) dispatch(ev Event) {
	if ce, ok := ev.(*CustomEvent); ok {
		if fn, ok := ce.Data.(func()); ok {
			fn()
			return
		}
	}
	if !l.Listeners.Call(ev) {
		slog.Debug("events: unhandled", "type", ev.Type())
	}
}

// loopTimer is a timer whose callback is posted to the loop.
// canceled is only read and written on the loop goroutine.
type loopTimer struct {
	timer    *time.Timer
	canceled bool
}

// Cancel must be called on the loop goroutine. After it returns,
// the function will not run, even if the timer already fired and
// its callback is waiting in the queue.
func (lt *loopTimer) Cancel() {
	lt.canceled = true
	lt.timer.Stop()
}

// AfterFunc runs fn on the loop goroutine after duration d.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	lt := &loopTimer{}
	lt.timer = time.AfterFunc(d, func() {
		l.Post(func() {
			if lt.canceled {
				return
			}
			lt.canceled = true
			fn()
		})
	})
	return lt
}
