// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sort"
	"time"
)

// Timer is a pending call scheduled with a [Scheduler].
type Timer interface {
	// Cancel prevents the call from happening if it has not
	// already happened. It is safe to call more than once.
	Cancel()
}

// Scheduler runs functions after a delay, on the same goroutine
// that owns the label. It is implemented by [Loop] and [ManualClock].
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// ManualClock is a [Scheduler] whose time only moves when
// [ManualClock.Advance] is called. Due functions run synchronously
// inside Advance, in order of their due time.
type ManualClock struct {
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	due  time.Duration
	seq  int
	fn   func()
	done bool
}

func (mt *manualTimer) Cancel() {
	mt.done = true
}

// AfterFunc schedules fn to run once the clock has advanced by d.
func (mc *ManualClock) AfterFunc(d time.Duration, fn func()) Timer {
	mc.seq++
	mt := &manualTimer{due: mc.now + d, seq: mc.seq, fn: fn}
	mc.timers = append(mc.timers, mt)
	return mt
}

// Now returns the total time the clock has been advanced.
func (mc *ManualClock) Now() time.Duration {
	return mc.now
}

// Pending returns the number of scheduled functions that have
// neither run nor been canceled.
func (mc *ManualClock) Pending() int {
	n := 0
	for _, mt := range mc.timers {
		if !mt.done {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d and runs every function that
// becomes due, including ones scheduled by the functions it runs.
// It returns the number of functions run.
func (mc *ManualClock) Advance(d time.Duration) int {
	end := mc.now + d
	ran := 0
	for {
		mt := mc.next(end)
		if mt == nil {
			break
		}
		mc.now = mt.due
		mt.done = true
		mt.fn()
		ran++
	}
	mc.now = end
	return ran
}

// next returns the earliest pending timer due at or before end.
func (mc *ManualClock) next(end time.Duration) *manualTimer {
	live := mc.timers[:0]
	for _, mt := range mc.timers {
		if !mt.done {
			live = append(live, mt)
		}
	}
	mc.timers = live
	sort.SliceStable(live, func(i, j int) bool {
		if live[i].due != live[j].due {
			return live[i].due < live[j].due
		}
		return live[i].seq < live[j].seq
	})
	if len(live) == 0 || live[0].due > end {
		return nil
	}
	return live[0]
}
