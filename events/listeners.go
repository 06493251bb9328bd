// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Handler handles an event and reports whether it consumed it.
type Handler func(ev Event) bool

// Listeners holds the handlers registered for each event type.
// The zero value is ready to use.
type Listeners map[Types][]Handler

// Add registers fn for each of the given event types.
func (ls *Listeners) Add(fn Handler, types ...Types) {
	if *ls == nil {
		*ls = make(Listeners)
	}
	for _, tp := range types {
		(*ls)[tp] = append((*ls)[tp], fn)
	}
}

// Call offers ev to the handlers for its type, the most recently
// added first, until one of them consumes it. A consumed event is
// marked as handled, and events that are already handled are skipped.
// It returns whether the event is handled.
func (ls Listeners) Call(ev Event) bool {
	if ev.IsHandled() {
		return true
	}
	hs := ls[ev.Type()]
	for i := len(hs) - 1; i >= 0; i-- {
		if hs[i](ev) {
			ev.SetHandled()
			return true
		}
	}
	return false
}
