// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"time"

	"cogentcore.org/linklabel/bitflag"
)

// Types determines the type of input event.
// The touch types follow the phases of a single touch sequence:
// a start, any number of moves, and then either an end or a cancel.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// TouchStart is when a touch starts.
	TouchStart

	// TouchMove is when a touch moves. These are not unique:
	// the Loop replaces a pending move with the newer one.
	TouchMove

	// TouchEnd is when a touch ends normally by being released.
	TouchEnd

	// TouchCancel is when the system cancels a touch, for example
	// because a scroll view took over the gesture.
	TouchCancel

	// Custom is an event that carries arbitrary Data.
	// The Loop runs Custom events whose Data is a func().
	Custom

	TypesN
)

var typeNames = [...]string{"UnknownType", "TouchStart", "TouchMove", "TouchEnd", "TouchCancel", "Custom"}

func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return "UnknownType"
	}
	return typeNames[tp]
}

// EventFlags encode boolean event properties
type EventFlags int32

const (
	// Handled indicates that the event has been handled
	Handled EventFlags = iota

	// Unique indicates that the event is Unique and not
	// to be compressed with like events.
	Unique
)

// Event is the interface for all events.
type Event interface {
	// Type returns the type of event.
	Type() Types

	// Time returns the time at which the event was generated.
	Time() time.Time

	// IsHandled returns whether this event has already been handled.
	IsHandled() bool

	// SetHandled marks the event as handled, which stops the
	// remaining listeners from being called.
	SetHandled()

	// IsUnique returns whether the event is never compressed.
	IsUnique() bool
}

// Base is the base type for events.
type Base struct {
	// Typ is the type of event.
	Typ Types

	// Flags has the event flags.
	Flags int64

	// GenTime is the time at which the event was generated.
	GenTime time.Time

	// Data is any additional data for the event.
	Data any
}

// Init sets the type and the generation time.
func (ev *Base) Init(typ Types) {
	ev.Typ = typ
	ev.GenTime = time.Now()
}

func (ev *Base) Type() Types { return ev.Typ }

func (ev *Base) Time() time.Time { return ev.GenTime }

func (ev *Base) IsHandled() bool { return bitflag.Has(ev.Flags, Handled) }

func (ev *Base) SetHandled() { bitflag.Set(&ev.Flags, Handled) }

func (ev *Base) IsUnique() bool { return bitflag.Has(ev.Flags, Unique) }

// SetUnique marks the event as never compressed.
func (ev *Base) SetUnique() { bitflag.Set(&ev.Flags, Unique) }
