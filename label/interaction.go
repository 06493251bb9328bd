// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package label

import (
	"time"

	"cogentcore.org/linklabel/events"
	"cogentcore.org/linklabel/math32"
	"cogentcore.org/linklabel/text/links"
)

// pressStates are the states of a touch on a link.
type pressStates int32

const (
	// idle is when no touch is tracked.
	idle pressStates = iota

	// pressed is when a touch started on a link, and has not
	// moved out of the movement tolerance.
	pressed

	// activated is while a tap is being dispatched.
	activated

	// longPressed is after the long press fired, until release.
	longPressed
)

var pressStateNames = [...]string{"idle", "pressed", "activated", "long-pressed"}

func (ps pressStates) String() string {
	return pressStateNames[ps]
}

// interaction is the state of the touch being tracked.
type interaction struct {
	state pressStates

	// link is the index of the pressed link.
	link int

	// id is the touch id.
	id int

	// start and last are the first and the latest touch points.
	start, last math32.Vector2

	// timer is the pending long press.
	timer events.Timer
}

// linkReplaced keeps the pressed link index valid after the link at
// index i was removed and a link was appended at index last.
// A pressed link that is replaced stays pressed as its replacement.
func (in *interaction) linkReplaced(i, last int) {
	switch {
	case in.link < 0 || i < 0:
	case i == in.link:
		in.link = last
	case i < in.link:
		in.link--
	}
}

func (in *interaction) reset() {
	if in.timer != nil {
		in.timer.Cancel()
	}
	*in = interaction{link: -1}
}

// cancelTouch stops tracking the current touch without any event,
// restoring the normal style of the pressed link.
func (l *Label) cancelTouch() {
	if l.touch.state == idle {
		return
	}
	l.logState("cancel")
	l.touch.reset()
	l.refresh()
}

// Listen adds listeners for touch events that call [Label.HandleTouch],
// marking the events that it consumes as handled.
func (l *Label) Listen(ls *events.Listeners) {
	ls.Add(func(ev events.Event) bool {
		tc, ok := ev.(*events.Touch)
		return ok && l.HandleTouch(tc)
	}, events.TouchStart, events.TouchMove, events.TouchEnd, events.TouchCancel)
}

// HandleTouch handles a touch event in label coordinates, and returns
// true if the label consumed it. Only one touch is tracked at a time,
// and only touches that start on a link are consumed.
//
// A touch that is released on the link it started on, before the
// long press duration and without moving beyond the movement
// tolerance, is a tap. A touch that is held past the long press
// duration is a long press, and no tap follows on release. A touch
// that moves beyond the tolerance, or is canceled, produces no event.
func (l *Label) HandleTouch(ev *events.Touch) bool {
	switch ev.Type() {
	case events.TouchStart:
		return l.touchStart(ev)
	case events.TouchMove:
		if !l.tracking(ev) {
			return false
		}
		l.touch.last = ev.Where
		if l.touch.state == pressed && ev.Where.Sub(l.touch.start).Length() > l.cfg.Touch.MovementTolerance {
			l.cancelTouch()
		}
		return true
	case events.TouchEnd:
		if !l.tracking(ev) {
			return false
		}
		l.touchEnd(ev)
		return true
	case events.TouchCancel:
		if !l.tracking(ev) {
			return false
		}
		l.cancelTouch()
		return true
	}
	return false
}

// tracking returns true if the event belongs to the tracked touch.
func (l *Label) tracking(ev *events.Touch) bool {
	return l.touch.state != idle && ev.ID == l.touch.id
}

func (l *Label) touchStart(ev *events.Touch) bool {
	if l.touch.state != idle {
		return false
	}
	i := l.linkIndexAt(ev.Where, l.cfg.tolerance())
	if i < 0 {
		return false
	}
	l.touch = interaction{state: pressed, link: i, id: ev.ID, start: ev.Where, last: ev.Where}
	if l.sched != nil {
		l.touch.timer = l.sched.AfterFunc(time.Duration(l.cfg.Touch.LongPressDuration), l.longPress)
	}
	l.logState("press")
	l.refresh()
	return true
}

func (l *Label) longPress() {
	if l.touch.state != pressed {
		return
	}
	l.touch.state = longPressed
	l.touch.timer = nil
	lk := l.links.At(l.touch.link)
	lev := lk.Event(links.LongPress, l.touch.last)
	l.logState("long press")
	switch {
	case lk.OnLongPress != nil:
		lk.OnLongPress(lev)
	case l.onLongPress[lk.Type] != nil:
		l.onLongPress[lk.Type](lev)
	case l.onLongPressDefault != nil:
		l.onLongPressDefault(lev)
	}
}

func (l *Label) touchEnd(ev *events.Touch) {
	if l.touch.state != pressed {
		l.cancelTouch()
		return
	}
	i := l.touch.link
	if l.linkIndexAt(ev.Where, l.cfg.tolerance()) != i {
		l.cancelTouch()
		return
	}
	l.touch.state = activated
	lk := l.links.At(i).Clone()
	l.logState("tap")
	l.touch.reset()
	l.refresh()
	lev := lk.Event(links.Tap, ev.Where)
	switch {
	case lk.OnTap != nil:
		lk.OnTap(lev)
	case l.onSelect[lk.Type] != nil:
		l.onSelect[lk.Type](lev)
	case l.onSelectDefault != nil:
		l.onSelectDefault(lev)
	}
}
