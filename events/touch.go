// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/linklabel/math32"
)

// Touch is a touch event for one finger, in the coordinates
// of the label that receives it.
type Touch struct {
	Base

	// ID identifies the touch sequence this event belongs to.
	ID int

	// Where is the location of the touch.
	Where math32.Vector2
}

// NewTouch returns a new touch event of the given type.
// Start, end and cancel events are unique; moves are not.
func NewTouch(typ Types, id int, where math32.Vector2) *Touch {
	ev := &Touch{ID: id, Where: where}
	ev.Init(typ)
	if typ != TouchMove {
		ev.SetUnique()
	}
	return ev
}

func (ev *Touch) String() string {
	return fmt.Sprintf("%v{ID: %d, Pos: %v, Time: %v}", ev.Type(), ev.ID, ev.Where, ev.Time().Format("04:05"))
}
