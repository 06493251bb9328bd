// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
)

// CustomEvent is a user-specified event that can be sent and received
// as needed, and contains a Data field for arbitrary data.
// A CustomEvent whose Data is a func() is run by the [Loop].
type CustomEvent struct {
	Base
}

// NewCustom returns a new unique custom event with the given data.
func NewCustom(data any) *CustomEvent {
	ce := &CustomEvent{}
	ce.Init(Custom)
	ce.SetUnique()
	ce.Data = data
	return ce
}

func (ce *CustomEvent) String() string {
	return fmt.Sprintf("%v{Data: %T, Time: %v}", ce.Type(), ce.Data, ce.Time())
}
