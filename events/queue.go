// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"sync/atomic"
)

// queue is a lock-free multi-producer FIFO of events, with a single
// consumer (the loop goroutine). The head is always a sentinel node
// whose value has already been consumed.
// See https://github.com/fyne-io/fyne/blob/master/internal/async/queue_canvasobject.go
type queue struct {
	head atomic.Pointer[node]
	tail atomic.Pointer[node]
	n    atomic.Int64
}

type node struct {
	next atomic.Pointer[node]
	ev   Event
}

var nodes = sync.Pool{New: func() any { return &node{} }}

func newQueue() *queue {
	q := &queue{}
	s := &node{}
	q.head.Store(s)
	q.tail.Store(s)
	return q
}

// push appends ev. It is safe to call from any goroutine.
func (q *queue) push(ev Event) {
	nd := nodes.Get().(*node)
	nd.next.Store(nil)
	nd.ev = ev
	for {
		tail := q.tail.Load()
		next := tail.next.Load()
		if tail != q.tail.Load() {
			continue
		}
		if next != nil {
			// tail is lagging behind: help it along
			q.tail.CompareAndSwap(tail, next)
			continue
		}
		if tail.next.CompareAndSwap(nil, nd) {
			q.tail.CompareAndSwap(tail, nd)
			q.n.Add(1)
			return
		}
	}
}

// pop removes and returns the oldest event, or nil.
// Only the loop goroutine may call it.
func (q *queue) pop() Event {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		next := head.next.Load()
		if head != q.head.Load() {
			continue
		}
		if next == nil {
			return nil
		}
		if head == tail {
			q.tail.CompareAndSwap(tail, next)
			continue
		}
		ev := next.ev
		if q.head.CompareAndSwap(head, next) {
			next.ev = nil
			q.n.Add(-1)
			nodes.Put(head)
			return ev
		}
	}
}

// drain pops every queued event. Consecutive non-unique events of
// the same type are compressed to the last one, so that a burst of
// touch moves is delivered as a single move.
func (q *queue) drain() []Event {
	var batch []Event
	for ev := q.pop(); ev != nil; ev = q.pop() {
		if n := len(batch); n > 0 && compressible(batch[n-1], ev) {
			batch[n-1] = ev
			continue
		}
		batch = append(batch, ev)
	}
	return batch
}

func compressible(last, ev Event) bool {
	return !ev.IsUnique() && !last.IsUnique() && last.Type() == ev.Type()
}

// len returns the number of queued events.
func (q *queue) len() int {
	return int(q.n.Load())
}
