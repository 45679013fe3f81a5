// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"sync"

	"github.com/black-desk/fsevwatch/pkg/types"
	"github.com/eapache/queue"
)

// Queue is an unbounded FIFO. Sending never blocks; once the receiving
// side calls Close every send fails with ErrDisconnected.
type Queue struct {
	mu     sync.Mutex
	items  *queue.Queue
	closed bool
	// signal has a token whenever items may be non-empty.
	signal chan struct{}
}

func NewQueue() *Queue {
	return &Queue{
		items:  queue.New(),
		signal: make(chan struct{}, 1),
	}
}

func (q *Queue) HandleEvent(result types.Result) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrDisconnected
	}

	q.items.Add(result)

	select {
	case q.signal <- struct{}{}:
	default:
	}

	return nil
}

// Receive waits for the next result. It returns ErrDisconnected once the
// queue is closed and drained.
func (q *Queue) Receive(ctx context.Context) (ret types.Result, err error) {
	for {
		var ok bool
		ret, ok, err = q.TryReceive()
		if ok || err != nil {
			return
		}

		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		case <-q.signal:
		}
	}
}

// TryReceive returns the next result without waiting.
func (q *Queue) TryReceive() (ret types.Result, ok bool, err error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.items.Length() == 0 {
		if q.closed {
			err = ErrDisconnected
		}
		return
	}

	ret = q.items.Remove().(types.Result)
	ok = true

	if q.items.Length() == 0 {
		return
	}

	select {
	case q.signal <- struct{}{}:
	default:
	}

	return
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.items.Length()
}

// Close disconnects the queue. Results already queued can still be
// received.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}

	q.closed = true

	select {
	case q.signal <- struct{}{}:
	default:
	}
}
