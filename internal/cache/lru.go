// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

// entry is both the stored value and its node in the recency list.
type entry[K comparable, V any] struct {
	key        K
	value      V
	prev, next *entry[K, V]
}

// list is an intrusive doubly-linked list, most recently used at head.
// Not safe for concurrent use.
type list[K comparable, V any] struct {
	head, tail *entry[K, V]
}

func (l *list[K, V]) pushFront(e *entry[K, V]) {
	e.prev = nil
	e.next = l.head
	if l.head != nil {
		l.head.prev = e
	} else {
		l.tail = e
	}
	l.head = e
}

func (l *list[K, V]) moveToFront(e *entry[K, V]) {
	if e == l.head {
		return
	}
	l.remove(e)
	l.pushFront(e)
}

func (l *list[K, V]) remove(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.tail = e.prev
	}
	e.prev, e.next = nil, nil
}

func (l *list[K, V]) back() *entry[K, V] { return l.tail }
