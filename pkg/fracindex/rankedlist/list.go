// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package rankedlist implements a reorderable list of labeled items whose
// order is persisted entirely in fractional index keys. Moving an item
// rewrites only that item's key.
package rankedlist

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/fracindex/pkg/fracindex"
	"github.com/cockroachdb/fracindex/pkg/util/log"
	"github.com/cockroachdb/redact"
	"github.com/google/btree"
)

// The degree of the items btree.
const itemsBtreeDegree = 16

// Direction is the order in which items are displayed.
type Direction int8

const (
	// Ascending displays the smallest key first.
	Ascending Direction = iota
	// Descending displays the largest key first.
	Descending
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

// SafeValue implements the redact.SafeValue interface.
func (Direction) SafeValue() {}

// Item is a labeled entry of a List.
type Item struct {
	ID    string
	Label string
	Key   fracindex.Key
}

// MoveResult describes a completed move.
type MoveResult struct {
	ID       string
	Label    string
	OldKey   fracindex.Key
	NewKey   fracindex.Key
	NewIndex int
}

// itemEntry adapts Item to btree.Item.
type itemEntry struct {
	Item
}

// Less implements the btree.Item interface.
func (e *itemEntry) Less(than btree.Item) bool {
	return e.Key.Less(than.(*itemEntry).Key)
}

// List is an ordered set of items. Its display order always matches the
// key order in the current direction. A List is not safe for concurrent use.
type List struct {
	initialLabels  []string
	items          *btree.BTree
	dir            Direction
	nextItemNumber int
}

// New creates a list holding one item per label, keyed by consecutive
// After steps from the default key.
func New(labels ...string) *List {
	l := &List{initialLabels: append([]string(nil), labels...)}
	l.Reset()
	return l
}

// Reset restores the items of New and the ascending direction.
func (l *List) Reset() {
	l.items = btree.New(itemsBtreeDegree)
	l.dir = Ascending
	key := fracindex.Default()
	for i, label := range l.initialLabels {
		if i > 0 {
			key = fracindex.MustAfter(key)
		}
		l.items.ReplaceOrInsert(&itemEntry{Item{ID: itemID(i + 1), Label: label, Key: key}})
	}
	l.nextItemNumber = len(l.initialLabels) + 1
}

func itemID(n int) string {
	return fmt.Sprintf("item-%d", n)
}

// Len returns the number of items.
func (l *List) Len() int {
	return l.items.Len()
}

// Direction returns the current display direction.
func (l *List) Direction() Direction {
	return l.dir
}

// Items returns the items in display order.
func (l *List) Items() []Item {
	res := make([]Item, 0, l.items.Len())
	visit := func(i btree.Item) bool {
		res = append(res, i.(*itemEntry).Item)
		return true
	}
	if l.dir == Descending {
		l.items.Descend(visit)
	} else {
		l.items.Ascend(visit)
	}
	return res
}

// SortByKey switches the display direction.
func (l *List) SortByKey(dir Direction) {
	l.dir = dir
}

// Add appends an item at the end of the display order.
func (l *List) Add(label string) (Item, error) {
	key := fracindex.Default()
	if l.items.Len() > 0 {
		var err error
		if l.dir == Descending {
			key, err = fracindex.Before(l.items.Min().(*itemEntry).Key)
		} else {
			key, err = fracindex.After(l.items.Max().(*itemEntry).Key)
		}
		if err != nil {
			return Item{}, errors.Wrapf(err, "adding %q", label)
		}
	}
	it := Item{ID: itemID(l.nextItemNumber), Label: label, Key: key}
	l.nextItemNumber++
	l.items.ReplaceOrInsert(&itemEntry{it})
	return it, nil
}

// normalizeDropIndex maps a drop position, expressed against the list before
// the item is removed, to the index the item ends up at. It returns false if
// the move would leave the item in place.
func normalizeDropIndex(from, drop, size int) (int, bool) {
	drop = clamp(drop, 0, size)
	if drop > from {
		drop--
	}
	drop = clamp(drop, 0, size-1)
	return drop, drop != from
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// MoveByDropIndex moves the item displayed at index from to the drop
// position, as a drag-and-drop gesture would report it. The boolean result
// is false, and the list unchanged, when from is out of range or the drop
// resolves to the item's current position.
func (l *List) MoveByDropIndex(ctx context.Context, from, drop int) (MoveResult, bool, error) {
	ordered := l.Items()
	if from < 0 || from >= len(ordered) {
		return MoveResult{}, false, nil
	}
	to, ok := normalizeDropIndex(from, drop, len(ordered))
	if !ok {
		return MoveResult{}, false, nil
	}

	moved := ordered[from]
	ordered = append(ordered[:from], ordered[from+1:]...)
	ordered = append(ordered[:to], append([]Item{moved}, ordered[to:]...)...)
	newKey, err := l.keyForIndex(to, ordered)
	if err != nil {
		return MoveResult{}, false, errors.Wrapf(err, "moving %s to %d", redact.Safe(moved.ID), to)
	}

	l.items.Delete(&itemEntry{moved})
	l.items.ReplaceOrInsert(&itemEntry{Item{ID: moved.ID, Label: moved.Label, Key: newKey}})

	log.VEventf(ctx, 1, "moved %s from %d to %d: %s -> %s (%d -> %d bytes)",
		redact.Safe(moved.ID), from, to, moved.Key, newKey, moved.Key.Len(), newKey.Len())
	return MoveResult{
		ID:       moved.ID,
		Label:    moved.Label,
		OldKey:   moved.Key,
		NewKey:   newKey,
		NewIndex: to,
	}, true, nil
}

// keyForIndex generates a key for the item at index of ordered, between its
// display neighbors.
func (l *List) keyForIndex(index int, ordered []Item) (fracindex.Key, error) {
	last := len(ordered) - 1
	switch {
	case len(ordered) == 1:
		return fracindex.Default(), nil
	case index == 0:
		if l.dir == Descending {
			return fracindex.After(ordered[1].Key)
		}
		return fracindex.Before(ordered[1].Key)
	case index == last:
		if l.dir == Descending {
			return fracindex.Before(ordered[index-1].Key)
		}
		return fracindex.After(ordered[index-1].Key)
	default:
		return fracindex.Between(ordered[index-1].Key, ordered[index+1].Key)
	}
}
