package sarf

import (
	"fmt"
	"strings"
)

const (
	// DefaultTableCapacity is the number of buckets of a new SchemeTable.
	DefaultTableCapacity = 16
	maxLoadFactor        = 0.75
)

type tableEntry struct {
	name   string
	scheme *Scheme
	next   *tableEntry
}

// SchemeTable maps scheme names to schemes. It is a hash table with
// separate chaining; the number of buckets doubles whenever the load
// factor reaches 0.75.
//
// A SchemeTable is not safe for concurrent mutation.
type SchemeTable struct {
	buckets []*tableEntry
	size    int
}

// TableStats reports the fill state of a SchemeTable.
type TableStats struct {
	Capacity       int
	Size           int
	NonEmptyChains int
	MaxChain       int
}

// LoadFactor is the ratio of entries to buckets.
func (s TableStats) LoadFactor() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Size) / float64(s.Capacity)
}

// AverageChain is the mean length of the non-empty chains.
func (s TableStats) AverageChain() float64 {
	if s.NonEmptyChains == 0 {
		return 0
	}
	return float64(s.Size) / float64(s.NonEmptyChains)
}

// NewSchemeTable creates an empty table with capacity buckets. A capacity
// below 1 selects DefaultTableCapacity.
func NewSchemeTable(capacity int) *SchemeTable {
	if capacity < 1 {
		capacity = DefaultTableCapacity
	}
	return &SchemeTable{buckets: make([]*tableEntry, capacity)}
}

// polyHash accumulates h = 31*h + c over the code points of key, with
// 32-bit wrap-around.
func polyHash(key string) int32 {
	var h int32
	for _, c := range key {
		h = 31*h + int32(c)
	}
	return h
}

func bucketIndex(key string, capacity int) int {
	i := int(polyHash(key) % int32(capacity))
	if i < 0 {
		i = -i
	}
	return i
}

// Put stores scheme under name, replacing a scheme stored under the same name.
func (t *SchemeTable) Put(name string, scheme *Scheme) error {
	if strings.TrimSpace(name) == "" || scheme == nil {
		return fmt.Errorf("scheme table needs a name and a scheme: %w", ErrInvalidArgument)
	}
	if float64(t.size)/float64(len(t.buckets)) >= maxLoadFactor {
		t.grow()
	}
	i := bucketIndex(name, len(t.buckets))
	for e := t.buckets[i]; e != nil; e = e.next {
		if e.name == name {
			e.scheme = scheme
			return nil
		}
	}
	t.buckets[i] = &tableEntry{name: name, scheme: scheme, next: t.buckets[i]}
	t.size++
	return nil
}

// grow doubles the number of buckets and moves every entry to the head of
// its new chain.
func (t *SchemeTable) grow() {
	capacity := 2 * len(t.buckets)
	tracer().Debugf("scheme table grows from %d to %d buckets", len(t.buckets), capacity)
	buckets := make([]*tableEntry, capacity)
	for _, e := range t.buckets {
		for e != nil {
			next := e.next
			i := bucketIndex(e.name, capacity)
			e.next = buckets[i]
			buckets[i] = e
			e = next
		}
	}
	t.buckets = buckets
}

// Get returns the scheme stored under name.
func (t *SchemeTable) Get(name string) (*Scheme, bool) {
	for e := t.buckets[bucketIndex(name, len(t.buckets))]; e != nil; e = e.next {
		if e.name == name {
			return e.scheme, true
		}
	}
	return nil, false
}

// Exists reports whether a scheme is stored under name.
func (t *SchemeTable) Exists(name string) bool {
	_, found := t.Get(name)
	return found
}

// Remove deletes the scheme stored under name and reports whether there was one.
func (t *SchemeTable) Remove(name string) bool {
	i := bucketIndex(name, len(t.buckets))
	var prev *tableEntry
	for e := t.buckets[i]; e != nil; prev, e = e, e.next {
		if e.name != name {
			continue
		}
		if prev == nil {
			t.buckets[i] = e.next
		} else {
			prev.next = e.next
		}
		t.size--
		return true
	}
	return false
}

// Schemes returns all schemes, bucket by bucket. Clients must not rely on
// any particular order.
func (t *SchemeTable) Schemes() []*Scheme {
	schemes := make([]*Scheme, 0, t.size)
	t.each(func(e *tableEntry) {
		schemes = append(schemes, e.scheme)
	})
	return schemes
}

// Names returns all keys, in the same order as Schemes.
func (t *SchemeTable) Names() []string {
	names := make([]string, 0, t.size)
	t.each(func(e *tableEntry) {
		names = append(names, e.name)
	})
	return names
}

func (t *SchemeTable) each(f func(*tableEntry)) {
	for _, e := range t.buckets {
		for ; e != nil; e = e.next {
			f(e)
		}
	}
}

func (t *SchemeTable) Size() int     { return t.size }
func (t *SchemeTable) IsEmpty() bool { return t.size == 0 }
func (t *SchemeTable) Capacity() int { return len(t.buckets) }

// Clear removes all entries. The capacity is kept.
func (t *SchemeTable) Clear() {
	t.buckets = make([]*tableEntry, len(t.buckets))
	t.size = 0
}

// Stats reports capacity and chain lengths.
func (t *SchemeTable) Stats() TableStats {
	stats := TableStats{
		Capacity: len(t.buckets),
		Size:     t.size,
	}
	for _, e := range t.buckets {
		if e == nil {
			continue
		}
		stats.NonEmptyChains++
		l := 0
		for ; e != nil; e = e.next {
			l++
		}
		stats.MaxChain = max(stats.MaxChain, l)
	}
	return stats
}
