package symbols

import (
	"errors"
	"fmt"
	"sync"

	"fortio.org/safecast"
)

// ErrUnresolvedClass marks a class identity with no symbol. Callers
// decide whether to degrade (error-marker type) or abort.
var ErrUnresolvedClass = errors.New("unresolved class")

// ClassID indexes a class inside the table arena.
type ClassID uint32

// NoClassID marks the absence of a class.
const NoClassID ClassID = 0

// Table is an in-memory class resolver: a compact arena plus a
// name index. A strict table reports ErrUnresolvedClass for unknown
// identities; a lenient one fabricates a class with invariant
// parameters matching the use-site arity, which keeps ad-hoc listings
// usable without a full classpath.
//
// Safe for concurrent use; fabrication takes the write lock.
type Table struct {
	mu      sync.RWMutex
	arena   []*Class
	byName  map[ClassName]ClassID
	lenient bool
}

// NewTable builds a table seeded with the given classes.
func NewTable(seed ...*Class) *Table {
	t := &Table{
		arena:  make([]*Class, 1, len(seed)+1), // index 0 reserved for NoClassID
		byName: make(map[ClassName]ClassID, len(seed)),
	}
	for _, c := range seed {
		t.Define(c)
	}
	return t
}

// Lenient switches the table into fabricating mode and returns it.
func (t *Table) Lenient() *Table {
	t.mu.Lock()
	t.lenient = true
	t.mu.Unlock()
	return t
}

// Define registers (or replaces) a class symbol.
func (t *Table) Define(c *Class) ClassID {
	if c == nil {
		return NoClassID
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.defineLocked(c)
}

func (t *Table) defineLocked(c *Class) ClassID {
	if id, ok := t.byName[c.Name]; ok {
		t.arena[id] = c
		return id
	}
	value, err := safecast.Conv[uint32](len(t.arena))
	if err != nil {
		panic(fmt.Errorf("class arena overflow: %w", err))
	}
	id := ClassID(value)
	t.arena = append(t.arena, c)
	t.byName[c.Name] = id
	return id
}

// ResolveClass implements Resolver.
func (t *Table) ResolveClass(name ClassName, arity int) (*Class, error) {
	t.mu.RLock()
	id, ok := t.byName[name]
	if ok {
		c := t.arena[id]
		t.mu.RUnlock()
		return c, nil
	}
	lenient := t.lenient
	t.mu.RUnlock()

	if !lenient {
		return nil, fmt.Errorf("%w: %s", ErrUnresolvedClass, name)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.byName[name]; ok {
		return t.arena[id], nil
	}
	c := fabricate(name, arity)
	t.defineLocked(c)
	return c, nil
}

// fabricate invents a class with invariant parameters T0..Tn-1.
func fabricate(name ClassName, arity int) *Class {
	c := &Class{Name: name}
	if arity > 0 {
		c.Params = make([]TypeParamDecl, arity)
		for i := range c.Params {
			c.Params[i] = TypeParamDecl{Name: fmt.Sprintf("T%d", i)}
		}
	}
	return c
}

// Len returns the number of defined classes.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.arena) - 1
}
