package svgdom

import (
	"fmt"
	"regexp"
	"strings"
)

var listDelimiter = regexp.MustCompile(`\s+,?\s*|,\s*`)

// SplitList splits a comma and/or whitespace separated attribute value. Two delimiters without anything
// in between, such as "1,,2", return ErrSyntax. An empty or blank string returns no items.
func SplitList(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}, nil
	}
	items := listDelimiter.Split(s, -1)
	for _, item := range items {
		if item == "" {
			return nil, fmt.Errorf("%w: empty list item in %q", ErrSyntax, s)
		}
	}
	return items, nil
}

////////////////////////////////////////////////////////////////

type detacher interface {
	detach(item any)
}

// Registry keeps track of which list owns an item. Lists sharing a registry, typically all lists of one
// document, never hold the same item at the same time.
type Registry struct {
	owners map[any]detacher
}

func NewRegistry() *Registry {
	return &Registry{
		owners: map[any]detacher{},
	}
}

// Owned returns true if item belongs to a list.
func (r *Registry) Owned(item any) bool {
	_, ok := r.owners[item]
	return ok
}

// Len returns the number of owned items.
func (r *Registry) Len() int {
	return len(r.owners)
}

// release removes item from whatever list holds it.
func (r *Registry) release(item any) {
	if owner, ok := r.owners[item]; ok {
		owner.detach(item)
	}
}

// OwnedList is an ordered list of items identified by pointer. Adding an item that is held by another list
// of the same registry, or by this list, first removes it from there.
type OwnedList[T any] struct {
	reg   *Registry
	items []*T
}

// NewOwnedList returns an empty list. When reg is nil the list gets a registry of its own.
func NewOwnedList[T any](reg *Registry) *OwnedList[T] {
	if reg == nil {
		reg = NewRegistry()
	}
	return &OwnedList[T]{
		reg: reg,
	}
}

// Registry returns the registry the list belongs to.
func (l *OwnedList[T]) Registry() *Registry {
	return l.reg
}

func (l *OwnedList[T]) detach(item any) {
	for i, it := range l.items {
		if any(it) == item {
			l.items = append(l.items[:i], l.items[i+1:]...)
			break
		}
	}
	delete(l.reg.owners, item)
}

func (l *OwnedList[T]) attach(item *T) error {
	if item == nil {
		return fmt.Errorf("%w: nil list item", ErrInvalidValue)
	}
	l.reg.release(item)
	l.reg.owners[item] = l
	return nil
}

func (l *OwnedList[T]) index(item *T) int {
	for i, it := range l.items {
		if it == item {
			return i
		}
	}
	return -1
}

// NumberOfItems returns the number of items.
func (l *OwnedList[T]) NumberOfItems() int {
	return len(l.items)
}

// Items returns a copy of the items.
func (l *OwnedList[T]) Items() []*T {
	return append([]*T{}, l.items...)
}

// Contains returns true if item is in the list.
func (l *OwnedList[T]) Contains(item *T) bool {
	return l.index(item) != -1
}

// Clear removes all items and releases their ownership.
func (l *OwnedList[T]) Clear() {
	for _, item := range l.items {
		delete(l.reg.owners, any(item))
	}
	l.items = nil
}

// Initialize clears the list and appends item.
func (l *OwnedList[T]) Initialize(item *T) (*T, error) {
	if item == nil {
		return nil, fmt.Errorf("%w: nil list item", ErrInvalidValue)
	}
	l.Clear()
	return l.AppendItem(item)
}

// GetItem returns the item at index i.
func (l *OwnedList[T]) GetItem(i int) (*T, error) {
	if i < 0 || len(l.items) <= i {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(l.items))
	}
	return l.items[i], nil
}

// InsertItemBefore inserts item at index i, where i equal to the number of items appends. When item was in
// this list already and before i, it ends up right before the item that was at i.
func (l *OwnedList[T]) InsertItemBefore(item *T, i int) (*T, error) {
	if i < 0 || len(l.items) < i {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(l.items))
	}
	if j := l.index(item); j != -1 && j < i {
		i--
	}
	if err := l.attach(item); err != nil {
		return nil, err
	}
	l.items = append(l.items, nil)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = item
	return item, nil
}

// ReplaceItem replaces the item at index i by item, the old item is released.
func (l *OwnedList[T]) ReplaceItem(item *T, i int) (*T, error) {
	if i < 0 || len(l.items) <= i {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(l.items))
	}
	j := l.index(item)
	if j == i {
		return item, nil
	} else if j != -1 && j < i {
		i--
	}
	if err := l.attach(item); err != nil {
		return nil, err
	}
	delete(l.reg.owners, any(l.items[i]))
	l.items[i] = item
	return item, nil
}

// RemoveItem removes and returns the item at index i.
func (l *OwnedList[T]) RemoveItem(i int) (*T, error) {
	if i < 0 || len(l.items) <= i {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(l.items))
	}
	item := l.items[i]
	l.detach(item)
	return item, nil
}

// AppendItem adds item to the end of the list.
func (l *OwnedList[T]) AppendItem(item *T) (*T, error) {
	if err := l.attach(item); err != nil {
		return nil, err
	}
	l.items = append(l.items, item)
	return item, nil
}
