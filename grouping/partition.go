package grouping

import "fmt"

// Assignment maps one item to its group.
type Assignment struct {
	Item  string
	Group string
}

// Partition is a hard, mutually exclusive grouping of items: every item
// belongs to exactly one group. Immutable after construction.
//
// Item and group orders are first-seen orders from the constructor input,
// so every table derived from a Partition is deterministic.
type Partition struct {
	items  []string          // insertion order
	groups []string          // first-seen order of group labels
	byItem map[string]string // item ID -> group label
}

// NewPartition builds a Partition from (item, group) records.
//
// Errors:
//   - ErrEmptyPartition if no assignments are given.
//   - ErrEmptyLabel if any item ID or group label is blank.
//   - ErrDuplicateItem if an item appears twice.
//
// Complexity: O(n) time and memory for n assignments.
func NewPartition(assignments []Assignment) (*Partition, error) {
	if len(assignments) == 0 {
		return nil, ErrEmptyPartition
	}

	p := &Partition{
		items:  make([]string, 0, len(assignments)),
		byItem: make(map[string]string, len(assignments)),
	}
	seenGroup := make(map[string]struct{})

	for _, a := range assignments {
		if a.Item == "" || a.Group == "" {
			return nil, fmt.Errorf("assignment %q->%q: %w", a.Item, a.Group, ErrEmptyLabel)
		}
		if _, dup := p.byItem[a.Item]; dup {
			return nil, fmt.Errorf("item %q: %w", a.Item, ErrDuplicateItem)
		}
		p.byItem[a.Item] = a.Group
		p.items = append(p.items, a.Item)
		if _, ok := seenGroup[a.Group]; !ok {
			seenGroup[a.Group] = struct{}{}
			p.groups = append(p.groups, a.Group)
		}
	}

	return p, nil
}

// Len returns the number of items in the partition.
func (p *Partition) Len() int { return len(p.items) }

// Items returns the item IDs in insertion order (copy).
func (p *Partition) Items() []string {
	out := make([]string, len(p.items))
	copy(out, p.items)

	return out
}

// Groups returns the group labels in first-seen order (copy).
func (p *Partition) Groups() []string {
	out := make([]string, len(p.groups))
	copy(out, p.groups)

	return out
}

// GroupOf reports the group of item, and whether the item is present.
func (p *Partition) GroupOf(item string) (string, bool) {
	g, ok := p.byItem[item]

	return g, ok
}

// Contains reports whether item belongs to the partition.
func (p *Partition) Contains(item string) bool {
	_, ok := p.byItem[item]

	return ok
}
