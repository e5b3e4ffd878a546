package grouping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingstat/tidylens/grouping"
)

// narrativeAssignments is the four-feature clustering used across the
// package tests: c1={A,B}, c2={C,D}.
func narrativeAssignments() []grouping.Assignment {
	return []grouping.Assignment{
		{Item: "A", Group: "c1"},
		{Item: "B", Group: "c1"},
		{Item: "C", Group: "c2"},
		{Item: "D", Group: "c2"},
	}
}

// TestNewPartition_Basic verifies construction, ordering and lookups.
func TestNewPartition_Basic(t *testing.T) {
	p, err := grouping.NewPartition(narrativeAssignments())
	require.NoError(t, err)

	assert.Equal(t, 4, p.Len())
	assert.Equal(t, []string{"A", "B", "C", "D"}, p.Items(), "items keep insertion order")
	assert.Equal(t, []string{"c1", "c2"}, p.Groups(), "groups keep first-seen order")

	g, ok := p.GroupOf("C")
	assert.True(t, ok)
	assert.Equal(t, "c2", g)
	assert.True(t, p.Contains("A"))
	assert.False(t, p.Contains("Z"))

	_, ok = p.GroupOf("Z")
	assert.False(t, ok, "unknown item must not resolve")
}

// TestNewPartition_Empty verifies ErrEmptyPartition on no assignments.
func TestNewPartition_Empty(t *testing.T) {
	_, err := grouping.NewPartition(nil)
	assert.ErrorIs(t, err, grouping.ErrEmptyPartition)

	_, err = grouping.NewPartition([]grouping.Assignment{})
	assert.ErrorIs(t, err, grouping.ErrEmptyPartition)
}

// TestNewPartition_BlankLabels verifies ErrEmptyLabel on blank item or group.
func TestNewPartition_BlankLabels(t *testing.T) {
	_, err := grouping.NewPartition([]grouping.Assignment{{Item: "", Group: "g"}})
	assert.ErrorIs(t, err, grouping.ErrEmptyLabel)

	_, err = grouping.NewPartition([]grouping.Assignment{{Item: "A", Group: ""}})
	assert.ErrorIs(t, err, grouping.ErrEmptyLabel)
}

// TestNewPartition_DuplicateItem verifies hard membership: an item cannot
// be assigned twice, even to the same group.
func TestNewPartition_DuplicateItem(t *testing.T) {
	_, err := grouping.NewPartition([]grouping.Assignment{
		{Item: "A", Group: "c1"},
		{Item: "A", Group: "c2"},
	})
	assert.ErrorIs(t, err, grouping.ErrDuplicateItem)

	_, err = grouping.NewPartition([]grouping.Assignment{
		{Item: "A", Group: "c1"},
		{Item: "A", Group: "c1"},
	})
	assert.ErrorIs(t, err, grouping.ErrDuplicateItem)
}

// TestPartition_AccessorsCopy verifies that mutating returned slices does
// not leak into the partition.
func TestPartition_AccessorsCopy(t *testing.T) {
	p, err := grouping.NewPartition(narrativeAssignments())
	require.NoError(t, err)

	items := p.Items()
	items[0] = "mutated"
	assert.Equal(t, []string{"A", "B", "C", "D"}, p.Items())

	groups := p.Groups()
	groups[0] = "mutated"
	assert.Equal(t, []string{"c1", "c2"}, p.Groups())
}
