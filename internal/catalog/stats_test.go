package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbmrq/faang/internal/resource"
)

func TestStats(t *testing.T) {
	s := sampleCatalog(t).Stats()

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Free)
	assert.Equal(t, 2, s.Paid)
	assert.InDelta(t, 50.0, s.FreePercent(), 1e-9)
	assert.InDelta(t, 50.0, s.PaidPercent(), 1e-9)

	assert.Equal(t, []CategoryCount{
		{resource.CategoryCoding, 2},
		{resource.CategorySystemDesign, 1},
		{resource.CategoryAIML, 1},
	}, s.ByCategory)
	assert.Equal(t, []TypeCount{
		{resource.TypeBook, 2},
		{resource.TypeVideo, 1},
		{resource.TypeCourse, 1},
	}, s.ByType)
}

func TestStats_Default(t *testing.T) {
	c := Default()
	s := c.Stats()

	assert.Equal(t, c.Len(), s.Total)
	assert.Equal(t, len(c.Free()), s.Free)
	assert.Equal(t, s.Total, s.Free+s.Paid)

	var sum int
	for i, cc := range s.ByCategory {
		sum += cc.Count
		if i > 0 {
			assert.LessOrEqual(t, cc.Count, s.ByCategory[i-1].Count, "sorted descending")
		}
	}
	assert.Equal(t, s.Total, sum)

	sum = 0
	for _, tc := range s.ByType {
		sum += tc.Count
	}
	assert.Equal(t, s.Total, sum)
}

func TestStats_Empty(t *testing.T) {
	s := New(nil).Stats()

	assert.Zero(t, s.Total)
	assert.Zero(t, s.FreePercent())
	assert.Zero(t, s.PaidPercent())
	assert.Empty(t, s.ByCategory)
}

func TestTree(t *testing.T) {
	tree := sampleCatalog(t).Tree()
	require.Len(t, tree, len(resource.Categories()))

	for i, cat := range resource.Categories() {
		assert.Equal(t, cat, tree[i].Category)
	}

	coding := tree[0]
	assert.Equal(t, 2, coding.Count)
	assert.Equal(t, []TypeCount{
		{resource.TypeCourse, 1},
		{resource.TypeBook, 1},
	}, coding.Types, "types appear in first-seen order")

	oop := tree[6]
	assert.Equal(t, resource.CategoryOOP, oop.Category)
	assert.Zero(t, oop.Count)
	assert.Empty(t, oop.Types)
}

func TestTree_Default(t *testing.T) {
	c := Default()
	total := 0
	for _, node := range c.Tree() {
		sub := 0
		for _, tc := range node.Types {
			sub += tc.Count
		}
		assert.Equal(t, node.Count, sub, node.Category)
		assert.Equal(t, len(c.ByCategory(node.Category)), node.Count)
		total += node.Count
	}
	assert.Equal(t, c.Len(), total)
}
