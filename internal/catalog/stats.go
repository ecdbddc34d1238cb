package catalog

import (
	"sort"

	"github.com/dbmrq/faang/internal/resource"
)

// CategoryCount is the number of resources in a category.
type CategoryCount struct {
	Category resource.Category `json:"category" yaml:"category"`
	Count    int               `json:"count"    yaml:"count"`
}

// TypeCount is the number of resources of a type.
type TypeCount struct {
	Type  resource.Type `json:"type"  yaml:"type"`
	Count int           `json:"count" yaml:"count"`
}

// Stats summarizes the catalog.
type Stats struct {
	Total      int             `json:"total"       yaml:"total"`
	Free       int             `json:"free"        yaml:"free"`
	Paid       int             `json:"paid"        yaml:"paid"`
	ByCategory []CategoryCount `json:"by_category" yaml:"by_category"`
	ByType     []TypeCount     `json:"by_type"     yaml:"by_type"`
}

// FreePercent returns the share of free resources, or 0 for an empty catalog.
func (s Stats) FreePercent() float64 {
	return percent(s.Free, s.Total)
}

// PaidPercent returns the share of paid resources, or 0 for an empty catalog.
func (s Stats) PaidPercent() float64 {
	return percent(s.Paid, s.Total)
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

// Stats counts resources by price, category and type. Only categories and
// types that occur are listed, most frequent first; ties keep enumeration
// order.
func (c *Catalog) Stats() Stats {
	s := Stats{Total: len(c.resources)}

	byCategory := map[resource.Category]int{}
	byType := map[resource.Type]int{}
	for _, r := range c.resources {
		if r.IsFree() {
			s.Free++
		}
		byCategory[r.Category()]++
		byType[r.Type()]++
	}
	s.Paid = s.Total - s.Free

	for _, cat := range resource.Categories() {
		if n := byCategory[cat]; n > 0 {
			s.ByCategory = append(s.ByCategory, CategoryCount{Category: cat, Count: n})
		}
	}
	for _, typ := range resource.Types() {
		if n := byType[typ]; n > 0 {
			s.ByType = append(s.ByType, TypeCount{Type: typ, Count: n})
		}
	}

	sort.SliceStable(s.ByCategory, func(i, j int) bool {
		return s.ByCategory[i].Count > s.ByCategory[j].Count
	})
	sort.SliceStable(s.ByType, func(i, j int) bool {
		return s.ByType[i].Count > s.ByType[j].Count
	})

	return s
}

// CategoryNode is one branch of the category tree.
type CategoryNode struct {
	Category resource.Category `json:"category" yaml:"category"`
	Count    int               `json:"count"    yaml:"count"`
	Types    []TypeCount       `json:"types"    yaml:"types"`
}

// Tree groups the catalog by category, in enumeration order, and within each
// category by type in order of first appearance. Empty categories are kept
// with a zero count.
func (c *Catalog) Tree() []CategoryNode {
	nodes := make([]CategoryNode, 0, len(resource.Categories()))
	for _, cat := range resource.Categories() {
		node := CategoryNode{Category: cat, Types: []TypeCount{}}
		index := map[resource.Type]int{}
		for _, r := range c.ByCategory(cat) {
			node.Count++
			i, ok := index[r.Type()]
			if !ok {
				i = len(node.Types)
				index[r.Type()] = i
				node.Types = append(node.Types, TypeCount{Type: r.Type()})
			}
			node.Types[i].Count++
		}
		nodes = append(nodes, node)
	}
	return nodes
}
