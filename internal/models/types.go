package models

import (
	"fmt"
	"math"
	"sort"
)

// ResourceType identifies a resource in the game (catnip, wood, minerals, ...)
type ResourceType string

const (
	Catnip   ResourceType = "catnip"
	Wood     ResourceType = "wood"
	Minerals ResourceType = "minerals"
	Iron     ResourceType = "iron"
	Science  ResourceType = "science"
	Faith    ResourceType = "faith"
	Gold     ResourceType = "gold"
	Oil      ResourceType = "oil"
)

// ItemID identifies a buildable or upgradeable item
type ItemID string

// Costs maps resources to an amount
type Costs map[ResourceType]float64

// Get returns the cost for a specific resource type
func (c Costs) Get(rt ResourceType) float64 {
	return c[rt]
}

// Total returns the sum over all resources
func (c Costs) Total() float64 {
	var total float64
	for _, rt := range c.Resources() {
		total += c[rt]
	}
	return total
}

// Resources returns the resource types in deterministic order
func (c Costs) Resources() []ResourceType {
	out := make([]ResourceType, 0, len(c))
	for rt := range c {
		out = append(out, rt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PriceSchedule describes how the price of an item grows with each unit owned.
//
// The cost of resource r for the unit at zero-based index i is
// BasePrice * ResourceWeights[r] * PriceRatio^i.
type PriceSchedule struct {
	BasePrice       float64
	PriceRatio      float64
	ResourceWeights map[ResourceType]float64
}

// NewPriceSchedule creates a schedule from a base price and per-resource weights
func NewPriceSchedule(base, ratio float64, weights map[ResourceType]float64) PriceSchedule {
	return PriceSchedule{BasePrice: base, PriceRatio: ratio, ResourceWeights: weights}
}

// Validate checks the schedule invariants
func (s PriceSchedule) Validate() error {
	if math.IsNaN(s.BasePrice) || math.IsInf(s.BasePrice, 0) || s.BasePrice < 0 {
		return fmt.Errorf("%w: base price %v", ErrInvalidSchedule, s.BasePrice)
	}
	if math.IsNaN(s.PriceRatio) || math.IsInf(s.PriceRatio, 0) || s.PriceRatio < 1 {
		return fmt.Errorf("%w: price ratio %v", ErrInvalidSchedule, s.PriceRatio)
	}
	for rt, w := range s.ResourceWeights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("%w: weight %v for %s", ErrInvalidSchedule, w, rt)
		}
	}
	return nil
}

// Resources returns the resources with a non-zero weight, in deterministic order
func (s PriceSchedule) Resources() []ResourceType {
	out := make([]ResourceType, 0, len(s.ResourceWeights))
	for rt, w := range s.ResourceWeights {
		if w > 0 {
			out = append(out, rt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsFree returns true if no unit of this item ever costs anything
func (s PriceSchedule) IsFree() bool {
	return s.BasePrice == 0 || len(s.Resources()) == 0
}

// Weighted returns the single-resource schedule for rt
func (s PriceSchedule) Weighted(rt ResourceType) PriceSchedule {
	return PriceSchedule{
		BasePrice:  s.BasePrice * s.ResourceWeights[rt],
		PriceRatio: s.PriceRatio,
	}
}

// ResourceStock is a read snapshot of one resource.
// Capacity of 0 means the resource is not capped.
type ResourceStock struct {
	Current  float64
	PerTick  float64
	Capacity float64
}

// Capped returns true if the resource has a storage limit
func (r ResourceStock) Capped() bool {
	return r.Capacity > 0
}

// FillRatio returns Current/Capacity, or 0 for uncapped resources
func (r ResourceStock) FillRatio() float64 {
	if !r.Capped() {
		return 0
	}
	return r.Current / r.Capacity
}

// Stocks maps resources to their snapshot. Missing resources read as empty.
type Stocks map[ResourceType]ResourceStock

// Get returns the stock for rt
func (s Stocks) Get(rt ResourceType) ResourceStock {
	return s[rt]
}

// Section groups items by the game tab that builds them
type Section string

const (
	SectionBonfire  Section = "bonfire"
	SectionSpace    Section = "space"
	SectionReligion Section = "religion"
)

// AllSections returns the sections in the order they are automated
func AllSections() []Section {
	return []Section{SectionBonfire, SectionSpace, SectionReligion}
}
