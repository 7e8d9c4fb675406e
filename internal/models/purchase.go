package models

import "fmt"

// LimitingFactor is the reason a purchase realized fewer units than requested
type LimitingFactor int

const (
	LimitNone LimitingFactor = iota
	LimitAffordability
	LimitItemCap
	LimitControlDisabled
)

// String returns a string representation of the limiting factor
func (l LimitingFactor) String() string {
	switch l {
	case LimitNone:
		return "None"
	case LimitAffordability:
		return "Affordability"
	case LimitItemCap:
		return "ItemCap"
	case LimitControlDisabled:
		return "ControlDisabled"
	default:
		return "Unknown"
	}
}

// PurchaseRequest asks for RequestedAmount more units of an item
type PurchaseRequest struct {
	ItemID          ItemID
	OwnedCount      int  // Units already built, first exponent of the price
	RequestedAmount int
	ItemCap         *int // Batch ceiling independent of affordability, nil if none
}

// Validate checks the request invariants
func (r PurchaseRequest) Validate() error {
	if r.RequestedAmount < 0 {
		return fmt.Errorf("%w: requested amount %d", ErrInvalidInput, r.RequestedAmount)
	}
	if r.OwnedCount < 0 {
		return fmt.Errorf("%w: owned count %d", ErrInvalidInput, r.OwnedCount)
	}
	if r.ItemCap != nil && *r.ItemCap < 0 {
		return fmt.Errorf("%w: item cap %d", ErrInvalidInput, *r.ItemCap)
	}
	return nil
}

// Cap returns a pointer to n, for use as PurchaseRequest.ItemCap
func Cap(n int) *int {
	return &n
}

// PurchaseOutcome is the result of one bulk purchase
type PurchaseOutcome struct {
	ItemID           ItemID
	RequestedAmount  int
	PlannedAmount    int // Units judged affordable up front
	RealizedAmount   int // Units actually purchased
	LimitingFactor   LimitingFactor
	LimitingResource ResourceType // Set when LimitingFactor is LimitAffordability
	Anomaly          error        // Set when a purchase failed mid-batch
}

// Shortfall returns how many requested units were not built
func (o PurchaseOutcome) Shortfall() int {
	return o.RequestedAmount - o.RealizedAmount
}
