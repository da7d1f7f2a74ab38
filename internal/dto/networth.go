package dto

import "github.com/shopspring/decimal"

// NetWorthPoint is one period's total in the history view
type NetWorthPoint struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
}

// NetWorthHistoryResponse lists period totals oldest to newest. Periods with
// no snapshots are absent rather than zero-filled.
type NetWorthHistoryResponse struct {
	Months int             `json:"months"`
	Points []NetWorthPoint `json:"points"`
}

// ProjectionPoint is one forward-projected total. Offset 0 is the current
// period and additionally carries the actual total so charts can join the
// historical and projected lines.
type ProjectionPoint struct {
	Year      int              `json:"year"`
	Month     int              `json:"month"`
	Label     string           `json:"label"`
	Projected decimal.Decimal  `json:"projected"`
	Actual    *decimal.Decimal `json:"actual,omitempty"`
}

// NetWorthProjectionResponse is the linear projection from the trailing
// months' average growth. Empty when fewer than two historical points exist.
type NetWorthProjectionResponse struct {
	AverageGrowth decimal.Decimal   `json:"average_growth"`
	Points        []ProjectionPoint `json:"points"`
}
