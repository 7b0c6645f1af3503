package domain

// Patrimony is a physical asset owned by the church (chairs, instruments,
// sound equipment, ...), tracked in the inventory.
type Patrimony struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Category     string  `json:"category,omitempty"`
	Quantity     int     `json:"quantity"`
	UnitValue    float64 `json:"unitValue,omitempty"`
	Condition    string  `json:"condition,omitempty"`
	Location     string  `json:"location,omitempty"`
	AcquiredAt   string  `json:"acquiredAt,omitempty"`
	Observations string  `json:"observations,omitempty"`
}

// PatrimonyInput is the payload for creating or updating an asset.
type PatrimonyInput struct {
	Code         string  `json:"code" validate:"required,min=1,max=40"`
	Name         string  `json:"name" validate:"required,min=2,max=160"`
	Category     string  `json:"category,omitempty"`
	Quantity     int     `json:"quantity" validate:"gte=0"`
	UnitValue    float64 `json:"unitValue,omitempty" validate:"gte=0"`
	Condition    string  `json:"condition,omitempty"`
	Location     string  `json:"location,omitempty"`
	AcquiredAt   string  `json:"acquiredAt,omitempty"`
	Observations string  `json:"observations,omitempty"`
}

// Movement records an asset entering or leaving a location (loan, transfer,
// disposal). Movements are append-only on the backend.
type Movement struct {
	ID          string `json:"id"`
	PatrimonyID string `json:"patrimonyId"`
	Type        string `json:"type"`
	Quantity    int    `json:"quantity"`
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`
	Responsible string `json:"responsible,omitempty"`
	MovedAt     string `json:"movedAt"`
	Notes       string `json:"notes,omitempty"`
}

// MovementInput is the payload for registering a movement.
type MovementInput struct {
	PatrimonyID string `json:"patrimonyId" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=in out transfer disposal"`
	Quantity    int    `json:"quantity" validate:"required,gte=1"`
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`
	Responsible string `json:"responsible,omitempty"`
	MovedAt     string `json:"movedAt" validate:"required"`
	Notes       string `json:"notes,omitempty"`
}

// InventorySummary is the backend's aggregate view over patrimonies and
// movements, rendered on the console's inventory page.
type InventorySummary struct {
	TotalAssets   int            `json:"totalAssets"`
	TotalQuantity int            `json:"totalQuantity"`
	TotalValue    float64        `json:"totalValue"`
	RecentMoves   int            `json:"recentMoves"`
	ByCategory    map[string]int `json:"byCategory,omitempty"`
}
