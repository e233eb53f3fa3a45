package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalogue item. It has no owner.
type Product struct {
	ID             uuid.UUID `json:"id"`
	ProductCode    string    `json:"productCode"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Composition    string    `json:"composition,omitempty"`
	Description    string    `json:"description,omitempty"`
	Manufacturer   string    `json:"manufacturer,omitempty"`
	MRP            float64   `json:"mrp"`
	UnitPrice      float64   `json:"unitPrice"`
	PackSize       string    `json:"packSize,omitempty"`
	IsActive       bool      `json:"isActive"`
	IsDiscontinued bool      `json:"isDiscontinued"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
