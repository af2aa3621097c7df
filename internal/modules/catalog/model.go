// README: Catalog aggregates: cities, vehicles, and local packages.
package catalog

import (
	"time"

	"cabsafar/internal/types"
)

type City struct {
	ID        types.ID  `json:"id"`
	Name      string    `json:"name"`
	StateCode *string   `json:"state_code,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Vehicle struct {
	ID              types.ID  `json:"id"`
	Name            string    `json:"name"`
	Model           *string   `json:"model,omitempty"`
	VehicleType     string    `json:"vehicle_type"`
	SeatingCapacity int       `json:"seating_capacity"`
	ImageURL        *string   `json:"image_url,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// LocalPackage is a fixed hours/kilometers bundle for in-city trips.
type LocalPackage struct {
	ID         types.ID `json:"id"`
	Name       string   `json:"name"`
	Hours      int      `json:"hours"`
	Kilometers int      `json:"kilometers"`
}
