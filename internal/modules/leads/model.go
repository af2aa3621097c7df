// README: Lead models; quick mobile captures and discount requests.
package leads

import (
	"time"

	"cabsafar/internal/types"
)

type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadConverted LeadStatus = "converted"
	LeadClosed    LeadStatus = "closed"
)

// Lead is captured from the mobile-number popup before a search completes.
type Lead struct {
	ID                types.ID       `json:"id"`
	MobileNumber      string         `json:"mobile_number"`
	PickupCityID      *types.ID      `json:"pickup_city_id,omitempty"`
	DestinationCityID *types.ID      `json:"destination_city_id,omitempty"`
	TripType          types.TripType `json:"trip_type,omitempty"`
	PickupDate        *time.Time     `json:"pickup_date,omitempty"`
	ReturnDate        *time.Time     `json:"return_date,omitempty"`
	VehicleName       string         `json:"vehicle_name,omitempty"`
	LeadSource        string         `json:"lead_source,omitempty"`
	CouponRequested   bool           `json:"coupon_requested"`
	Status            LeadStatus     `json:"status"`
	Notes             *string        `json:"notes,omitempty"`
	ContactedAt       *time.Time     `json:"contacted_at,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
}
