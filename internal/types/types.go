// README: Shared scalar types used across modules.
package types

// ID is an entity identifier (UUID in storage).
type ID string

func (id ID) String() string { return string(id) }

// TripType selects which pricing rules and sub-record apply to a trip.
type TripType string

const (
	TripRound   TripType = "round"
	TripOneWay  TripType = "oneway"
	TripLocal   TripType = "local"
	TripAirport TripType = "airport"
)

func (t TripType) Valid() bool {
	switch t {
	case TripRound, TripOneWay, TripLocal, TripAirport:
		return true
	}
	return false
}

// TransferDirection applies to airport transfers only.
type TransferDirection string

const (
	TransferGoingTo    TransferDirection = "going-to"
	TransferComingFrom TransferDirection = "coming-from"
)
