package passenger

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
)

func validate(passengers []Passenger) error {
	for i, passenger := range passengers {
		if !passenger.Kind.Valid() {
			return fmt.Errorf("%w: passenger %d has unknown type %s", ErrInvalidArgument, i, passenger.Kind)
		}
		if passenger.Count < 0 {
			return fmt.Errorf("%w: passenger %d (%s) has negative count %d", ErrInvalidArgument, i, passenger.Kind, passenger.Count)
		}
	}

	return nil
}

// Combine collapses passengers of the same kind into one entry each. Entries keep
// the order in which their kind first appeared and empty entries are dropped.
func Combine(passengers []Passenger) ([]Passenger, error) {
	if err := validate(passengers); err != nil {
		return nil, err
	}

	var order []Kind
	grouped := map[Kind]Passenger{}

	for _, passenger := range passengers {
		existing, exists := grouped[passenger.Kind]
		if !exists {
			grouped[passenger.Kind] = passenger
			order = append(order, passenger.Kind)
			continue
		}

		merged, err := Merge(existing, passenger)
		if err != nil {
			return nil, err
		}
		grouped[passenger.Kind] = merged
	}

	combined := make([]Passenger, 0, len(order))
	for _, kind := range order {
		if passenger := grouped[kind]; passenger.Count > 0 {
			combined = append(combined, passenger)
		}
	}

	log.Debug().Int("input", len(passengers)).Int("combined", len(combined)).Msg("Combined passengers")

	return combined, nil
}

// TotalCount sums the passenger counts, formatted the way the booking API expects
func TotalCount(passengers []Passenger) (string, error) {
	if err := validate(passengers); err != nil {
		return "", err
	}

	total := 0
	for _, passenger := range passengers {
		total += passenger.Count
	}

	return strconv.Itoa(total), nil
}
