package reservation

import "fmt"

// RawReservation holds the untouched response rows for one booking
type RawReservation struct {
	Train   map[string]string   `json:"train" yaml:"train"`
	Payment map[string]string   `json:"payment" yaml:"payment"`
	Tickets []map[string]string `json:"tickets" yaml:"tickets"`
}

// DecodeRaw decodes every ticket row and then the reservation itself
func DecodeRaw(raw RawReservation) (*Reservation, error) {
	tickets := make([]Ticket, 0, len(raw.Tickets))

	for i, rawTicket := range raw.Tickets {
		ticket, err := DecodeTicket(rawTicket)
		if err != nil {
			return nil, fmt.Errorf("ticket %d: %w", i+1, err)
		}

		tickets = append(tickets, ticket)
	}

	return DecodeReservation(raw.Train, raw.Payment, tickets)
}
