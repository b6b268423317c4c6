package reservation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/travigo/srt/pkg/codetables"
)

// Ticket is a single booked seat
type Ticket struct {
	Car  string `groups:"basic"`
	Seat string `groups:"basic"`

	SeatTypeCode string `groups:"detailed"`
	SeatType     string `groups:"basic"`

	PassengerTypeCode string `groups:"detailed"`
	PassengerType     string `groups:"basic"`

	Price         int `groups:"basic"`
	OriginalPrice int `groups:"detailed"`
	Discount      int `groups:"basic"`
}

func (t Ticket) String() string {
	return fmt.Sprintf("%s호차 %s (%s) %s [%d원(%d원 할인)]", t.Car, t.Seat, t.SeatType, t.PassengerType, t.Price, t.Discount)
}

func parseAmount(raw map[string]string, field string) (int, error) {
	value := raw[field]

	amount, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &FormatError{Field: field, Value: value, Err: err}
	}

	return amount, nil
}

// DecodeTicket builds a Ticket from one row of the ticket list response
func DecodeTicket(raw map[string]string) (Ticket, error) {
	seatTypeCode := raw["psrmClCd"]
	seatType, ok := codetables.SeatTypeName(seatTypeCode)
	if !ok {
		return Ticket{}, &DecodeError{Table: "seat type", Code: seatTypeCode}
	}

	passengerTypeCode := raw["dcntKndCd"]
	passengerType, ok := codetables.DiscountTypeName(passengerTypeCode)
	if !ok {
		log.Debug().Str("code", passengerTypeCode).Msg("Unknown discount code, using generic label")
	}

	price, err := parseAmount(raw, "rcvdAmt")
	if err != nil {
		return Ticket{}, err
	}
	originalPrice, err := parseAmount(raw, "stdrPrc")
	if err != nil {
		return Ticket{}, err
	}
	discount, err := parseAmount(raw, "dcntPrc")
	if err != nil {
		return Ticket{}, err
	}

	return Ticket{
		Car:               raw["scarNo"],
		Seat:              raw["seatNo"],
		SeatTypeCode:      seatTypeCode,
		SeatType:          seatType,
		PassengerTypeCode: passengerTypeCode,
		PassengerType:     passengerType,
		Price:             price,
		OriginalPrice:     originalPrice,
		Discount:          discount,
	}, nil
}
