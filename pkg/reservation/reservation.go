package reservation

import (
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/travigo/srt/pkg/codetables"
	"github.com/travigo/srt/pkg/util"
)

// Reservation is a single booking along with the tickets it holds.
// Dates are YYYYMMDD and times HHMM as sent by the booking API.
type Reservation struct {
	ReservationNumber string `groups:"basic"`
	TotalCost         string `groups:"basic"`
	SeatCount         string `groups:"basic"`

	TrainCode   string `groups:"detailed"`
	TrainName   string `groups:"basic"`
	TrainNumber string `groups:"basic"`

	DepartureDate        string `groups:"basic"`
	DepartureTime        string `groups:"basic"`
	DepartureStationCode string `groups:"detailed"`
	DepartureStationName string `groups:"basic"`

	ArrivalTime        string `groups:"basic"`
	ArrivalStationCode string `groups:"detailed"`
	ArrivalStationName string `groups:"basic"`

	PaymentDate string `groups:"basic"`
	PaymentTime string `groups:"basic"`

	Paid bool `groups:"basic"`

	tickets []Ticket
}

// Tickets returns a copy of the tickets held by the reservation
func (r *Reservation) Tickets() []Ticket {
	return append([]Ticket(nil), r.tickets...)
}

func stationName(code string) (string, error) {
	name, ok := codetables.StationName(code)
	if !ok {
		return "", &DecodeError{Table: "station", Code: code}
	}
	return name, nil
}

// DecodeReservation combines the train and payment summaries of a booking with
// its already decoded tickets. The reservation keeps its own copy of the tickets.
func DecodeReservation(train map[string]string, pay map[string]string, tickets []Ticket) (*Reservation, error) {
	trainCode := pay["stlbTrnClsfCd"]
	trainName, ok := codetables.TrainName(trainCode)
	if !ok {
		return nil, &DecodeError{Table: "train", Code: trainCode}
	}

	departureStationName, err := stationName(pay["dptRsStnCd"])
	if err != nil {
		return nil, err
	}
	arrivalStationName, err := stationName(pay["arvRsStnCd"])
	if err != nil {
		return nil, err
	}

	var ownedTickets []Ticket
	if len(tickets) > 0 {
		if err := copier.CopyWithOption(&ownedTickets, tickets, copier.Option{DeepCopy: true}); err != nil {
			return nil, fmt.Errorf("copy tickets: %w", err)
		}
	}

	return &Reservation{
		ReservationNumber: train["pnrNo"],
		TotalCost:         train["rcvdAmt"],
		SeatCount:         train["tkSpecNum"],

		TrainCode:   trainCode,
		TrainName:   trainName,
		TrainNumber: pay["trnNo"],

		DepartureDate:        pay["dptDt"],
		DepartureTime:        pay["dptTm"],
		DepartureStationCode: pay["dptRsStnCd"],
		DepartureStationName: departureStationName,

		ArrivalTime:        pay["arvTm"],
		ArrivalStationCode: pay["arvRsStnCd"],
		ArrivalStationName: arrivalStationName,

		PaymentDate: pay["iseLmtDt"],
		PaymentTime: pay["iseLmtTm"],

		Paid: pay["stlFlg"] == "Y",

		tickets: ownedTickets,
	}, nil
}

func formatDate(date string) string {
	return fmt.Sprintf("%s월 %s일", util.Substring(date, 4, 6), util.Substring(date, 6, 8))
}

func formatTime(hhmm string) string {
	return fmt.Sprintf("%s:%s", util.Substring(hhmm, 0, 2), util.Substring(hhmm, 2, 4))
}

// String renders the one line summary shown to users, including the payment
// deadline while the reservation is unpaid
func (r *Reservation) String() string {
	var summary strings.Builder

	fmt.Fprintf(&summary, "[%s] %s, %s~%s(%s~%s) %s원(%s석)",
		r.TrainName,
		formatDate(r.DepartureDate),
		r.DepartureStationName,
		r.ArrivalStationName,
		formatTime(r.DepartureTime),
		formatTime(r.ArrivalTime),
		r.TotalCost,
		r.SeatCount,
	)

	if !r.Paid {
		fmt.Fprintf(&summary, ", 구입기한 %s %s", formatDate(r.PaymentDate), formatTime(r.PaymentTime))
	}

	return summary.String()
}
