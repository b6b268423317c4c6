package codetables

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

type Table string

const (
	TableSeatTypes      Table = "seat-types"
	TablePassengerTypes Table = "passenger-types"
	TableDiscountTypes  Table = "discount-types"
	TableStations       Table = "stations"
	TableTrains         Table = "trains"
	TableWindowSeats    Table = "window-seats"
)

var Tables = []Table{
	TableSeatTypes,
	TablePassengerTypes,
	TableDiscountTypes,
	TableStations,
	TableTrains,
	TableWindowSeats,
}

type Entry struct {
	Code string
	Name string
}

// List returns every entry of a table ordered by code
func List(table Table) ([]Entry, error) {
	t := get()

	var source map[string]string
	switch table {
	case TableSeatTypes:
		source = t.SeatTypes
	case TablePassengerTypes:
		source = t.PassengerTypes
	case TableDiscountTypes:
		source = t.DiscountTypes
	case TableStations:
		source = t.Stations
	case TableTrains:
		source = t.Trains
	case TableWindowSeats:
		// Stored as preference -> code, listed the other way round like every other table
		entries := make([]Entry, 0, len(t.WindowSeats))
		for preference, code := range t.WindowSeats {
			entries = append(entries, Entry{Code: code, Name: preference})
		}
		sortEntries(entries)
		return entries, nil
	default:
		return nil, fmt.Errorf("unknown code table %q", table)
	}

	entries := make([]Entry, 0, len(source))
	for code, name := range source {
		entries = append(entries, Entry{Code: code, Name: name})
	}
	sortEntries(entries)

	return entries, nil
}

func sortEntries(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Code, b.Code)
	})
}
