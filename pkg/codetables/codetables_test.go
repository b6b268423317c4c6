package codetables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatTypeName(t *testing.T) {
	name, ok := SeatTypeName("1")
	assert.True(t, ok)
	assert.Equal(t, "일반실", name)

	name, ok = SeatTypeName("2")
	assert.True(t, ok)
	assert.Equal(t, "특실", name)

	_, ok = SeatTypeName("3")
	assert.False(t, ok)
}

func TestDiscountTypeNameFallback(t *testing.T) {
	name, ok := DiscountTypeName("204")
	assert.True(t, ok)
	assert.Equal(t, "경로", name)

	name, ok = DiscountTypeName("999")
	assert.False(t, ok)
	assert.Equal(t, UnknownDiscountName, name)
}

func TestStationAndTrainNames(t *testing.T) {
	name, ok := StationName("0551")
	assert.True(t, ok)
	assert.Equal(t, "수서", name)

	name, ok = StationName("0020")
	assert.True(t, ok)
	assert.Equal(t, "부산", name)

	_, ok = StationName("9999")
	assert.False(t, ok)

	name, ok = TrainName("17")
	assert.True(t, ok)
	assert.Equal(t, "SRT", name)

	_, ok = TrainName("99")
	assert.False(t, ok)
}

func TestWindowSeatCode(t *testing.T) {
	assert.Equal(t, "000", WindowSeatCode(WindowSeatAny))
	assert.Equal(t, "012", WindowSeatCode(WindowSeatWindow))
	assert.Equal(t, "013", WindowSeatCode(WindowSeatAisle))
	assert.Equal(t, "000", WindowSeatCode(WindowSeat("middle")))
}

func TestTableSizes(t *testing.T) {
	tables := get()

	assert.Len(t, tables.SeatTypes, 2)
	assert.Len(t, tables.PassengerTypes, 5)
	assert.Len(t, tables.DiscountTypes, 22)
	assert.Len(t, tables.Trains, 11)
	assert.Len(t, tables.Stations, 32)
}

func TestList(t *testing.T) {
	entries, err := List(TableSeatTypes)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Code: "1", Name: "일반실"}, {Code: "2", Name: "특실"}}, entries)

	entries, err = List(TableWindowSeats)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Code: "012", Name: "window"}, {Code: "013", Name: "aisle"}}, entries)

	stations, err := List(TableStations)
	require.NoError(t, err)
	require.NotEmpty(t, stations)
	assert.Equal(t, "0010", stations[0].Code)

	for _, table := range Tables {
		_, err := List(table)
		assert.NoError(t, err, table)
	}

	_, err = List(Table("platforms"))
	assert.Error(t, err)
}

func TestParseRejectsBrokenData(t *testing.T) {
	_, err := parse([]byte("seat_types: [unclosed"), stationsCSV)
	assert.Error(t, err)
}
