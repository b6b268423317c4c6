package codetables

import (
	_ "embed"
	"sync"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed data/tables.yaml
var tablesYAML []byte

//go:embed data/stations.csv
var stationsCSV []byte

// DefaultWindowSeatCode is sent when no window seat preference is given
const DefaultWindowSeatCode = "000"

// UnknownDiscountName is used for discount codes missing from the discount table
const UnknownDiscountName = "기타 할인"

type WindowSeat string

const (
	WindowSeatAny    WindowSeat = ""
	WindowSeatWindow WindowSeat = "window"
	WindowSeatAisle  WindowSeat = "aisle"
)

type tables struct {
	SeatTypes      map[string]string `yaml:"seat_types"`
	PassengerTypes map[string]string `yaml:"passenger_types"`
	DiscountTypes  map[string]string `yaml:"discount_types"`
	Trains         map[string]string `yaml:"trains"`
	WindowSeats    map[string]string `yaml:"window_seats"`

	Stations map[string]string `yaml:"-"`
}

type stationRecord struct {
	Code string `csv:"station_code"`
	Name string `csv:"station_name"`
}

var (
	loadOnce sync.Once
	loaded   *tables
)

func get() *tables {
	loadOnce.Do(func() {
		t, err := parse(tablesYAML, stationsCSV)
		if err != nil {
			log.Panic().Err(err).Msg("Failed to load embedded code tables")
		}

		log.Debug().
			Int("stations", len(t.Stations)).
			Int("trains", len(t.Trains)).
			Int("discounts", len(t.DiscountTypes)).
			Msg("Loaded code tables")

		loaded = t
	})

	return loaded
}

func parse(tablesData []byte, stationsData []byte) (*tables, error) {
	var t tables
	if err := yaml.Unmarshal(tablesData, &t); err != nil {
		return nil, err
	}

	var stations []stationRecord
	if err := gocsv.UnmarshalBytes(stationsData, &stations); err != nil {
		return nil, err
	}

	t.Stations = make(map[string]string, len(stations))
	for _, station := range stations {
		t.Stations[station.Code] = station.Name
	}

	return &t, nil
}

func lookup(table map[string]string, code string) (string, bool) {
	name, ok := table[code]
	return name, ok
}

func SeatTypeName(code string) (string, bool) {
	return lookup(get().SeatTypes, code)
}

func PassengerTypeName(code string) (string, bool) {
	return lookup(get().PassengerTypes, code)
}

// DiscountTypeName resolves a discount code. The discount table is not
// exhaustive so unknown codes resolve to UnknownDiscountName with ok=false.
func DiscountTypeName(code string) (string, bool) {
	name, ok := lookup(get().DiscountTypes, code)
	if !ok {
		return UnknownDiscountName, false
	}
	return name, true
}

func StationName(code string) (string, bool) {
	return lookup(get().Stations, code)
}

func TrainName(code string) (string, bool) {
	return lookup(get().Trains, code)
}

// WindowSeatCode returns the locSeatAttCd value for a window seat preference
func WindowSeatCode(preference WindowSeat) string {
	if code, ok := get().WindowSeats[string(preference)]; ok {
		return code
	}
	return DefaultWindowSeatCode
}
