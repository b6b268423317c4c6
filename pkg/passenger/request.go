package passenger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/travigo/srt/pkg/codetables"
)

// RequestParameters is the flat field set posted to the reservation endpoint.
// Keys keep the order they were first set in.
type RequestParameters struct {
	keys   []string
	values map[string]string
}

func NewRequestParameters() *RequestParameters {
	return &RequestParameters{values: map[string]string{}}
}

func (r *RequestParameters) Set(key string, value string) {
	if r.values == nil {
		r.values = map[string]string{}
	}
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

func (r *RequestParameters) Get(key string) (string, bool) {
	value, ok := r.values[key]
	return value, ok
}

func (r *RequestParameters) Keys() []string {
	return append([]string(nil), r.keys...)
}

func (r *RequestParameters) Len() int {
	return len(r.keys)
}

func (r *RequestParameters) Map() map[string]string {
	copied := make(map[string]string, len(r.values))
	for key, value := range r.values {
		copied[key] = value
	}
	return copied
}

// Values converts the parameters for form encoding by the transport layer
func (r *RequestParameters) Values() url.Values {
	values := url.Values{}
	for _, key := range r.keys {
		values.Set(key, r.values[key])
	}
	return values
}

func (r *RequestParameters) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')

	for i, key := range r.keys {
		if i > 0 {
			buffer.WriteByte(',')
		}

		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		valueJSON, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}

		buffer.Write(keyJSON)
		buffer.WriteByte(':')
		buffer.Write(valueJSON)
	}

	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

type SeatPreference struct {
	// Special requests a first class (특실) seat
	Special bool
	Window  codetables.WindowSeat
}

// BuildRequest turns a passenger list into the parameters the booking API expects
func BuildRequest(passengers []Passenger, preference SeatPreference) (*RequestParameters, error) {
	combined, err := Combine(passengers)
	if err != nil {
		return nil, err
	}

	total, err := TotalCount(combined)
	if err != nil {
		return nil, err
	}

	params := NewRequestParameters()
	params.Set("totPrnb", total)
	params.Set("psgGridcnt", strconv.Itoa(len(combined)))

	for i, passenger := range combined {
		index := i + 1
		params.Set(fmt.Sprintf("psgTpCd%d", index), passenger.TypeCode())
		params.Set(fmt.Sprintf("psgInfoPerPrnb%d", index), strconv.Itoa(passenger.Count))
	}

	seatClass := "1"
	if preference.Special {
		seatClass = "2"
	}

	params.Set("locSeatAttCd1", codetables.WindowSeatCode(preference.Window))
	params.Set("rqSeatAttCd1", "015")
	params.Set("dirSeatAttCd1", "009")
	params.Set("smkSeatAttCd1", "000")
	params.Set("etcSeatAttCd1", "000")
	params.Set("psrmClCd1", seatClass)

	return params, nil
}
