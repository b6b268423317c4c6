package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, method string, target string, body string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := NewApp().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, respBody
}

const reservationBody = `{
	"train": {"pnrNo": "320240315001", "rcvdAmt": "52900", "tkSpecNum": "1"},
	"payment": {
		"stlbTrnClsfCd": "17", "trnNo": "00305",
		"dptDt": "20240315", "dptTm": "083000", "dptRsStnCd": "0551",
		"arvTm": "110500", "arvRsStnCd": "0020",
		"iseLmtDt": "20240314", "iseLmtTm": "235900", "stlFlg": "Y"
	},
	"tickets": [
		{"scarNo": "5", "seatNo": "7A", "psrmClCd": "1", "dcntKndCd": "000", "rcvdAmt": "52900", "stdrPrc": "52900", "dcntPrc": "0"}
	]
}`

func TestVersion(t *testing.T) {
	status, body := doRequest(t, http.MethodGet, "/core/version", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"version":"v0.1"}`, string(body))
}

func TestPassengerRequest(t *testing.T) {
	status, body := doRequest(t, http.MethodPost, "/core/passengers/request",
		`{"passengers":[{"type":"adult","count":2},{"type":"child"},{"type":"adult"}],"special":true,"window":"aisle"}`)
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t,
		`{"totPrnb":"4","psgGridcnt":"2","psgTpCd1":"1","psgInfoPerPrnb1":"3","psgTpCd2":"5","psgInfoPerPrnb2":"1",`+
			`"locSeatAttCd1":"013","rqSeatAttCd1":"015","dirSeatAttCd1":"009","smkSeatAttCd1":"000","etcSeatAttCd1":"000","psrmClCd1":"2"}`,
		string(body),
	)
}

func TestPassengerRequestInvalid(t *testing.T) {
	status, _ := doRequest(t, http.MethodPost, "/core/passengers/request", `{"passengers":[{"type":"infant"}]}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doRequest(t, http.MethodPost, "/core/passengers/request", `{"passengers":[{"type":"adult","count":-2}]}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestTicketDecode(t *testing.T) {
	status, body := doRequest(t, http.MethodPost, "/core/tickets/decode?detail=basic",
		`{"scarNo":"5","seatNo":"7A","psrmClCd":"2","dcntKndCd":"777","rcvdAmt":"40000","stdrPrc":"52900","dcntPrc":"12900"}`)
	require.Equal(t, http.StatusOK, status)

	var decoded struct {
		Ticket  map[string]interface{}
		Summary string
	}
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, "기타 할인", decoded.Ticket["PassengerType"])
	assert.NotContains(t, decoded.Ticket, "OriginalPrice")
	assert.Equal(t, "5호차 7A (특실) 기타 할인 [40000원(12900원 할인)]", decoded.Summary)
}

func TestTicketDecodeFailure(t *testing.T) {
	status, _ := doRequest(t, http.MethodPost, "/core/tickets/decode",
		`{"scarNo":"5","seatNo":"7A","psrmClCd":"1","dcntKndCd":"000","rcvdAmt":"abc","stdrPrc":"52900","dcntPrc":"0"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestReservationDecode(t *testing.T) {
	status, body := doRequest(t, http.MethodPost, "/core/reservations/decode", reservationBody)
	require.Equal(t, http.StatusOK, status)

	var decoded struct {
		Reservation map[string]interface{}
		Tickets     []map[string]interface{}
		Summary     string
	}
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, "[SRT] 03월 15일, 수서~부산(08:30~11:05) 52900원(1석)", decoded.Summary)
	assert.Equal(t, "17", decoded.Reservation["TrainCode"])
	assert.Equal(t, true, decoded.Reservation["Paid"])
	require.Len(t, decoded.Tickets, 1)
	assert.Equal(t, "7A", decoded.Tickets[0]["Seat"])
}

func TestReservationDecodeUnknownStation(t *testing.T) {
	body := strings.Replace(reservationBody, `"0020"`, `"9999"`, 1)

	status, respBody := doRequest(t, http.MethodPost, "/core/reservations/decode", body)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, string(respBody), "9999")
}

func TestCodes(t *testing.T) {
	status, body := doRequest(t, http.MethodGet, "/core/codes/seat-types", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{"Code":"1","Name":"일반실"},{"Code":"2","Name":"특실"}]`, string(body))

	status, _ = doRequest(t, http.MethodGet, "/core/codes/platforms", "")
	assert.Equal(t, http.StatusNotFound, status)
}
