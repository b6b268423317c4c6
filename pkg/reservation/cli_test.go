package reservation

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const reservationYAML = `
train:
  pnrNo: "320240315001"
  rcvdAmt: "52900"
  tkSpecNum: "1"
payment:
  stlbTrnClsfCd: "17"
  trnNo: "00305"
  dptDt: "20240315"
  dptTm: "083000"
  dptRsStnCd: "0551"
  arvTm: "110500"
  arvRsStnCd: "0020"
  iseLmtDt: "20240314"
  iseLmtTm: "235900"
  stlFlg: "N"
tickets:
  - scarNo: "5"
    seatNo: "7A"
    psrmClCd: "1"
    dcntKndCd: "000"
    rcvdAmt: "52900"
    stdrPrc: "52900"
    dcntPrc: "0"
`

func writeFile(t *testing.T, name string, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var output bytes.Buffer
	app := &cli.App{
		Name:     "srt",
		Writer:   &output,
		Commands: []*cli.Command{RegisterCLI()},
	}

	err := app.Run(append([]string{"srt", "reservation", "decode"}, args...))
	return output.String(), err
}

func TestLoadRawFileJSON(t *testing.T) {
	path := writeFile(t, "reservation.json", `{"train":{"pnrNo":"1"},"payment":{"stlFlg":"Y"},"tickets":[{"seatNo":"1A"}]}`)

	raw, err := LoadRawFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1", raw.Train["pnrNo"])
	assert.Equal(t, "Y", raw.Payment["stlFlg"])
	assert.Equal(t, "1A", raw.Tickets[0]["seatNo"])
}

func TestCLIDecode(t *testing.T) {
	output, err := runCLI(t, "--file", writeFile(t, "reservation.yaml", reservationYAML))
	require.NoError(t, err)

	assert.Equal(t,
		"[SRT] 03월 15일, 수서~부산(08:30~11:05) 52900원(1석), 구입기한 03월 14일 23:59\n"+
			"  5호차 7A (일반실) 어른/청소년 [52900원(0원 할인)]\n",
		output,
	)
}

func TestCLIDecodeVerbose(t *testing.T) {
	output, err := runCLI(t, "--file", writeFile(t, "reservation.yaml", reservationYAML), "--verbose")
	require.NoError(t, err)
	assert.Contains(t, output, "ReservationNumber:")
}

func TestCLIDecodeMissingFile(t *testing.T) {
	_, err := runCLI(t, "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
