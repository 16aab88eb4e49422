package hkex

import (
	"testing"

	"github.com/banbox/cndata/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSessions(t *testing.T) {
	rec := map[string]string{
		"aht_open": "0", "aht_high": "-", "aht_low": "-", "aht_volume": "0",
		"dt_open": "101", "dt_high": "105", "dt_low": "99", "dt_volume": "20",
	}
	require.Nil(t, mergeSessions(rec))
	assert.Equal(t, "101", rec["open"])
	assert.Equal(t, "105", rec["high"])
	assert.Equal(t, "99", rec["low"])
	assert.Equal(t, "20", rec["volume"])

	plain := map[string]string{"open": "5"}
	require.Nil(t, mergeSessions(plain))
	assert.Equal(t, "5", plain["open"])

	bad := map[string]string{"aht_open": "x"}
	err := mergeSessions(bad)
	require.NotNil(t, err)
	assert.Equal(t, errs.CodeInvalidResponse, err.Code)
}

func TestParseFutureCellCount(t *testing.T) {
	text := "JUL-23  100  110  90\r\n"
	_, err := parseFutureReport(text, "20230728", &dayReport{Product: "HSI", Name: "hsif", Layout: layoutSession})
	require.NotNil(t, err)
	assert.True(t, err.Structural())
}

func TestParseOpens(t *testing.T) {
	opens := parseOpens([]string{
		"   11 恒生银行   <P300-120.10  Y100-120.20>",
		"                 <500-120.30>",
		"   11 恒生银行   <200-120.40>",
		"   16 新鸿基地产 <D1,000-85.00  <2,000-85.10>",
	})
	assert.Equal(t, "120.40", opens["00011"])
	assert.Equal(t, "85.10", opens["00016"])
}
