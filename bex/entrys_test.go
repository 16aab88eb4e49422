package bex

import (
	"testing"

	"github.com/banbox/cndata"
	"github.com/banbox/cndata/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExg(t *testing.T) {
	for _, name := range Names() {
		exg, err := New(name, map[string]interface{}{cndata.OptRetryWait: 0})
		require.Nil(t, err, name)
		assert.Equal(t, name, exg.Info().ID)
		markets := append(exg.Markets(cndata.ApiReference), exg.Markets(cndata.ApiEod)...)
		assert.NotEmpty(t, markets, name)
	}
	assert.Len(t, Names(), 10)
}

func TestBadName(t *testing.T) {
	_, err := New("nyse", nil)
	require.NotNil(t, err)
	assert.Equal(t, errs.CodeBadExgName, err.Code)
}

func TestOptionsCopied(t *testing.T) {
	opts := map[string]interface{}{cndata.OptRetryWait: 0}
	_, err := New("sse", opts)
	require.Nil(t, err)
	assert.Len(t, opts, 1)
}
