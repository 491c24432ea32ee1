package cli

import (
	"testing"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/exchange"
	"github.com/alexanderramin/tally/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateFlag(t *testing.T) {
	var f dateFlag
	assert.Equal(t, "", f.String())
	assert.Equal(t, fixedNow, f.or(fixedNow))

	require.NoError(t, f.Set("2024-02-29"))
	assert.Equal(t, "2024-02-29", f.String())
	assert.Equal(t, testutil.Day(2024, 2, 29), f.or(fixedNow))

	assert.ErrorIs(t, f.Set("2024-13-01"), domain.ErrInvalidDate)
	assert.Equal(t, "date", f.Type())
}

func TestFormatFlag(t *testing.T) {
	f := formatFlag{format: exchange.FormatCSV}
	require.NoError(t, f.Set("XLSX"))
	assert.Equal(t, "xlsx", f.String())
	assert.Error(t, f.Set("json"))
	assert.Equal(t, exchange.FormatXLSX, f.format)
}
