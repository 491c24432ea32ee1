package logfile

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_PreservesOrderAndFields(t *testing.T) {
	entries := []domain.TaskLogEntry{
		{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Task: "reply to comments", Completed: true, Rating: 8},
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Task: `market research, "deep" dive`, Completed: false, Rating: 0},
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Task: "multi\nline", Completed: true, Rating: 10},
	}
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, entries))
	assert.True(t, strings.HasPrefix(buf.String(), "date,task,completed,rating\n"))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestDecode_Empty(t *testing.T) {
	got, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Decode(strings.NewReader("date,task,completed,rating\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecode_LenientBooleans(t *testing.T) {
	in := "\ufeffDate,Task,Completed,Rating\n2024-01-01,a,1,3\n2024-01-02,b,no,4\n2024-01-03,c,YES,5\n"
	got, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].Completed)
	assert.False(t, got[1].Completed)
	assert.True(t, got[2].Completed)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		row  int
		is   error
	}{
		{"bad header", "when,what,done,score\n", 1, ErrBadHeader},
		{"bad date", "date,task,completed,rating\n2024-13-01,a,true,3\n", 2, domain.ErrInvalidDate},
		{"rating out of range", "date,task,completed,rating\n2024-01-01,a,true,3\n2024-01-02,b,true,42\n", 3, domain.ErrInvalidRating},
		{"blank task", "date,task,completed,rating\n2024-01-01, ,true,3\n", 2, domain.ErrEmptyTask},
		{"short row", "date,task,completed,rating\n2024-01-01,a\n", 2, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in))
			require.Error(t, err)
			var rowErr *RowError
			require.ErrorAs(t, err, &rowErr)
			assert.Equal(t, tt.row, rowErr.Row)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}
