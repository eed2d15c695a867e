package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayValid(t *testing.T) {
	for day := Monday; day <= Sunday; day++ {
		assert.True(t, day.Valid())
	}
	assert.False(t, Weekday(-1).Valid())
	assert.False(t, Weekday(7).Valid())
}

func TestWeekdayString(t *testing.T) {
	assert.Equal(t, "monday", Monday.String())
	assert.Equal(t, "sunday", Sunday.String())
	assert.Equal(t, "weekday(9)", Weekday(9).String())
}

func TestParseWeekday(t *testing.T) {
	for day := Monday; day <= Sunday; day++ {
		parsed, err := ParseWeekday(day.String())
		require.NoError(t, err)
		assert.Equal(t, day, parsed)
	}

	_, err := ParseWeekday("Monday")
	assert.ErrorIs(t, err, ErrInvalidWeekday)
}
