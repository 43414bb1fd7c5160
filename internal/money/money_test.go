package money_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmi-labs/compass/internal/money"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{5, "$5"},
		{1234.6, "$1,235"},
		{1000000, "$1,000,000"},
		{-500, "-$500"},
		{math.NaN(), "$0"},
		{math.Inf(1), "$0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, money.Format(tt.in))
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "12.5%", money.Percent(0.125))
	assert.Equal(t, "-10.0%", money.Percent(-0.1))
	assert.Equal(t, "0%", money.Percent(math.NaN()))
}
