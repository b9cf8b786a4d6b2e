package utils_test

import (
	"math"
	"testing"
	"time"

	"product-alternatives/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"Nil", nil, 0},
		{"Int", 3, 3},
		{"Int64", int64(7), 7},
		{"Uint8", uint8(2), 2},
		{"Float", 2.0, 2},
		{"NaN", math.NaN(), 0},
		{"String", "4", 4},
		{"Float String", "2.0", 2},
		{"Padded String", " 5 ", 5},
		{"Empty String", "", 0},
		{"Garbage", "n/a", 0},
		{"Bytes", []byte("9"), 9},
		{"Negative", "-1", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ToInt(tt.in))
		})
	}
}

func TestToNonNegativeInt(t *testing.T) {
	assert.Equal(t, 0, utils.ToNonNegativeInt("-3"))
	assert.Equal(t, 0, utils.ToNonNegativeInt(nil))
	assert.Equal(t, 2, utils.ToNonNegativeInt("2"))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", utils.ToString(nil))
	assert.Equal(t, "abc", utils.ToString([]byte("abc")))
	assert.Equal(t, "12", utils.ToString(int64(12)))
	assert.Equal(t, "1.5", utils.ToString(1.5))
	assert.Equal(t, "2024-03-01", utils.ToString(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, utils.SplitList("1, 2", "", " 3 ,"))
	assert.Nil(t, utils.SplitList())
}

func TestCompactList(t *testing.T) {
	assert.Equal(t, []string{"NORTE, CALI", "SUR"}, utils.CompactList(" NORTE, CALI ", "", "SUR"))
	assert.Nil(t, utils.CompactList(" "))
}
