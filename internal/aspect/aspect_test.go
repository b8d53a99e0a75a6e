package aspect_test

import (
	"testing"

	"codeberg.org/mutker/fpvsetup/internal/aspect"
	"github.com/stretchr/testify/assert"
)

func TestFindCommonExact(t *testing.T) {
	for _, c := range aspect.Common() {
		got, ok := aspect.FindCommon(c.Numerator/c.Denominator, 1e-9)
		assert.True(t, ok)
		assert.Equal(t, [2]float64{c.Numerator, c.Denominator}, got)
	}
}

func TestFindCommonFirstMatchWins(t *testing.T) {
	// 16:9 (1.778) and 16:10 (1.6) both lie within 0.2 of 1.7; 16:10 is
	// closer, but 16:9 comes first.
	got, ok := aspect.FindCommon(1.7, 0.2)
	assert.True(t, ok)
	assert.Equal(t, [2]float64{16, 9}, got)

	got, ok = aspect.FindCommon(16.0/9.0+0.0001, 0.1)
	assert.True(t, ok)
	assert.Equal(t, [2]float64{16, 9}, got)
}

func TestFindCommonNoMatch(t *testing.T) {
	_, ok := aspect.FindCommon(1.2345, 0.0001)
	assert.False(t, ok)

	_, ok = aspect.FindCommon(10, 0.1)
	assert.False(t, ok)
}

func TestFindCommonStrictBound(t *testing.T) {
	// A difference equal to the rounding does not qualify.
	_, ok := aspect.FindCommon(4+0.25, 0.25)
	assert.False(t, ok)

	got, ok := aspect.FindCommon(4+0.2499, 0.25)
	assert.True(t, ok)
	assert.Equal(t, [2]float64{4, 1}, got)
}

func TestCatalogOrder(t *testing.T) {
	want := [][2]float64{
		{16, 9}, {16, 10}, {4, 3}, {5, 4}, {3, 2},
		{17, 9}, {21, 9}, {32, 9}, {1, 1}, {4, 1},
	}

	common := aspect.Common()
	assert.Len(t, common, len(want))
	for i, c := range common {
		assert.Equal(t, want[i], [2]float64{c.Numerator, c.Denominator})
	}
}

func TestCommonReturnsCopy(t *testing.T) {
	c := aspect.Common()
	c[0].Numerator = 99

	assert.Equal(t, 16.0, aspect.Common()[0].Numerator)
}

func TestSnap(t *testing.T) {
	assert.Equal(t, [2]float64{21, 9}, aspect.Snap(2.38, 0.1))
	assert.Equal(t, [2]float64{1.2345, 1}, aspect.Snap(1.2345, 0.0001))
}
