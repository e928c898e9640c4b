package winsize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name   string
		screen Size
		want   Size
	}{
		{"large screen", Size{2000, 1200}, Size{1800, 1000}},
		{"very large screen", Size{3000, 2000}, Size{2800, 1800}},
		{"small screen hits floor", Size{900, 700}, Size{800, 600}},
		{"exact floor", Size{1000, 800}, Size{800, 600}},
		{"zero screen", Size{0, 0}, Size{800, 600}},
		{"smaller than margin", Size{150, 50}, Size{800, 600}},
		{"mixed", Size{1920, 700}, Size{1720, 600}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.screen))
		})
	}
}

func TestComputeFloor(t *testing.T) {
	for w := uint32(0); w <= 4000; w += 37 {
		for h := uint32(0); h <= 3000; h += 41 {
			got := Compute(Size{w, h})
			assert.GreaterOrEqual(t, got.Width, uint32(MinMaxWidth))
			assert.GreaterOrEqual(t, got.Height, uint32(MinMaxHeight))
			if w >= Margin+MinMaxWidth {
				assert.Equal(t, w-Margin, got.Width)
			}
			if h >= Margin+MinMaxHeight {
				assert.Equal(t, h-Margin, got.Height)
			}
		}
	}
}

func TestSizeClamp(t *testing.T) {
	bound := Size{800, 600}
	assert.Equal(t, Size{800, 500}, Size{1000, 500}.Clamp(bound))
	assert.Equal(t, Size{700, 600}, Size{700, 900}.Clamp(bound))
	assert.Equal(t, Size{10, 10}, Size{10, 10}.Clamp(bound))
	assert.True(t, Size{800, 600}.Fits(bound))
	assert.False(t, Size{801, 600}.Fits(bound))
	assert.False(t, Size{800, 601}.Fits(bound))
}
