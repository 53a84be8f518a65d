package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	t.Run("pinned fixture", func(t *testing.T) {
		got := Compute("ab", 300)
		assert.InDelta(t, 7.5, got.FontSize, 1e-9)
		assert.InDelta(t, 3.0, got.Margin, 1e-9)
	})

	tests := []struct {
		name  string
		text  string
		width float64
		want  float64
	}{
		{"short line hits the cap", "hi", 1000, 25},
		{"long line under the cap", strings.Repeat("x", 200), 1200, 1200.0 / 3 * 8 / 200},
		{"longest of several lines wins", "a\n" + strings.Repeat("y", 160) + "\nb", 900, 900.0 / 3 * 8 / 160},
		{"runes not bytes", strings.Repeat("é", 160), 900, 900.0 / 3 * 8 / 160},
		{"zero width", "anything", 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Compute(tc.text, tc.width)
			assert.InDelta(t, tc.want, got.FontSize, 1e-9)
			assert.InDelta(t, tc.width*MarginRatio, got.Margin, 1e-9)
		})
	}
}

func TestComputeDegenerateInput(t *testing.T) {
	for _, text := range []string{"", "\n", "\n\n\n"} {
		got := Compute(text, 800)
		assert.InDelta(t, 800*CapRatio, got.FontSize, 1e-9, "text %q", text)
	}
}

func TestComputeMonotonic(t *testing.T) {
	for _, width := range []float64{320, 800, 1920, 3840} {
		prev := Compute("x", width).FontSize
		for n := 2; n <= 400; n++ {
			size := Compute(strings.Repeat("x", n), width).FontSize
			assert.LessOrEqual(t, size, prev, "width %v, length %d", width, n)
			assert.LessOrEqual(t, size, width*CapRatio)
			prev = size
		}
	}
}

func TestLongestLine(t *testing.T) {
	assert.Equal(t, 1, LongestLine(""))
	assert.Equal(t, 5, LongestLine("hello"))
	assert.Equal(t, 6, LongestLine("ab\nabcdef\nabc"))
	assert.Equal(t, 3, LongestLine("日本語"))
}
