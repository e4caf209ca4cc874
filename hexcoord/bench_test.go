package hexcoord_test

import (
	"testing"

	"github.com/katalvlaran/hexlath/hexcoord"
)

// BenchmarkOffsetRoundTrip measures the hub conversion both ways across all
// four parity variants.
// Complexity: O(1) per conversion.
func BenchmarkOffsetRoundTrip(b *testing.B) {
	layouts := []hexcoord.OffsetLayout{
		hexcoord.OddRow, hexcoord.EvenRow, hexcoord.OddCol, hexcoord.EvenCol,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		layout := layouts[i%4]
		o := hexcoord.NewOffset(i%97-48, i%89-44, layout)
		_ = o.Cube().Offset(layout)
	}
}

// BenchmarkSpiral measures filled-hex generation at radius 50 (7651 cells).
// Complexity: O(radius²).
func BenchmarkSpiral(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = hexcoord.Spiral(hexcoord.Origin, 50)
	}
}

// BenchmarkLine measures line drawing across a 100-cell span.
// Complexity: O(distance).
func BenchmarkLine(b *testing.B) {
	a := hexcoord.Origin
	target := hexcoord.MustCube(100, -40, -60)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = hexcoord.Line(a, target)
	}
}

// BenchmarkFracRound measures lattice snapping alone.
func BenchmarkFracRound(b *testing.B) {
	f := hexcoord.FracCube{X: 12.4, Y: -7.8, Z: -4.6}
	for i := 0; i < b.N; i++ {
		_ = f.Round()
	}
}
