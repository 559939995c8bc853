//go:build bench

package css

import (
	"strings"
	"testing"
)

// BenchmarkParseStylesheet benchmarks stylesheet parsing, done once per
// conversion.
func BenchmarkParseStylesheet(b *testing.B) {
	inputs := []struct {
		name string
		css  string
	}{
		{"small", "h1 { color: #1f4e79; font-size: 24px; }"},
		{"large", strings.Repeat("p.lead, h2 { color: rgb(10, 20, 30); font-weight: bold; text-align: center; }\n", 200)},
		{"unterminated", "h1 { color: #1f4e79 } p { font-size: 12pt"},
	}

	for _, input := range inputs {
		b.Run(input.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = ParseStylesheet(input.css)
			}
		})
	}
}
