package lzend

import (
	"math/rand"
	"testing"
)

// How to run:
//   go test . -bench . -benchmem -run '^$'

func benchInput(n int, sigma int) []byte {
	r := rand.New(rand.NewSource(1))
	text := make([]byte, n)
	for i := range text {
		text[i] = 'a' + byte(r.Intn(sigma))
	}
	return text
}

func benchmarkParse(b *testing.B, cfg Config, text []byte) {
	parser, err := NewParser(cfg)
	if err != nil {
		b.Fatalf("NewParser failed: %v", err)
	}
	defer parser.Close()
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := parser.Parse(text); err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
	}
}

func BenchmarkParseBTree(b *testing.B) {
	benchmarkParse(b, Config{}, benchInput(1<<17, 4))
}

func BenchmarkParseRangeMarking(b *testing.B) {
	benchmarkParse(b, Config{Backend: BackendRangeMarking}, benchInput(1<<17, 4))
}

func BenchmarkExpand(b *testing.B) {
	text := benchInput(1<<17, 4)
	parsing, err := Parse(text)
	if err != nil {
		b.Fatalf("Parse failed: %v", err)
	}
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Expand(parsing); err != nil {
			b.Fatalf("Expand failed: %v", err)
		}
	}
}
