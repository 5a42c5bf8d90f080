package kcore_test

import (
	"testing"

	"github.com/katalvlaran/ctgcn/builder"
	"github.com/katalvlaran/ctgcn/kcore"
)

func BenchmarkCoreNumbers(b *testing.B) {
	g, err := builder.BuildGraph(2000, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(0.005))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = kcore.CoreNumbers(g); err != nil {
			b.Fatal(err)
		}
	}
}
