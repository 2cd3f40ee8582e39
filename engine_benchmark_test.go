package lunchr_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/mrterry/lunchr"
)

// BenchmarkSettle measures a full settle from an empty seating.
// Scenarios compare balanced, oversubscribed and packed runs.
func BenchmarkSettle(b *testing.B) {
	scenarios := []struct {
		persons, tables, capacity int
		scorer                    string
	}{
		{60, 10, 6, "size"},
		{300, 50, 6, "size"},
		{70, 10, 6, "size"},
		{300, 50, 6, "packing"},
	}

	for _, sc := range scenarios {
		name := sc.scorer + "/" + strconv.Itoa(sc.persons) + "p" + strconv.Itoa(sc.tables) + "t"
		b.Run(name, func(b *testing.B) {
			cfg := lunchr.Config{
				PersonCount:         sc.persons,
				TableCount:          sc.tables,
				TableCapacity:       sc.capacity,
				Scorer:              sc.scorer,
				MaxRounds:           50,
				SkipInvariantChecks: true,
			}
			ctx := context.Background()

			b.ReportAllocs()
			for b.Loop() {
				eng, err := lunchr.New(&cfg)
				if err != nil {
					b.Fatal(err)
				}
				if _, err := eng.Settle(ctx, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
