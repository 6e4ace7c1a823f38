// Package main times exact vector operations against their fast float32
// approximations and writes a CSV summary of throughput and approximation
// error.
package main

import (
	"flag"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/planar/vec"
)

// BenchRow is one result record in the output CSV.
type BenchRow struct {
	Operation string  `csv:"operation"`
	Samples   int     `csv:"samples"`
	TotalUS   int64   `csv:"total_us"`
	NsPerOp   float64 `csv:"ns_per_op"`
	MaxRelErr float64 `csv:"max_rel_err"`
}

func main() {
	// CLI flags
	samples := flag.Int("samples", 1000000, "Number of random vectors per operation")
	seed := flag.Int64("seed", 1, "RNG seed")
	outputDir := flag.String("output", "", "Output directory for vecbench.csv")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))
	vecs := make([]vec.Vec2[float32], *samples)
	for i := range vecs {
		// Components in [-100, 100), re-rolled if the vector lands on zero
		for {
			vecs[i] = vec.New(rng.Float32()*200-100, rng.Float32()*200-100)
			if vecs[i] != (vec.Vec2[float32]{}) {
				break
			}
		}
	}

	var rows []BenchRow

	// Exact length
	start := time.Now()
	var sink float32
	for _, v := range vecs {
		l, err := vec.Length[float32](v)
		if err != nil {
			log.Fatalf("length failed: %v", err)
		}
		sink += l
	}
	rows = append(rows, row("length", *samples, time.Since(start), 0))

	// Fast length, tracking worst relative error against the exact value
	start = time.Now()
	for _, v := range vecs {
		sink += vec.FastLength(v)
	}
	fastDur := time.Since(start)
	maxRelErr := 0.0
	for _, v := range vecs {
		exact, err := vec.Length[float64](v)
		if err != nil {
			log.Fatalf("length failed: %v", err)
		}
		relErr := math.Abs(float64(vec.FastLength(v))-exact) / exact
		if relErr > maxRelErr {
			maxRelErr = relErr
		}
	}
	rows = append(rows, row("fast_length", *samples, fastDur, maxRelErr))

	// Exact normalization
	start = time.Now()
	for _, v := range vecs {
		u, err := vec.Normalize[float32](v)
		if err != nil {
			log.Fatalf("normalize failed: %v", err)
		}
		sink += u.X()
	}
	rows = append(rows, row("normalize", *samples, time.Since(start), 0))

	// Fast normalization
	start = time.Now()
	for _, v := range vecs {
		sink += vec.FastNormalize(v).X()
	}
	rows = append(rows, row("fast_normalize", *samples, time.Since(start), 0))

	outPath := filepath.Join(*outputDir, "vecbench.csv")
	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("failed to create %s: %v", outPath, err)
	}
	defer f.Close()
	if err := gocsv.Marshal(rows, f); err != nil {
		log.Fatalf("failed to write CSV: %v", err)
	}

	for _, r := range rows {
		log.Printf("%-15s %8.1f ns/op  max_rel_err=%.2e", r.Operation, r.NsPerOp, r.MaxRelErr)
	}
	log.Printf("wrote %s (sink=%v)", outPath, sink)
}

// row builds a BenchRow from raw timing data.
func row(op string, n int, d time.Duration, maxRelErr float64) BenchRow {
	return BenchRow{
		Operation: op,
		Samples:   n,
		TotalUS:   d.Microseconds(),
		NsPerOp:   float64(d.Nanoseconds()) / float64(n),
		MaxRelErr: maxRelErr,
	}
}
