package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	"chess-core/fen"
	"chess-core/perft"
)

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func defaultDepth() int {
	d, err := strconv.Atoi(getenv("CHESS_PERFT_DEPTH", "0"))
	if err != nil {
		return 0
	}
	return d
}

func main() {
	fenStr := flag.String("fen", getenv("CHESS_PERFT_FEN", fen.StartPos), "FEN string (defaults to initial position)")
	depth := flag.Int("depth", defaultDepth(), "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	verify := flag.Bool("verify", false, "Compare root counts against dragontoothmg and exit 1 on mismatch")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := fen.Decode(*fenStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode error: %v\n", err)
		os.Exit(2)
	}

	if *verify {
		mismatches, err := perft.Compare(*fenStr, *depth)
		if err != nil {
			fmt.Fprintf(os.Stderr, "verify: %v\n", err)
			os.Exit(2)
		}
		for _, m := range mismatches {
			fmt.Println(m)
		}
		if len(mismatches) > 0 {
			fmt.Printf("%d mismatching root moves\n", len(mismatches))
			os.Exit(1)
		}
		fmt.Println("ok")
		return
	}

	if *divide {
		div := perft.Divide(board, *depth)
		for _, mv := range perft.SortedMoves(div) {
			fmt.Printf("%s: %d\n", mv, div[mv])
		}
		fmt.Printf("Total: %d\n", perft.Total(div))
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += perft.Count(board, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}
