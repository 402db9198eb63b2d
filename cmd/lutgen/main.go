// Copyright 2026 lw-math Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command lutgen generates the quarter-wave sine lookup table used by
// the trig package.
//
// Usage:
//
//	lutgen -output table.go
//	lutgen -output table.go -pkg trig -entries 256
//
// Or via go:generate from the trig package:
//
//	//go:generate go run github.com/GiulioDallaVecchia/lw-math/cmd/lutgen -output table.go
//
// Entry i of the emitted table is round(max * sin(pi/2 * i/entries)) in
// Q1.15, covering 0 to 90 degrees; the trig package reconstructs the
// remaining quadrants by symmetry.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "table.go", "Output Go source file")
	pkgName    = flag.String("pkg", "trig", "Output package name")
	entries    = flag.Int("entries", 256, "Number of table entries (quarter wave)")
)

func main() {
	flag.Parse()

	if *entries <= 0 || *entries > 65536 {
		fmt.Fprintf(os.Stderr, "Error: -entries must be in 1..65536, got %d\n", *entries)
		os.Exit(1)
	}

	src, err := emitTable(*pkgName, quarterWave(*entries))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outputFile, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s: %d entries\n", *outputFile, *entries)
}
