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

package main

import (
	"bytes"
	"fmt"
	"math"

	"golang.org/x/tools/imports"
)

const licenseHeader = `// Copyright 2026 lw-math Authors
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
`

// quarterWave returns sin(x) in Q1.15 for n evenly spaced angles over
// the first quadrant: entry i is round(32767 * sin(pi/2 * i/n)).
func quarterWave(n int) []int16 {
	table := make([]int16, n)
	for i := range table {
		table[i] = int16(math.Round(32767 * math.Sin(math.Pi/2*float64(i)/float64(n))))
	}
	return table
}

// emitTable renders the table as a Go source file and formats it.
func emitTable(pkg string, table []int16) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(licenseHeader)
	buf.WriteString("\n// Code generated by lutgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	n := len(table)
	fmt.Fprintf(&buf, "// sinTable holds sin(x) in Q1.15 for %d evenly spaced angles covering\n", n)
	fmt.Fprintf(&buf, "// the first quadrant: entry i is round(32767 * sin(pi/2 * i/%d)).\n", n)
	fmt.Fprintf(&buf, "var sinTable = [%d]int16{\n", n)
	for i, v := range table {
		if i%8 == 0 {
			buf.WriteString("\t")
		}
		fmt.Fprintf(&buf, "0x%04X,", uint16(v))
		if i%8 == 7 || i == n-1 {
			buf.WriteString("\n")
		} else {
			buf.WriteString(" ")
		}
	}
	buf.WriteString("}\n")

	formatted, err := imports.Process("table.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format table source: %w", err)
	}
	return formatted, nil
}
