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

// Package trig computes sine and cosine of Q1.15 angles from a 256-entry
// quarter-wave lookup table.
//
// Angles cover the full circle in 16 bits: -32768 maps to -pi and 32767
// to just under +pi. Quarter-wave symmetry folds all 1024 reachable
// table positions onto 256 stored samples, so the table costs 512 bytes
// and a lookup is O(1) with no branches beyond a 4-way quadrant select.
// The table is a compile-time constant; concurrent lookups need no
// synchronization.
package trig

//go:generate go run github.com/GiulioDallaVecchia/lw-math/cmd/lutgen -output table.go

// Angle is a rotor angle in Q1.15 format over the full circle: -32768
// represents -pi, 32767 just under +pi, wrapping at the boundary.
type Angle int16

// Components holds the cosine and sine of an angle, each in Q1.15
// (unit magnitude is 32767).
type Components struct {
	Cos int16
	Sin int16
}

// Quadrant selector: bits 9:8 of the reduced 10-bit index.
const (
	quadMask uint16 = 0x0300
	quad0    uint16 = 0x0200 // 0..90 degrees
	quad1    uint16 = 0x0300 // 90..180 degrees
	quad2    uint16 = 0x0000 // 180..270 degrees
	quad3    uint16 = 0x0100 // 270..360 degrees
)

// SinCos returns the cosine and sine of angle.
//
// Algorithm:
//  1. Bias the angle by 32768 into an unsigned 16-bit range (the uint16
//     conversion wraps, which is exactly the circle wrapping).
//  2. Divide by 64 to get a 10-bit position on the circle.
//  3. Bits 9:8 pick the quadrant; the low 8 bits index the quarter-wave
//     table directly, and their complement (255-idx) indexes it from the
//     far end.
//
// Deterministic and O(1); there are no error conditions.
func SinCos(angle Angle) Components {
	index := uint16(32768+int32(angle)) / 64

	idx := uint8(index)
	cidx := 255 - idx

	var c Components
	switch index & quadMask {
	case quad0:
		c.Sin = sinTable[idx]
		c.Cos = sinTable[cidx]
	case quad1:
		c.Sin = sinTable[cidx]
		c.Cos = -sinTable[idx]
	case quad2:
		c.Sin = -sinTable[idx]
		c.Cos = -sinTable[cidx]
	case quad3:
		c.Sin = -sinTable[cidx]
		c.Cos = sinTable[idx]
	}
	return c
}
