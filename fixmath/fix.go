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

package fixmath

import "golang.org/x/exp/constraints"

// Fix is a fixed-point number: a signed 32-bit integer holding a real
// value scaled by 2^q. The fractional bit count q is supplied per call
// rather than carried by the type, so one Fix value may be interpreted
// in any format the caller keeps track of.
//
// Example: with q=15 (Q17.15), Fix(16384) represents 0.5.
type Fix int32

// FromInt converts the integer d to fixed point in format q.
func FromInt(d int32, q uint) Fix {
	return Fix(d << q)
}

// ToInt returns the integer part of f, rounding toward negative
// infinity. ToInt(FromInt(d, q), q) == d for any d that fits.
func ToInt(f Fix, q uint) int32 {
	if f >= 0 {
		return int32(f) / (1 << q)
	}
	return (int32(f) - (1 << q) + 1) / (1 << q)
}

// ToIntRound returns the integer part of f rounded to the nearest
// integer (half away from zero for positive values).
func ToIntRound(f Fix, q uint) int32 {
	return ToInt(f+(1<<q)/2, q)
}

// FractPart returns the fractional bits of f, i.e. f masked to its low
// q bits.
func FractPart(f Fix, q uint) Fix {
	return f & ((1 << q) - 1)
}

// FromFloat converts a floating-point value to fixed point in format q,
// truncating toward zero. The scaling runs through float64, so this is
// host-side tooling territory, not the hard real-time path.
func FromFloat[T constraints.Float](v T, q uint) Fix {
	return Fix(float64(v) * float64(int64(1)<<q))
}

// Float converts f in format q back to a floating-point value.
func Float[T constraints.Float](f Fix, q uint) T {
	return T(float64(f) / float64(int64(1)<<q))
}

// Add returns a+b. Both operands must be in the same format.
func Add(a, b Fix) Fix {
	return a + b
}

// Sub returns a-b. Both operands must be in the same format.
func Sub(a, b Fix) Fix {
	return a - b
}

// Mul returns a*b where both operands are in format q. The product is
// formed in 64 bits and descaled by q, so same-format multiplication
// never overflows the intermediate.
func Mul(a, b Fix, q uint) Fix {
	return Fix((int64(a) * int64(b)) >> q)
}

// Div returns a/b where both operands are in format q. The dividend is
// pre-scaled by q in 64 bits before the division. b must be non-zero;
// there is no runtime check.
func Div(a, b Fix, q uint) Fix {
	return Fix((int64(a) << q) / int64(b))
}

// AddInt returns a + b where a is in format q and b is a plain integer.
func AddInt(a Fix, b int32, q uint) Fix {
	return a + Fix(b<<q)
}

// SubInt returns a - b where a is in format q and b is a plain integer.
func SubInt(a Fix, b int32, q uint) Fix {
	return a - Fix(b<<q)
}

// MulInt returns a*b where b is a plain integer. The format of a is
// preserved, so no q is needed.
func MulInt(a Fix, b int32) Fix {
	return a * Fix(b)
}

// DivInt returns a/b where b is a plain non-zero integer. The format of
// a is preserved.
func DivInt(a Fix, b int32) Fix {
	return a / Fix(b)
}

// Abs returns the absolute value of f.
func Abs(f Fix) Fix {
	if f < 0 {
		return -f
	}
	return f
}

// Conv rescales a from format q1 to format q2. Narrowing (q2 < q1) uses
// an arithmetic right shift, so negative values truncate toward
// negative infinity.
func Conv(a Fix, q1, q2 uint) Fix {
	if q2 > q1 {
		return a << (q2 - q1)
	}
	return a >> (q1 - q2)
}

// AddG adds a in format q1 to b in format q2, returning the sum in
// format q3. Both operands are rescaled to q3 before combining.
func AddG(a, b Fix, q1, q2, q3 uint) Fix {
	return Conv(a, q1, q3) + Conv(b, q2, q3)
}

// SubG subtracts b in format q2 from a in format q1, returning the
// difference in format q3.
func SubG(a, b Fix, q1, q2, q3 uint) Fix {
	return Conv(a, q1, q3) - Conv(b, q2, q3)
}

// MulG multiplies a in format q1 by b in format q2, returning the
// product in format q3. The raw product lands in format q1+q2 and is
// rescaled from there; it is formed in 32 bits, so the operands must be
// small enough that a*b does not overflow.
func MulG(a, b Fix, q1, q2, q3 uint) Fix {
	return Conv(a*b, q1+q2, q3)
}

// DivG divides a in format q1 by b in format q2, returning the quotient
// in format q3. The dividend is rescaled to q2+q3 so the raw division
// cancels b's format and leaves q3. b must be non-zero.
func DivG(a, b Fix, q1, q2, q3 uint) Fix {
	return Conv(a, q1, q2+q3) / b
}
