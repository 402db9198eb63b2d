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

// sqrtMaxIter caps the Newton iteration count so worst-case execution
// time is bounded, a requirement for interrupt-context callers. Six
// rounds converge for the full int32 range given the two seeds below.
const sqrtMaxIter = 6

// Isqrt returns the integer square root of input, or 0 for negative
// input. Negative input is a defined degenerate result, not an error.
//
// Algorithm: Newton's method, next = (guess + input/guess) / 2, with a
// magnitude-dependent seed (128 for inputs up to 2^21, 8192 above).
// Iteration stops on a fixed point or after sqrtMaxIter rounds,
// whichever comes first, so results near the cap may be off by one from
// the exact floor. Accuracy is sized for control loops, not for
// bit-exact rounding.
func Isqrt(input int32) int32 {
	if input <= 0 {
		return 0
	}

	var guess int32
	if input <= 2097152 {
		guess = 128
	} else {
		guess = 8192
	}

	for iter := 0; iter < sqrtMaxIter; iter++ {
		next := (guess + input/guess) / 2
		if next == guess {
			break
		}
		guess = next
	}
	return guess
}

// Sqrt returns the square root of a, where a and the result are both in
// format q. The input is pre-scaled left by q before the integer root:
// sqrt(a * 2^q * 2^q) = sqrt(a) * 2^q, so the pre-shift restores the
// format the root halved. a<<q must not overflow int32.
func Sqrt(a Fix, q uint) Fix {
	return Fix(Isqrt(int32(a) << q))
}
