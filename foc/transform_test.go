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

package foc

import (
	"math"
	"testing"

	"github.com/GiulioDallaVecchia/lw-math/trig"
)

// TestClarke verifies exact outputs, including both saturation
// directions and the negative-extreme remap.
func TestClarke(t *testing.T) {
	tests := []struct {
		name string
		in   AB
		want AlphaBeta
	}{
		{"Zero", AB{0, 0}, AlphaBeta{0, 0}},
		{"BalancedBeta", AB{1000, -500}, AlphaBeta{1000, 0}},
		{"Nominal", AB{1000, 500}, AlphaBeta{1000, -1154}},
		{"SaturateHigh", AB{0, -32768}, AlphaBeta{0, 32767}},
		{"SaturateLowRemap", AB{0, 32767}, AlphaBeta{0, -32767}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clarke(tt.in); got != tt.want {
				t.Errorf("Clarke(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

// TestClarkeFloatReference compares beta against the float formula
// -(2b+a)/sqrt(3) over a grid of non-saturating inputs.
func TestClarkeFloatReference(t *testing.T) {
	vals := []int16{-20000, -7777, -1000, -1, 0, 1, 999, 12345, 20000}
	for _, a := range vals {
		for _, b := range vals {
			got := Clarke(AB{a, b})
			if got.Alpha != a {
				t.Fatalf("Clarke(%d, %d).Alpha = %d, want %d", a, b, got.Alpha, a)
			}

			ref := -(2*float64(b) + float64(a)) / math.Sqrt(3)
			if ref > 32767 || ref < -32767 {
				continue
			}
			if d := math.Abs(float64(got.Beta) - ref); d > 2 {
				t.Errorf("Clarke(%d, %d).Beta = %d, want ~%.1f", a, b, got.Beta, ref)
			}
		}
	}
}

// TestPark verifies exact outputs at known angles, including
// independent saturation of both components and the remap on the
// negative side.
func TestPark(t *testing.T) {
	tests := []struct {
		name  string
		in    AlphaBeta
		theta trig.Angle
		want  QD
	}{
		{"ZeroAngle", AlphaBeta{1000, 0}, 0, QD{999, 0}},
		{"ZeroInput", AlphaBeta{0, 0}, 12345, QD{0, 0}},
		{"SaturateQ", AlphaBeta{32767, -32767}, 8192, QD{32767, 142}},
		{"SaturateQLowRemap", AlphaBeta{-32767, 32767}, 8192, QD{-32767, -142}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Park(tt.in, tt.theta); got != tt.want {
				t.Errorf("Park(%+v, %d) = %+v, want %+v", tt.in, tt.theta, got, tt.want)
			}
		})
	}
}

// TestParkFloatReference compares Park against a float rotation for
// non-saturating inputs. Tolerance covers the lookup-table angle
// quantization (~0.6% of magnitude) plus truncation.
func TestParkFloatReference(t *testing.T) {
	inputs := []AlphaBeta{{12000, -5000}, {-15000, 7000}, {20000, 20000}, {100, -100}}
	for theta := -32768; theta <= 32767; theta += 1021 {
		rad := math.Pi * float64(theta) / 32768
		sin, cos := math.Sin(rad), math.Cos(rad)

		for _, in := range inputs {
			got := Park(in, trig.Angle(theta))

			refQ := (float64(in.Alpha)*cos - float64(in.Beta)*sin)
			refD := (float64(in.Alpha)*sin + float64(in.Beta)*cos)
			tol := math.Max(math.Abs(refQ), math.Abs(refD))*0.008 + 4

			if d := math.Abs(float64(got.Q) - refQ); d > tol {
				t.Errorf("Park(%+v, %d).Q = %d, want ~%.0f (off %.1f)", in, theta, got.Q, refQ, d)
			}
			if d := math.Abs(float64(got.D) - refD); d > tol {
				t.Errorf("Park(%+v, %d).D = %d, want ~%.0f (off %.1f)", in, theta, got.D, refD, d)
			}
		}
	}
}

// TestNoNegativeExtreme sweeps extreme inputs and verifies no Clarke or
// Park output is ever exactly -32768: saturation remaps it to -32767 so
// downstream 16-bit negation stays safe.
func TestNoNegativeExtreme(t *testing.T) {
	extremes := []int16{-32768, -32767, -1, 0, 1, 32767}
	thetas := []trig.Angle{-32768, -16384, -8192, 0, 8192, 16384, 24576, 32767}

	for _, a := range extremes {
		for _, b := range extremes {
			ab := Clarke(AB{a, b})
			if ab.Alpha == -32768 && a != -32768 {
				t.Fatalf("Clarke(%d, %d).Alpha = -32768", a, b)
			}
			if ab.Beta == -32768 {
				t.Fatalf("Clarke(%d, %d).Beta = -32768", a, b)
			}

			for _, theta := range thetas {
				qd := Park(AlphaBeta{a, b}, theta)
				if qd.Q == -32768 || qd.D == -32768 {
					t.Fatalf("Park({%d, %d}, %d) = %+v contains -32768", a, b, theta, qd)
				}
			}
		}
	}
}

// TestRevParkZeroAngle verifies the plain descale path.
func TestRevParkZeroAngle(t *testing.T) {
	got := RevPark(QD{999, 0}, 0)
	want := AlphaBeta{998, 0} // 999*32766/32768 truncated
	if got != want {
		t.Errorf("RevPark({999, 0}, 0) = %+v, want %+v", got, want)
	}
}

// TestRevParkTruncates documents the asymmetry with Clarke and Park:
// RevPark does not saturate, so a full-scale input at 45 degrees wraps
// to a negative alpha instead of clamping to 32767.
func TestRevParkTruncates(t *testing.T) {
	got := RevPark(QD{32767, 32767}, 8192)
	if got.Alpha != -19341 {
		t.Errorf("RevPark({32767, 32767}, 8192).Alpha = %d, want -19341 (wrapped, not saturated)", got.Alpha)
	}
	if got.Beta != -142 {
		t.Errorf("RevPark({32767, 32767}, 8192).Beta = %d, want -142", got.Beta)
	}
}

// TestParkRevParkRoundTrip verifies RevPark(Park(v, theta), theta)
// approximates v for inputs clear of the saturation boundary. The
// tolerance tracks the table's unit-magnitude defect (up to ~0.7% of
// the input) plus truncation.
func TestParkRevParkRoundTrip(t *testing.T) {
	inputs := []AlphaBeta{{12000, -5000}, {20000, 20000}, {-15000, 7000}, {1, 1}, {0, 0}, {10000, 0}}

	for theta := -32768; theta <= 32767; theta += 509 {
		for _, in := range inputs {
			qd := Park(in, trig.Angle(theta))
			out := RevPark(qd, trig.Angle(theta))

			mag := math.Hypot(float64(in.Alpha), float64(in.Beta))
			tol := mag*0.007 + 4

			if d := math.Abs(float64(out.Alpha) - float64(in.Alpha)); d > tol {
				t.Errorf("round trip alpha %+v theta=%d: got %d (off %.1f, tol %.1f)",
					in, theta, out.Alpha, d, tol)
			}
			if d := math.Abs(float64(out.Beta) - float64(in.Beta)); d > tol {
				t.Errorf("round trip beta %+v theta=%d: got %d (off %.1f, tol %.1f)",
					in, theta, out.Beta, d, tol)
			}
		}
	}
}

func BenchmarkClarke(b *testing.B) {
	var sink AlphaBeta
	for i := 0; i < b.N; i++ {
		sink = Clarke(AB{int16(i), int16(-i)})
	}
	_ = sink
}

func BenchmarkPark(b *testing.B) {
	var sink QD
	for i := 0; i < b.N; i++ {
		sink = Park(AlphaBeta{12000, -5000}, trig.Angle(i))
	}
	_ = sink
}

func BenchmarkRevPark(b *testing.B) {
	var sink AlphaBeta
	for i := 0; i < b.N; i++ {
		sink = RevPark(QD{12000, -5000}, trig.Angle(i))
	}
	_ = sink
}

func BenchmarkControlCycle(b *testing.B) {
	var sink AlphaBeta
	for i := 0; i < b.N; i++ {
		ab := Clarke(AB{1200, -3400})
		qd := Park(ab, trig.Angle(i))
		sink = RevPark(qd, trig.Angle(i))
	}
	_ = sink
}
