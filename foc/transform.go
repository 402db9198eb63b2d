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

import "github.com/GiulioDallaVecchia/lw-math/trig"

// AB holds two of the three stator phase currents, directed along axes
// displaced by 120 degrees. The third phase is implied by a+b+c=0.
type AB struct {
	A int16
	B int16
}

// AlphaBeta holds the stationary-frame projection of the phase
// currents on two orthogonal axes.
type AlphaBeta struct {
	Alpha int16
	Beta  int16
}

// QD holds the torque-producing (Q) and flux-producing (D) current
// components in the rotor-synchronous frame.
type QD struct {
	Q int16
	D int16
}

// invSqrt3 is 1/sqrt(3) = 0.5773315 in Q1.15.
const invSqrt3 int32 = 0x49E6

// sat16 clamps a Q15-descaled intermediate to the int16 range and
// remaps the negative extreme to -32767. -32768 has no positive
// counterpart in 16-bit two's complement, which would break later
// negation, so the output range is kept symmetric.
func sat16(v int32) int16 {
	if v > 32767 {
		return 32767
	}
	if v <= -32768 {
		return -32767
	}
	return int16(v)
}

// Clarke transforms phase currents a and b into the stationary
// alpha/beta frame:
//
//	alpha = a
//	beta  = -(2*b + a) / sqrt(3)
//
// beta is computed with the Q1.15 constant for 1/sqrt(3), descaled by
// 32768 and saturated. The descale is a division, not a shift: it must
// truncate negative intermediates toward zero, where an arithmetic
// shift would floor them.
func Clarke(in AB) AlphaBeta {
	var out AlphaBeta
	out.Alpha = in.A

	aTmp := invSqrt3 * int32(in.A)
	bTmp := invSqrt3 * int32(in.B)
	out.Beta = sat16((-aTmp - bTmp - bTmp) / 32768)

	return out
}

// Park rotates the stationary alpha/beta frame into the
// rotor-synchronous q/d frame at angle theta:
//
//	q = (alpha*cos(theta) - beta*sin(theta)) / 32768
//	d = (alpha*sin(theta) + beta*cos(theta)) / 32768
//
// The int16*int16 products cannot overflow int32. Each component is
// saturated independently.
func Park(in AlphaBeta, theta trig.Angle) QD {
	sc := trig.SinCos(theta)

	var out QD
	out.Q = sat16((int32(in.Alpha)*int32(sc.Cos) - int32(in.Beta)*int32(sc.Sin)) / 32768)
	out.D = sat16((int32(in.Alpha)*int32(sc.Sin) + int32(in.Beta)*int32(sc.Cos)) / 32768)
	return out
}

// RevPark rotates the q/d frame back into the stationary alpha/beta
// frame at angle theta:
//
//	alpha = (q*cos(theta) + d*sin(theta)) / 32768
//	beta  = (d*cos(theta) - q*sin(theta)) / 32768
//
// Unlike Clarke and Park the results are truncated to int16 without
// saturation: inputs are presumed pre-bounded by the current
// controller, and an out-of-range intermediate wraps silently.
func RevPark(in QD, theta trig.Angle) AlphaBeta {
	sc := trig.SinCos(theta)

	var out AlphaBeta
	out.Alpha = int16((int32(in.Q)*int32(sc.Cos) + int32(in.D)*int32(sc.Sin)) / 32768)
	out.Beta = int16((int32(in.D)*int32(sc.Cos) - int32(in.Q)*int32(sc.Sin)) / 32768)
	return out
}
