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

// Package foc implements the Clarke, Park and inverse Park coordinate
// transforms used by field-oriented motor control.
//
// Each control cycle the current loop measures two of the three stator
// phase currents (the third is implied by a+b+c=0), maps them through
// Clarke into the stationary alpha/beta frame, then through Park into
// the rotor-synchronous q/d frame where the current controller operates.
// Controller output returns through the inverse Park transform.
//
// All transforms are stateless pure functions over 16-bit values.
// Intermediates are computed in 32 bits, descaled by Q15 (divide by
// 32768) and clamped to the int16 range. A clamped result that lands
// exactly on -32768 is remapped to -32767 so downstream negation stays
// safe in 16-bit two's complement; the inverse Park transform performs
// neither clamping nor remapping (see RevPark).
package foc
