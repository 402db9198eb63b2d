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

// Package fixmath provides Q-format fixed-point arithmetic on 32-bit
// integers, intended for control code running without a floating-point
// unit.
//
// A Fix value stores a real number scaled by 2^q. The fractional bit
// count q is not carried by the type; callers pass it to each operation,
// which keeps every function a handful of integer instructions and lets
// the compiler fold constant q values at the call site.
//
// # Formats
//
// Two operands combined by the same-format operations (Add, Sub, Mul,
// Div) must share the same q. The general operations (AddG, SubG, MulG,
// DivG) accept operands in different formats and produce a result in a
// third; they rescale with arithmetic shifts via Conv before combining.
//
// # Error handling
//
// Every function is total. There are no error returns: division by zero
// is the caller's responsibility (it panics with the native integer
// semantics), and Isqrt of a negative value is defined to return 0.
//
// All operations are allocation-free and safe for concurrent use.
package fixmath
