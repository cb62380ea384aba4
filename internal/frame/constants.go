// Copyright 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: Apache-2.0
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

package frame

// Frame boundary markers and byte-stuffing values
const (
	Flag      = 0x7E // Delimits frames; never appears literally inside a body
	Escape    = 0x7D // Marks the next body byte as stuffed
	EscapeXOR = 0x20 // XOR mask applied to a stuffed byte
)

// Addressing
const (
	AllStationAddr = 0xFF // Broadcast address used on this point-to-point link
)

// Frame size limits
const (
	// MinFrameSpan is the minimum raw index span between the opening and
	// closing flag of a viable frame (address + control + 2 FCS bytes).
	// Measured on raw (stuffed) indices, matching the wire convention.
	MinFrameSpan = 4
)
