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

package hdlc

import (
	"github.com/ZaparooProject/go-hdlc/internal/frame"
)

// Destuffed body byte positions within a frame
const (
	posAddress = 1 // first value byte after the opening flag
	posControl = 2 // second value byte; classification happens here
)

// decodeState tracks one pass over a candidate frame slice: whether the
// previous byte was an escape marker, the running frame check sequence,
// the raw boundary indices and the destuffed body position.
type decodeState struct {
	fcs    uint16
	start  int // raw index of the opening flag, -1 until found
	end    int // raw index of the closing flag, -1 until found
	bodyAt int // destuffed position of the last value byte (1 = address)
	escape bool
}

func newDecodeState() decodeState {
	return decodeState{fcs: frame.FCSInit, start: -1, end: -1}
}

// Decode parses a single flag-delimited frame slice: destuffs the body,
// accumulates and validates the frame check sequence and classifies the
// control byte. Payload bytes (control byte to FCS, exclusive) are appended
// to the payload argument, which may be nil or a reused scratch buffer.
//
// The slice is expected to hold exactly one leading and one trailing flag;
// runs of flags at either boundary are collapsed. The two transmitted FCS
// bytes are fed to the accumulator but stripped from the returned payload.
func Decode(data []byte, payload []byte) (Control, []byte, error) {
	st := newDecodeState()
	var ctrl Control

	for i := 0; i < len(data); i++ {
		b := data[i]

		if st.start < 0 {
			// Searching for the opening flag; repeated flags collapse
			if b == frame.Flag {
				if i+1 < len(data) && data[i+1] == frame.Flag {
					continue
				}
				st.start = i
			}
			continue
		}

		switch {
		case b == frame.Flag:
			// A flag directly after the opening flag, or one followed by
			// another flag, is a shared boundary rather than a closing flag
			if i+1 < len(data) && (data[i+1] == frame.Flag || i == st.start+1) {
				continue
			}
			st.end = i
		case b == frame.Escape:
			st.escape = true
			continue
		default:
			if st.escape {
				st.escape = false
				b ^= frame.EscapeXOR
			}
			st.fcs = frame.UpdateFCS(st.fcs, b)
			st.bodyAt++
			if st.bodyAt == posControl {
				ctrl = classifyControl(b)
			} else if st.bodyAt > posControl {
				payload = append(payload, b)
			}
		}
		if st.end >= 0 {
			break
		}
	}

	// The last two body bytes are the transmitted FCS, not payload
	if n := len(payload); n >= 2 {
		payload = payload[:n-2]
	} else {
		payload = payload[:0]
	}

	if st.start < 0 || st.end < 0 {
		return Control{}, payload, ErrNoMessage
	}
	if st.end-st.start < frame.MinFrameSpan {
		return Control{}, payload, ErrTooShort
	}
	if st.fcs != frame.FCSGood {
		return Control{}, payload, ErrChecksumInvalid
	}
	return ctrl, payload, nil
}
