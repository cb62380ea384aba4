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

// Package testing provides test utilities including a wire-level link
// simulator. It builds byte-stuffed, FCS-protected frames so tests can
// exercise the decoder against well-formed and deliberately corrupted
// transmissions. This is test tooling only: the library itself has no
// encode direction.
package testing

import (
	"github.com/ZaparooProject/go-hdlc/internal/frame"
)

// Control byte construction (transmit-side bit layout)
const (
	ctrlSupervisoryBit = 0
	ctrlSendSeqShift   = 1
	ctrlSFrameShift    = 2
	ctrlPollBit        = 4
	ctrlRecvSeqShift   = 5

	sFrameReject = 2
)

// DataFrame builds a complete data frame carrying the given payload bytes.
func DataFrame(seq byte, payload ...byte) []byte {
	control := seq<<ctrlSendSeqShift | 1<<ctrlPollBit
	return buildFrame(control, payload)
}

// AckFrame builds a receive-ready supervisory frame (zero payload).
func AckFrame(seq byte) []byte {
	control := seq<<ctrlRecvSeqShift | 1<<ctrlSupervisoryBit
	return buildFrame(control, nil)
}

// NackFrame builds a reject supervisory frame (zero payload).
func NackFrame(seq byte) []byte {
	control := seq<<ctrlRecvSeqShift | sFrameReject<<ctrlSFrameShift | 1<<ctrlSupervisoryBit
	return buildFrame(control, nil)
}

// Transmission concatenates frames into a single raw buffer.
func Transmission(frames ...[]byte) []byte {
	var out []byte
	for _, f := range frames {
		out = append(out, f...)
	}
	return out
}

// CorruptByte returns a copy of the frame with one bit flipped at the given
// raw index. Flipping any body byte must trip the checksum validation.
func CorruptByte(f []byte, index int) []byte {
	out := make([]byte, len(f))
	copy(out, f)
	out[index] ^= 0x01
	return out
}

// buildFrame assembles flag + stuffed(address, control, payload, fcs) + flag.
func buildFrame(control byte, payload []byte) []byte {
	body := append([]byte{frame.AllStationAddr, control}, payload...)

	fcs := frame.FCSInit
	for _, b := range body {
		fcs = frame.UpdateFCS(fcs, b)
	}
	fcs ^= 0xFFFF
	body = append(body, byte(fcs&0xFF), byte(fcs>>8))

	out := []byte{frame.Flag}
	for _, b := range body {
		if b == frame.Flag || b == frame.Escape {
			out = append(out, frame.Escape, b^frame.EscapeXOR)
		} else {
			out = append(out, b)
		}
	}
	return append(out, frame.Flag)
}
