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

// Package hdlc decodes a flag-delimited, byte-stuffed link-layer byte stream
// (HDLC-derived) into discrete frames. Frames are protected by a 16-bit
// frame check sequence and carry either a payload or a zero-payload
// supervisory acknowledgment.
package hdlc

// FrameType classifies a frame by its control byte.
type FrameType byte

const (
	// FrameData carries a payload.
	FrameData FrameType = iota
	// FrameAck is a receive-ready supervisory frame, no payload of interest.
	FrameAck
	// FrameNack is any other supervisory frame (not ready, reject,
	// selective reject), no payload of interest.
	FrameNack
)

func (t FrameType) String() string {
	switch t {
	case FrameData:
		return "data"
	case FrameAck:
		return "ack"
	case FrameNack:
		return "nack"
	default:
		return "unknown"
	}
}

// Control byte bit layout
const (
	ctrlSupervisoryBit = 0 // set on supervisory/unnumbered frames
	ctrlSeqShift       = 1 // sequence number occupies the remaining bits
	ctrlSFrameShift    = 2 // 2-bit supervisory subtype position
	ctrlSFrameMask     = 0x3

	// Supervisory subtypes
	sFrameReceiveReady    = 0
	sFrameReceiveNotReady = 1
	sFrameReject          = 2
	sFrameSelectiveReject = 3
)

// Control is the decoded form of a frame's control byte.
type Control struct {
	Type FrameType
	Seq  byte
}

// classifyControl decomposes a destuffed control byte into frame type and
// sequence number. Receive-ready supervisory frames acknowledge receipt;
// every other supervisory subtype is a negative acknowledgment.
func classifyControl(c byte) Control {
	if c&(1<<ctrlSupervisoryBit) != 0 {
		ft := FrameNack
		if (c>>ctrlSFrameShift)&ctrlSFrameMask == sFrameReceiveReady {
			ft = FrameAck
		}
		return Control{Type: ft, Seq: c >> ctrlSeqShift}
	}
	return Control{Type: FrameData, Seq: c >> ctrlSeqShift}
}
