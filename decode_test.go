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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	linksim "github.com/ZaparooProject/go-hdlc/internal/testing"
)

func TestDecodeDataFrames(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		data        []byte
		wantPayload []byte
		wantControl Control
	}{
		{
			name:        "command 1 seq 0",
			data:        []byte{0x7E, 0xFF, 0x10, 0x01, 0x27, 0x84, 0x7E},
			wantControl: Control{Type: FrameData, Seq: 0x08},
			wantPayload: []byte{0x01},
		},
		{
			name:        "command 2 seq 1",
			data:        []byte{0x7E, 0xFF, 0x12, 0x02, 0x0C, 0x85, 0x7E},
			wantControl: Control{Type: FrameData, Seq: 0x09},
			wantPayload: []byte{0x02},
		},
		{
			name:        "command 3 seq 2",
			data:        []byte{0x7E, 0xFF, 0x14, 0x03, 0x55, 0xC0, 0x7E},
			wantControl: Control{Type: FrameData, Seq: 0x0A},
			wantPayload: []byte{0x03},
		},
		{
			name:        "command 4 seq 3",
			data:        []byte{0x7E, 0xFF, 0x16, 0x04, 0x5A, 0x87, 0x7E},
			wantControl: Control{Type: FrameData, Seq: 0x0B},
			wantPayload: []byte{0x04},
		},
		{
			name: "stuffed payload byte equal to flag",
			data: []byte{0x7E, 0xFF, 0x10, 0x7D, 0x5E, 0x57, 0x0F, 0x7E},
			// 0x7D 0x5E destuffs to 0x7E
			wantControl: Control{Type: FrameData, Seq: 0x08},
			wantPayload: []byte{0x7E},
		},
		{
			name: "stuffed control byte",
			data: []byte{0x7E, 0xFF, 0x7D, 0x5E, 0x01, 0x62, 0x7B, 0x7E},
			// control destuffs to 0x7E at the second body position
			wantControl: Control{Type: FrameData, Seq: 0x3F},
			wantPayload: []byte{0x01},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl, payload, err := Decode(tt.data, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantControl, ctrl)
			assert.Equal(t, tt.wantPayload, payload)
		})
	}
}

func TestDecodeSupervisoryFrames(t *testing.T) {
	t.Parallel()
	ctrl, payload, err := Decode(linksim.AckFrame(0), nil)
	require.NoError(t, err)
	assert.Equal(t, FrameAck, ctrl.Type)
	assert.Empty(t, payload)

	ctrl, payload, err = Decode(linksim.NackFrame(1), nil)
	require.NoError(t, err)
	assert.Equal(t, FrameNack, ctrl.Type)
	assert.Empty(t, payload)
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		wantErr error
		name    string
		data    []byte
	}{
		{
			name:    "empty slice",
			data:    []byte{},
			wantErr: ErrNoMessage,
		},
		{
			name:    "no flags at all",
			data:    []byte{0x01, 0x02, 0x03},
			wantErr: ErrNoMessage,
		},
		{
			name:    "only an opening flag",
			data:    []byte{0x7E, 0xFF, 0x10, 0x01},
			wantErr: ErrNoMessage,
		},
		{
			name:    "back to back flags collapse to no message",
			data:    []byte{0x7E, 0x7E},
			wantErr: ErrNoMessage,
		},
		{
			name:    "frame below minimum span",
			data:    []byte{0x7E, 0xFF, 0x10, 0x7E},
			wantErr: ErrTooShort,
		},
		{
			name:    "corrupted payload byte",
			data:    []byte{0x7E, 0xFF, 0x10, 0x00, 0x27, 0x84, 0x7E},
			wantErr: ErrChecksumInvalid,
		},
		{
			name:    "corrupted checksum byte",
			data:    []byte{0x7E, 0xFF, 0x10, 0x01, 0x27, 0x85, 0x7E},
			wantErr: ErrChecksumInvalid,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := Decode(tt.data, nil)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestDecodeAnySingleBitFlipFailsChecksum flips every bit of every
// non-boundary byte in a valid frame and requires a validation failure.
func TestDecodeAnySingleBitFlipFailsChecksum(t *testing.T) {
	t.Parallel()
	valid := linksim.DataFrame(2, 0x03)

	for i := 1; i < len(valid)-1; i++ {
		for bit := 0; bit < 8; bit++ {
			corrupted := make([]byte, len(valid))
			copy(corrupted, valid)
			corrupted[i] ^= 1 << bit
			if corrupted[i] == 0x7E || corrupted[i] == 0x7D {
				// Flip produced a reserved byte; framing changes instead
				continue
			}
			_, _, err := Decode(corrupted, nil)
			assert.Error(t, err, "byte %d bit %d", i, bit)
		}
	}
}

func TestDecodeReusesPayloadBuffer(t *testing.T) {
	t.Parallel()
	buf := make([]byte, 0, 16)

	_, payload, err := Decode(linksim.DataFrame(0, 0x01), buf)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01}, payload)

	// Same backing array reused for a second decode
	_, payload2, err := Decode(linksim.DataFrame(1, 0x02), payload[:0])
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02}, payload2)
	assert.Same(t, &payload[0], &payload2[0])
}
