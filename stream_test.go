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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	linksim "github.com/ZaparooProject/go-hdlc/internal/testing"
)

// collect drains a stream into payload first-bytes, for compact assertions.
func collect(t *testing.T, s *FrameStream) ([]byte, error) {
	t.Helper()
	var out []byte
	for {
		f, err := s.Next()
		if errors.Is(err, ErrNoMoreFrames) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		require.NotEmpty(t, f.Payload)
		out = append(out, f.Payload[0])
	}
}

func TestFrameStreamConstruction(t *testing.T) {
	t.Parallel()
	tests := []struct {
		wantErr error
		name    string
		data    []byte
	}{
		{
			name: "empty buffer is valid",
			data: nil,
		},
		{
			name: "flag-delimited buffer is valid",
			data: linksim.DataFrame(0, 0x01),
		},
		{
			name:    "missing start flag",
			data:    append([]byte{0x00}, linksim.DataFrame(0, 0x01)...),
			wantErr: ErrNoStartFlag,
		},
		{
			name:    "missing end flag",
			data:    linksim.DataFrame(0, 0x01)[:6],
			wantErr: ErrNoEndFlag,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := NewFrameStream(tt.data)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, s)
		})
	}
}

func TestFrameStreamEmptySequences(t *testing.T) {
	t.Parallel()
	// Empty buffer
	s, err := NewFrameStream(nil)
	require.NoError(t, err)
	_, err = s.Next()
	require.ErrorIs(t, err, ErrNoMoreFrames)

	// Two adjacent flags merge into one boundary, not an empty frame
	s, err = NewFrameStream([]byte{0x7E, 0x7E})
	require.NoError(t, err)
	_, err = s.Next()
	require.ErrorIs(t, err, ErrNoMoreFrames)

	// A longer run of flags behaves the same
	s, err = NewFrameStream([]byte{0x7E, 0x7E, 0x7E, 0x7E})
	require.NoError(t, err)
	_, err = s.Next()
	require.ErrorIs(t, err, ErrNoMoreFrames)
}

func TestFrameStreamYieldsDataFramesInOrder(t *testing.T) {
	t.Parallel()
	tx := linksim.Transmission(
		linksim.DataFrame(0, 0x03),
		linksim.DataFrame(1, 0x02),
		linksim.DataFrame(2, 0x01),
		linksim.DataFrame(3, 0x04),
	)

	s, err := NewFrameStream(tx)
	require.NoError(t, err)
	got, err := collect(t, s)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x02, 0x01, 0x04}, got)
}

func TestFrameStreamSkipsSupervisoryFrames(t *testing.T) {
	t.Parallel()
	tx := linksim.Transmission(
		linksim.AckFrame(0),
		linksim.DataFrame(0, 0x01),
		linksim.AckFrame(1),
		linksim.NackFrame(1),
		linksim.DataFrame(1, 0x02),
		linksim.AckFrame(2),
	)

	s, err := NewFrameStream(tx)
	require.NoError(t, err)
	got, err := collect(t, s)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, got)
}

func TestFrameStreamSharedBoundaryFlags(t *testing.T) {
	t.Parallel()
	// Two frames sharing a single boundary flag
	a, b := linksim.DataFrame(0, 0x01), linksim.DataFrame(1, 0x02)
	tx := append(append([]byte{}, a...), b[1:]...)

	s, err := NewFrameStream(tx)
	require.NoError(t, err)
	got, err := collect(t, s)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, got)
}

func TestFrameStreamErrorIsTerminal(t *testing.T) {
	t.Parallel()
	tx := linksim.Transmission(
		linksim.DataFrame(0, 0x01),
		linksim.CorruptByte(linksim.DataFrame(1, 0x02), 3),
		linksim.DataFrame(2, 0x03),
	)

	s, err := NewFrameStream(tx)
	require.NoError(t, err)

	f, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01}, f.Payload)

	_, err = s.Next()
	require.ErrorIs(t, err, ErrChecksumInvalid)
	assert.True(t, IsIntegrityError(err))

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, len(linksim.DataFrame(0, 0x01)), de.Offset)

	// The stream stays ended on the same error; the third frame is never decoded
	_, again := s.Next()
	require.Equal(t, err, again)
}

func TestFrameStreamPayloadValidUntilNext(t *testing.T) {
	t.Parallel()
	tx := linksim.Transmission(
		linksim.DataFrame(0, 0x01),
		linksim.DataFrame(1, 0x02),
	)

	s, err := NewFrameStream(tx)
	require.NoError(t, err)

	f1, err := s.Next()
	require.NoError(t, err)
	saved := append([]byte{}, f1.Payload...)

	f2, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02}, f2.Payload)
	// The first payload's backing memory was reused
	assert.Equal(t, []byte{0x01}, saved)
}

func TestFrameStreamOffsets(t *testing.T) {
	t.Parallel()
	a := linksim.DataFrame(0, 0x01)
	tx := linksim.Transmission(a, linksim.DataFrame(1, 0x02))

	s, err := NewFrameStream(tx)
	require.NoError(t, err)

	f, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, 0, f.Offset)

	f, err = s.Next()
	require.NoError(t, err)
	assert.Equal(t, len(a), f.Offset)
}
