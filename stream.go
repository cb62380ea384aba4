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

// Frame is one decoded data frame yielded by a FrameStream. Payload aliases
// the stream's scratch buffer and is only valid until the next call to Next.
type Frame struct {
	Payload []byte
	Control Control
	Offset  int // raw buffer offset of the opening flag
}

// FrameStream walks a fully received transmission buffer once, locating
// flag-delimited frame boundaries and yielding successive decoded data
// frames. Acknowledge and negative-acknowledge frames are passed over
// silently. The first decode error is terminal: it is returned from Next
// and iteration ends there.
type FrameStream struct {
	err  error
	data []byte
	buf  []byte // payload scratch, reused across frames
	pos  int    // scan cursor; sits on the closing flag of the last frame
}

// NewFrameStream validates the buffer's outer framing and returns a stream
// over it. A non-empty buffer must begin and end with the flag byte; an
// empty buffer is valid and yields an empty sequence.
func NewFrameStream(data []byte) (*FrameStream, error) {
	if len(data) > 0 {
		if data[0] != frame.Flag {
			return nil, newDecodeError("stream", 0, ErrNoStartFlag)
		}
		if data[len(data)-1] != frame.Flag {
			return nil, newDecodeError("stream", len(data)-1, ErrNoEndFlag)
		}
	}
	return &FrameStream{data: data}, nil
}

// Next returns the next data frame, ErrNoMoreFrames once the buffer is
// exhausted, or the first decode error encountered. After an error every
// subsequent call returns the same error.
func (s *FrameStream) Next() (Frame, error) {
	if s.err != nil {
		return Frame{}, s.err
	}

	for {
		start, end, ok := s.scan()
		if !ok {
			s.err = ErrNoMoreFrames
			return Frame{}, s.err
		}
		// The closing flag doubles as the next frame's opening flag
		s.pos = end

		ctrl, payload, err := Decode(s.data[start:end+1], s.buf[:0])
		s.buf = payload
		if err != nil {
			s.err = newDecodeError("decode", start, err)
			return Frame{}, s.err
		}

		if ctrl.Type != FrameData {
			Debugf("skipping %s frame at offset %d (seq %d)", ctrl.Type, start, ctrl.Seq)
			continue
		}
		return Frame{Control: ctrl, Payload: payload, Offset: start}, nil
	}
}

// scan locates the next frame's boundary flags using a one-byte lookahead.
// Runs of consecutive flags are treated as a single shared boundary, so a
// zero-length candidate never becomes a frame.
func (s *FrameStream) scan() (start, end int, ok bool) {
	data := s.data
	i := s.pos

	// Find the opening flag
	for i < len(data) && data[i] != frame.Flag {
		i++
	}
	// Slide across repeated flags to the last one of the run
	for i+1 < len(data) && data[i+1] == frame.Flag {
		i++
	}
	start = i

	// Find the closing flag
	i++
	for i < len(data) && data[i] != frame.Flag {
		i++
	}
	if start >= len(data) || i >= len(data) {
		return 0, 0, false
	}
	return start, i, true
}
