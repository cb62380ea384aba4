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
	"fmt"
)

// Error categories for the decode pipeline. All of these are returned to the
// caller at the point of decoding a single frame; none are retried
// internally, and any of them ends iteration of a stream.
var (
	// Framing errors - the buffer cannot be interpreted as a frame sequence
	ErrNoStartFlag = errors.New("buffer does not start with a flag byte")
	ErrNoEndFlag   = errors.New("buffer does not end with a flag byte")
	ErrNoMessage   = errors.New("no matching pair of flag bytes")

	// Integrity errors - a frame was located but failed validation
	ErrTooShort        = errors.New("frame too short for address, control and checksum")
	ErrChecksumInvalid = errors.New("frame check sequence mismatch")

	// ErrNoMoreFrames signals normal stream exhaustion, not a failure
	ErrNoMoreFrames = errors.New("no more frames")
)

// DecodeError wraps a decode failure with the position it occurred at,
// so callers can distinguish malformed input from valid-but-empty input
// and report where in the transmission trust was lost.
type DecodeError struct {
	Err    error  // Underlying sentinel error
	Op     string // Operation that failed
	Offset int    // Raw buffer offset of the frame (or probe) that failed
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s at offset %d: %v", e.Op, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsFramingError reports whether the error means no frame could be located
// at all (missing or unpaired flag bytes).
func IsFramingError(err error) bool {
	switch {
	case errors.Is(err, ErrNoStartFlag),
		errors.Is(err, ErrNoEndFlag),
		errors.Is(err, ErrNoMessage):
		return true
	default:
		return false
	}
}

// IsIntegrityError reports whether the error means a frame was located but
// its contents failed validation.
func IsIntegrityError(err error) bool {
	switch {
	case errors.Is(err, ErrTooShort),
		errors.Is(err, ErrChecksumInvalid):
		return true
	default:
		return false
	}
}

// newDecodeError wraps a sentinel with offset context, keeping nil errors nil.
func newDecodeError(op string, offset int, err error) error {
	if err == nil {
		return nil
	}
	return &DecodeError{Op: op, Offset: offset, Err: err}
}
