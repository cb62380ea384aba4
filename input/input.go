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

// Package input acquires a fully received transmission buffer for the
// decoder. Acquisition is deliberately separate from decoding: the core
// pipeline always operates on a buffer that is resident in memory.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ZaparooProject/go-hdlc/internal/frame"
)

// readChunkSize is the per-read buffer size while capturing from a link.
const readChunkSize = 256

// File reads a whole transmission from disk.
func File(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the -input flag
	if err != nil {
		return nil, fmt.Errorf("failed to read transmission file: %w", err)
	}
	return data, nil
}

// capture accumulates bytes from a link until it reports EOF, or until a
// zero-byte read (a read timeout on serial ports) arrives after at least
// one complete frame boundary has been seen. Before the first closing flag
// a quiet link is still waiting for the transmission to start.
func capture(r io.Reader) ([]byte, error) {
	var out []byte
	chunk := make([]byte, readChunkSize)
	for {
		n, err := r.Read(chunk)
		out = append(out, chunk[:n]...)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read from link: %w", err)
		}
		if n == 0 && len(out) > 1 && out[len(out)-1] == frame.Flag {
			// Link idle after a closing flag: transmission complete
			return out, nil
		}
	}
}
