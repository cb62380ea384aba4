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

package input

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// DefaultBaudRate matches the link's transmit side.
const DefaultBaudRate = 115200

// Serial captures one transmission from a serial port. The idle duration
// doubles as the port read timeout: once at least one complete frame
// boundary has been received, a read window with no data ends the capture.
func Serial(portName string, baudRate int, idle time.Duration) ([]byte, error) {
	if baudRate <= 0 {
		baudRate = DefaultBaudRate
	}

	port, err := serial.Open(portName, &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", portName, err)
	}
	defer func() {
		_ = port.Close()
	}()

	if err := port.SetReadTimeout(idle); err != nil {
		return nil, fmt.Errorf("failed to set serial read timeout: %w", err)
	}

	data, err := capture(port)
	if err != nil {
		return nil, fmt.Errorf("serial capture on %s: %w", portName, err)
	}
	return data, nil
}
