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

// Command pilot decodes a link transmission and reports the final grid
// position. Without input flags it replays an embedded demo transmission,
// mirroring a transmit side that interleaves acknowledgment frames with
// the command frames.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"os"
	"time"

	hdlc "github.com/ZaparooProject/go-hdlc"
	"github.com/ZaparooProject/go-hdlc/input"
	"github.com/ZaparooProject/go-hdlc/pkg/pilot"
)

//go:embed transmission.bin
var sampleTransmission []byte

type config struct {
	inputPath  string
	devicePath string
	baudRate   int
	idle       time.Duration
	render     bool
	debug      bool
}

// Package-level flag variables
var (
	flagInputPath  string
	flagDevicePath string
	flagBaudRate   int
	flagIdle       time.Duration
	flagRender     bool
	flagDebug      bool
)

func init() {
	flag.StringVar(&flagInputPath, "input", "", "Transmission file to decode (embedded demo if empty)")
	flag.StringVar(&flagDevicePath, "device", "", "Serial port to capture a transmission from")
	flag.IntVar(&flagBaudRate, "baud", input.DefaultBaudRate, "Serial baud rate")
	flag.DurationVar(&flagIdle, "idle", time.Second, "Serial idle window that ends a capture")
	flag.BoolVar(&flagRender, "render", false, "Render the grid after every applied move")
	flag.BoolVar(&flagDebug, "debug", false, "Enable debug output")
}

func parseConfig() *config {
	cfg := &config{
		inputPath:  flagInputPath,
		devicePath: flagDevicePath,
		baudRate:   flagBaudRate,
		idle:       flagIdle,
		render:     flagRender,
		debug:      flagDebug,
	}

	if cfg.debug {
		hdlc.SetDebugEnabled(true)
	}

	return cfg
}

// loadTransmission picks the transmission source: serial capture, file, or
// the embedded demo buffer.
func loadTransmission(cfg *config) ([]byte, error) {
	switch {
	case cfg.devicePath != "":
		return input.Serial(cfg.devicePath, cfg.baudRate, cfg.idle)
	case cfg.inputPath != "":
		return input.File(cfg.inputPath)
	default:
		return sampleTransmission, nil
	}
}

func run(cfg *config) (pilot.Position, error) {
	data, err := loadTransmission(cfg)
	if err != nil {
		return pilot.StartPosition, err
	}

	runner := pilot.NewRunner()
	if cfg.render {
		runner.OnMove = func(c pilot.Command, p pilot.Position) {
			_, _ = fmt.Printf("%s\n%s\n", c, p.Render())
		}
	}

	pos, err := runner.Run(data)
	if err != nil {
		return pos, fmt.Errorf("transmission decode failed: %w", err)
	}
	return pos, nil
}

func main() {
	flag.Parse()
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() int {
	cfg := parseConfig()

	if cfg.debug {
		if path, err := hdlc.InitSessionLog(); err == nil {
			defer func() {
				_ = hdlc.CloseSessionLog()
			}()
			_, _ = fmt.Printf("Session log: %s\n", path)
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "Failed to create session log: %v\n", err)
		}
	}

	pos, err := run(cfg)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	_, _ = fmt.Printf("Final position: %s\n", pos)
	return 0
}
