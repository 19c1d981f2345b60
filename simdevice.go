// Copyright 2026 EMFI Lab Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// In-process simulated board.
package delayunit

import (
	"fmt"
)

const (
	// Engine ticks pumped per transferred byte. At 1Mbaud a byte spans
	// roughly 2000 ticks of the 200MHz clock; the exact figure only matters
	// for relative command/trigger ordering, so keep it small.
	simTicksPerByte = 16
	// Tick budget while waiting for a response byte.
	simReadBudget = 1 << 22
)

// SimDevice exposes the tick engine through PortInterface, so the host
// client can run unmodified against the simulation. Reads and writes pump
// the engine; the external trigger line is driven explicitly.
type SimDevice struct {
	eng  *Engine
	line bool
	rx   []byte
}

func NewSimDevice() *SimDevice {
	return &SimDevice{eng: NewEngine()}
}

// Engine exposes the simulated engine for direct inspection.
func (d *SimDevice) Engine() *Engine {
	return d.eng
}

// RunTicks pumps the engine n ticks with the trigger line at its current
// level.
func (d *SimDevice) RunTicks(n int) {
	for i := 0; i < n; i++ {
		d.eng.Tick(d.line)
	}
}

// SetTriggerLine drives the asynchronous external trigger input.
func (d *SimDevice) SetTriggerLine(level bool) {
	d.line = level
}

// PulseTrigger drives the line high for high ticks and low again for low
// ticks.
func (d *SimDevice) PulseTrigger(high, low int) {
	d.SetTriggerLine(true)
	d.RunTicks(high)
	d.SetTriggerLine(false)
	d.RunTicks(low)
}

func (d *SimDevice) Write(p []byte) (int, error) {
	for _, b := range p {
		d.eng.PushRx(b)
		d.RunTicks(simTicksPerByte)
	}
	return len(p), nil
}

func (d *SimDevice) Read(p []byte) (int, error) {
	for budget := simReadBudget; len(d.rx) == 0 && budget > 0; budget-- {
		d.eng.Tick(d.line)
		d.rx = append(d.rx, d.eng.PopTx()...)
	}
	if len(d.rx) == 0 {
		return 0, fmt.Errorf("Read timed out")
	}
	n := copy(p, d.rx)
	d.rx = d.rx[n:]
	return n, nil
}

func (d *SimDevice) Flush() error {
	d.rx = nil
	d.eng.PopTx()
	return nil
}

func (d *SimDevice) Close() error {
	return nil
}
