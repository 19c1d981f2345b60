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

// Sub-tick fine-delay collaborator interface.
package delayunit

//go:generate mockgen -destination=mocks/phase.go -package=mocks github.com/HWS-XMS/DelayUnit PhaseShifterInterface

// PhaseShifterInterface abstracts the clock-phase generator that positions a
// pulse edge with sub-tick resolution. Two independent instances exist: one
// for the pulse start offset and one for the pulse width.
//
// Configure is fire-and-forget; Configured goes false while the shifter is
// stepping toward the target and true once the target has been physically
// reached. The engine edge-detects Configured rather than reading the level,
// so a held acknowledgment cannot double-trigger a command.
type PhaseShifterInterface interface {
	// Requests stepping the phase to target, in shifter units. The sign of
	// target-current picks the step direction.
	Configure(target int32)
	// Reports whether the last requested target has been reached.
	Configured() bool
	// Reports whether the underlying clock generator is phase-locked.
	Locked() bool
	// Current phase position, in shifter units.
	Current() int32
}

// simLockTicks is how long the simulated clock generator takes to lock
// after reset.
const simLockTicks = 16

// SimPhaseShifter is a tick-stepped stand-in for the hardware phase shifter:
// it moves one unit per tick toward the requested target, mirroring an MMCM
// that performs one fine phase increment per adjustment cycle.
type SimPhaseShifter struct {
	target     int32
	current    int32
	busy       bool
	ticksAlive int
}

func NewSimPhaseShifter() *SimPhaseShifter {
	return &SimPhaseShifter{}
}

func (p *SimPhaseShifter) Configure(target int32) {
	p.target = target
	p.busy = p.current != target
}

func (p *SimPhaseShifter) Configured() bool {
	return !p.busy
}

func (p *SimPhaseShifter) Locked() bool {
	return p.ticksAlive >= simLockTicks
}

func (p *SimPhaseShifter) Current() int32 {
	return p.current
}

// Tick advances the shifter by one adjustment step.
func (p *SimPhaseShifter) Tick() {
	if p.ticksAlive < simLockTicks {
		p.ticksAlive++
	}
	if !p.busy {
		return
	}
	if p.current < p.target {
		p.current++
	} else if p.current > p.target {
		p.current--
	}
	if p.current == p.target {
		p.busy = false
	}
}
