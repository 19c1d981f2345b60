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

// Delay/width pulse generator.
package delayunit

type genState int

const (
	genIdle genState = iota
	genCountingDelay
	genOutputActive
)

// DelayPulseGenerator turns one accepted trigger into a single output pulse
// that starts CoarseDelay ticks after the trigger and stays high for
// OutputWidth ticks (floor of one tick). Delay and width are latched when a
// cycle starts, so register writes never affect a cycle already in flight.
//
// The pending-retrigger slot has a capacity of exactly one: a trigger that
// arrives while a cycle is running is latched and honored back-to-back when
// the cycle completes; a further trigger arriving while the slot is occupied
// is dropped. This is a deliberate bound, not a queue to be grown.
type DelayPulseGenerator struct {
	state     genState
	delayLeft uint32
	widthLeft uint32
	width     uint32
	pending   bool

	// One-tick strobes handed to the fine-delay domain to position the
	// rising and falling output edges.
	setStrobe   bool
	resetStrobe bool
}

func (g *DelayPulseGenerator) startCycle(cfg *Config) {
	g.width = cfg.OutputWidth
	if g.width == 0 {
		g.width = 1
	}
	if cfg.CoarseDelay == 0 {
		g.activate()
		return
	}
	g.state = genCountingDelay
	g.delayLeft = cfg.CoarseDelay
}

func (g *DelayPulseGenerator) activate() {
	g.state = genOutputActive
	g.widthLeft = g.width
	g.setStrobe = true
}

// Tick advances the generator by one tick. trig offers one trigger pulse;
// the return value reports whether it was accepted (cycle started or latched
// into the pending slot) as opposed to dropped.
func (g *DelayPulseGenerator) Tick(trig bool, cfg *Config) bool {
	g.setStrobe = false
	g.resetStrobe = false

	switch g.state {
	case genCountingDelay:
		g.delayLeft--
		if g.delayLeft == 0 {
			g.activate()
		}
	case genOutputActive:
		g.widthLeft--
		if g.widthLeft == 0 {
			g.resetStrobe = true
			if g.pending {
				g.pending = false
				g.startCycle(cfg)
			} else {
				g.state = genIdle
			}
		}
	}

	if !trig {
		return false
	}
	if g.state == genIdle {
		g.startCycle(cfg)
		return true
	}
	if !g.pending {
		g.pending = true
		return true
	}
	return false
}

// Out reports whether the output pulse is driven high this tick.
func (g *DelayPulseGenerator) Out() bool {
	return g.state == genOutputActive
}

// Busy reports whether a delay or output cycle is in flight.
func (g *DelayPulseGenerator) Busy() bool {
	return g.state != genIdle
}

// Pending reports whether the single retrigger slot is occupied.
func (g *DelayPulseGenerator) Pending() bool {
	return g.pending
}

// SetStrobe reports the one-tick rising-edge handoff to the fine domain.
func (g *DelayPulseGenerator) SetStrobe() bool {
	return g.setStrobe
}

// ResetStrobe reports the one-tick falling-edge handoff to the fine domain.
func (g *DelayPulseGenerator) ResetStrobe() bool {
	return g.resetStrobe
}
