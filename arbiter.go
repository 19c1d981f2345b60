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

// Trigger source selection and arming gate.
package delayunit

// TriggerArbiter decides each tick whether a trigger pulse reaches the pulse
// generator. Evaluation order is fixed: arm gate, then source selection
// (soft trigger in INTERNAL mode, raw or Nth-counted edge in EXTERNAL mode).
// Edge counting only advances while armed, so disarming halts accumulation
// as well as output.
type TriggerArbiter struct {
	armed        bool
	triggerCount uint16
	edgeCount    uint32
}

// Arm enables trigger acceptance. Arming an already-armed engine is a no-op.
func (a *TriggerArbiter) Arm() {
	a.armed = true
}

// Disarm disables trigger acceptance. Idempotent like Arm.
func (a *TriggerArbiter) Disarm() {
	a.armed = false
}

func (a *TriggerArbiter) Armed() bool {
	return a.armed
}

// TriggerCount is the cumulative count of delivered triggers. It wraps at
// 16 bits with no overflow flag.
func (a *TriggerArbiter) TriggerCount() uint16 {
	return a.triggerCount
}

func (a *TriggerArbiter) ResetTriggerCount() {
	a.triggerCount = 0
}

// EdgeCount is the current Nth-edge progress toward EdgeCountTarget.
func (a *TriggerArbiter) EdgeCount() uint32 {
	return a.edgeCount
}

func (a *TriggerArbiter) ResetEdgeCount() {
	a.edgeCount = 0
}

// Select picks this tick's trigger source and applies the arm gate and
// counter mode. edge is the synchronized external edge pulse, soft the
// internal soft-trigger request.
func (a *TriggerArbiter) Select(edge, soft bool, cfg *Config) bool {
	if !a.armed {
		return false
	}
	if cfg.Mode == TriggerInternal {
		return soft
	}
	if cfg.Counter == CounterDisabled {
		return edge
	}
	if !edge {
		return false
	}
	if a.edgeCount+1 >= cfg.EdgeCountTarget {
		a.edgeCount = 0
		return true
	}
	a.edgeCount++
	return false
}

// NoteAccepted records that the generator accepted a forwarded trigger:
// the trigger counter advances and SINGLE mode disarms immediately, before
// the output pulse has finished.
func (a *TriggerArbiter) NoteAccepted(cfg *Config) {
	a.triggerCount++
	if cfg.ArmMode == ArmedSingle {
		a.armed = false
	}
}
