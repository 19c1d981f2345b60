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

package delayunit_test

import (
	"testing"

	delayunit "github.com/HWS-XMS/DelayUnit"
)

func TestArmDisarmIdempotent(t *testing.T) {
	a := &delayunit.TriggerArbiter{}
	a.Arm()
	a.Arm()
	if !a.Armed() {
		t.Errorf("Double arm left armed = false")
	}
	a.Disarm()
	a.Disarm()
	if a.Armed() {
		t.Errorf("Double disarm left armed = true")
	}
}

func TestDisarmedForwardsNothing(t *testing.T) {
	a := &delayunit.TriggerArbiter{}
	cfg := delayunit.NewConfig()
	if a.Select(true, false, cfg) {
		t.Errorf("Disarmed arbiter forwarded an external edge")
	}
	cfg.Mode = delayunit.TriggerInternal
	if a.Select(false, true, cfg) {
		t.Errorf("Disarmed arbiter forwarded a soft trigger")
	}
}

func TestInternalModeIgnoresExternalEdges(t *testing.T) {
	a := &delayunit.TriggerArbiter{}
	cfg := delayunit.NewConfig()
	cfg.Mode = delayunit.TriggerInternal
	a.Arm()
	if a.Select(true, false, cfg) {
		t.Errorf("Internal mode forwarded an external edge")
	}
	if !a.Select(false, true, cfg) {
		t.Errorf("Internal mode did not forward a soft trigger")
	}
}

func TestSingleModeAutoDisarms(t *testing.T) {
	a := &delayunit.TriggerArbiter{}
	cfg := delayunit.NewConfig()
	a.Arm()
	if !a.Select(true, false, cfg) {
		t.Fatalf("Armed arbiter did not forward an edge")
	}
	a.NoteAccepted(cfg)
	if a.Armed() {
		t.Errorf("SINGLE mode still armed after accepted trigger")
	}
	if a.Select(true, false, cfg) {
		t.Errorf("Disarmed arbiter forwarded a further edge")
	}
	if a.TriggerCount() != 1 {
		t.Errorf("Trigger count = %v, want 1", a.TriggerCount())
	}
}

func TestRepeatModeStaysArmed(t *testing.T) {
	a := &delayunit.TriggerArbiter{}
	cfg := delayunit.NewConfig()
	cfg.ArmMode = delayunit.ArmedRepeat
	a.Arm()
	for i := 0; i < 5; i++ {
		if !a.Select(true, false, cfg) {
			t.Fatalf("Edge %v not forwarded in repeat mode", i)
		}
		a.NoteAccepted(cfg)
	}
	if !a.Armed() {
		t.Errorf("REPEAT mode disarmed itself")
	}
	if a.TriggerCount() != 5 {
		t.Errorf("Trigger count = %v, want 5", a.TriggerCount())
	}
}

func TestNthEdgeCounting(t *testing.T) {
	a := &delayunit.TriggerArbiter{}
	cfg := delayunit.NewConfig()
	cfg.Counter = delayunit.CounterEnabled
	cfg.EdgeCountTarget = 3
	cfg.ArmMode = delayunit.ArmedRepeat
	a.Arm()

	for round := 0; round < 2; round++ {
		if a.Select(true, false, cfg) || a.Select(true, false, cfg) {
			t.Fatalf("Round %v: trigger forwarded before the third edge", round)
		}
		if !a.Select(true, false, cfg) {
			t.Fatalf("Round %v: third edge did not forward a trigger", round)
		}
		if a.EdgeCount() != 0 {
			t.Errorf("Round %v: edge count = %v after firing, want 0", round, a.EdgeCount())
		}
	}
}

func TestEdgeCountingHaltsWhileDisarmed(t *testing.T) {
	a := &delayunit.TriggerArbiter{}
	cfg := delayunit.NewConfig()
	cfg.Counter = delayunit.CounterEnabled
	cfg.EdgeCountTarget = 3
	a.Arm()
	a.Select(true, false, cfg)
	a.Disarm()
	for i := 0; i < 10; i++ {
		a.Select(true, false, cfg)
	}
	if a.EdgeCount() != 1 {
		t.Errorf("Edge count advanced to %v while disarmed, want 1", a.EdgeCount())
	}
}

func TestResetEdgeCount(t *testing.T) {
	a := &delayunit.TriggerArbiter{}
	cfg := delayunit.NewConfig()
	cfg.Counter = delayunit.CounterEnabled
	cfg.EdgeCountTarget = 5
	a.Arm()
	a.Select(true, false, cfg)
	a.Select(true, false, cfg)
	a.ResetEdgeCount()
	if a.EdgeCount() != 0 {
		t.Errorf("Edge count = %v after reset, want 0", a.EdgeCount())
	}
}

func TestTriggerCounterWraps(t *testing.T) {
	a := &delayunit.TriggerArbiter{}
	cfg := delayunit.NewConfig()
	cfg.ArmMode = delayunit.ArmedRepeat
	a.Arm()
	for i := 0; i < 0x10002; i++ {
		a.NoteAccepted(cfg)
	}
	if a.TriggerCount() != 2 {
		t.Errorf("Trigger count = %v after wrap, want 2", a.TriggerCount())
	}
	a.ResetTriggerCount()
	if a.TriggerCount() != 0 {
		t.Errorf("Trigger count = %v after reset, want 0", a.TriggerCount())
	}
}
