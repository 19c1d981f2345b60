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

// End-to-end tests driving the host client against the simulated board.
package delayunit_test

import (
	"testing"

	delayunit "github.com/HWS-XMS/DelayUnit"
)

func TestClientOverSimRegisters(t *testing.T) {
	sim := delayunit.NewSimDevice()
	dev := delayunit.NewDevice(sim)

	if err := dev.SetCoarseDelay(250); err != nil {
		t.Fatalf("SetCoarseDelay failed: %v", err)
	}
	if got, err := dev.CoarseDelay(); err != nil || got != 250 {
		t.Errorf("CoarseDelay = (%v, %v), want 250", got, err)
	}
	if err := dev.SetEdge(delayunit.EdgeFalling); err != nil {
		t.Fatalf("SetEdge failed: %v", err)
	}
	if got, err := dev.Edge(); err != nil || got != delayunit.EdgeFalling {
		t.Errorf("Edge = (%v, %v), want FALLING", got, err)
	}
	if err := dev.SetEdgeCountTarget(12); err != nil {
		t.Fatalf("SetEdgeCountTarget failed: %v", err)
	}
	if got, err := dev.EdgeCountTarget(); err != nil || got != 12 {
		t.Errorf("EdgeCountTarget = (%v, %v), want 12", got, err)
	}
}

func TestClientOverSimPicosecondDelay(t *testing.T) {
	sim := delayunit.NewSimDevice()
	dev := delayunit.NewDevice(sim)

	if err := dev.SetDelayPs(12345); err != nil {
		t.Fatalf("SetDelayPs failed: %v", err)
	}
	if err := dev.WaitPhaseReady(100); err != nil {
		t.Fatalf("WaitPhaseReady failed: %v", err)
	}
	got, err := dev.DelayPs()
	if err != nil {
		t.Fatalf("DelayPs failed: %v", err)
	}
	if got != 12339 {
		t.Errorf("DelayPs = %v, want 12339 (fine-step quantization)", got)
	}
}

func TestClientOverSimTriggerFlow(t *testing.T) {
	sim := delayunit.NewSimDevice()
	dev := delayunit.NewDevice(sim)

	if err := dev.SetCoarseDelay(20); err != nil {
		t.Fatalf("SetCoarseDelay failed: %v", err)
	}
	if err := dev.SetArmedMode(delayunit.ArmedRepeat); err != nil {
		t.Fatalf("SetArmedMode failed: %v", err)
	}
	if err := dev.Arm(); err != nil {
		t.Fatalf("Arm failed: %v", err)
	}
	if armed, err := dev.Armed(); err != nil || !armed {
		t.Fatalf("Armed = (%v, %v) after Arm", armed, err)
	}

	sim.PulseTrigger(4, 100)
	s, err := dev.Status()
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if s.TriggerCount != 1 {
		t.Errorf("Trigger count = %v after one pulse, want 1", s.TriggerCount)
	}

	sim.PulseTrigger(4, 100)
	if err := dev.Disarm(); err != nil {
		t.Fatalf("Disarm failed: %v", err)
	}
	sim.PulseTrigger(4, 100)
	if s, err = dev.Status(); err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if s.TriggerCount != 2 {
		t.Errorf("Trigger count = %v, want 2 (disarmed pulse ignored)", s.TriggerCount)
	}
}

func TestClientOverSimSoftTrigger(t *testing.T) {
	sim := delayunit.NewSimDevice()
	dev := delayunit.NewDevice(sim)

	if err := dev.SetTriggerMode(delayunit.TriggerInternal); err != nil {
		t.Fatalf("SetTriggerMode failed: %v", err)
	}
	if err := dev.Arm(); err != nil {
		t.Fatalf("Arm failed: %v", err)
	}
	if err := dev.SoftTrigger(); err != nil {
		t.Fatalf("SoftTrigger failed: %v", err)
	}
	s, err := dev.Status()
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if s.TriggerCount != 1 {
		t.Errorf("Trigger count = %v, want 1", s.TriggerCount)
	}
	// Default SINGLE mode disarms after delivery.
	if s.Armed != 0 {
		t.Errorf("Still armed after a single-shot soft trigger")
	}
}

func TestSimDeviceReadTimesOut(t *testing.T) {
	sim := delayunit.NewSimDevice()
	buf := make([]byte, 1)
	if _, err := sim.Read(buf); err == nil {
		t.Errorf("Read returned without a pending response byte")
	}
}
