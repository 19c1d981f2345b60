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
	"errors"
	"testing"

	delayunit "github.com/HWS-XMS/DelayUnit"
	"github.com/HWS-XMS/DelayUnit/mocks"
	"github.com/golang/mock/gomock"
)

func expectWrite(port *mocks.MockPortInterface, data []byte) *gomock.Call {
	return port.EXPECT().Write(data).Return(len(data), nil)
}

func expectRead(port *mocks.MockPortInterface, data []byte) *gomock.Call {
	return port.EXPECT().Read(gomock.Any()).DoAndReturn(
		func(p []byte) (int, error) {
			return copy(p, data), nil
		})
}

func statusBytes(t *testing.T, s delayunit.Status) []byte {
	t.Helper()
	buf, err := s.MarshalBinary()
	if err != nil {
		t.Fatalf("Status encode failed: %v", err)
	}
	return buf
}

func TestSetCoarseDelayWire(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	port := mocks.NewMockPortInterface(ctrl)
	dev := delayunit.NewDevice(port)

	expectWrite(port, []byte{byte(delayunit.CmdSetCoarse), 0x10, 0x27, 0x00, 0x00})
	if err := dev.SetCoarseDelay(10000); err != nil {
		t.Errorf("SetCoarseDelay failed: %v", err)
	}
}

func TestCoarseDelayQueryWire(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	port := mocks.NewMockPortInterface(ctrl)
	dev := delayunit.NewDevice(port)

	gomock.InOrder(
		expectWrite(port, []byte{byte(delayunit.CmdGetCoarse)}),
		expectRead(port, []byte{0x10, 0x27, 0x00, 0x00}),
	)
	got, err := dev.CoarseDelay()
	if err != nil {
		t.Fatalf("CoarseDelay failed: %v", err)
	}
	if got != 10000 {
		t.Errorf("CoarseDelay = %v, want 10000", got)
	}
}

func TestArmWire(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	port := mocks.NewMockPortInterface(ctrl)
	dev := delayunit.NewDevice(port)

	gomock.InOrder(
		expectWrite(port, []byte{byte(delayunit.CmdArm)}),
		expectWrite(port, []byte{byte(delayunit.CmdGetArmed)}),
		expectRead(port, []byte{0x01}),
	)
	if err := dev.Arm(); err != nil {
		t.Fatalf("Arm failed: %v", err)
	}
	armed, err := dev.Armed()
	if err != nil {
		t.Fatalf("Armed failed: %v", err)
	}
	if !armed {
		t.Errorf("Armed = false, want true")
	}
}

func TestWriteErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	port := mocks.NewMockPortInterface(ctrl)
	dev := delayunit.NewDevice(port)

	port.EXPECT().Write(gomock.Any()).Return(0, errors.New("port gone"))
	if err := dev.SetOutputWidth(5); err == nil {
		t.Errorf("SetOutputWidth swallowed the port error")
	}
}

func TestSplitDelay(t *testing.T) {
	if c, f := delayunit.SplitDelay(0); c != 0 || f != 0 {
		t.Errorf("SplitDelay(0) = (%v, %v), want (0, 0)", c, f)
	}
	if c, f := delayunit.SplitDelay(-100); c != 0 || f != 0 {
		t.Errorf("SplitDelay(-100) = (%v, %v), want (0, 0)", c, f)
	}
	// 12345ps: 2 coarse ticks plus 262 fine steps.
	if c, f := delayunit.SplitDelay(12345); c != 2 || f != 262 {
		t.Errorf("SplitDelay(12345) = (%v, %v), want (2, 262)", c, f)
	}
	// 4500ps lands past half a tick: round up and step back to avoid the
	// aliasing region.
	c, f := delayunit.SplitDelay(4500)
	if c != 1 || f != -56 {
		t.Errorf("SplitDelay(4500) = (%v, %v), want (1, -56)", c, f)
	}
	if got := delayunit.CombineDelay(c, f); got != 4500 {
		t.Errorf("CombineDelay(%v, %v) = %v, want 4500", c, f, got)
	}
}

func TestSetDelayPsSplitsAcrossRegisters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	port := mocks.NewMockPortInterface(ctrl)
	dev := delayunit.NewDevice(port)

	gomock.InOrder(
		expectWrite(port, []byte{byte(delayunit.CmdSetCoarse), 0x02, 0x00, 0x00, 0x00}),
		expectWrite(port, []byte{byte(delayunit.CmdSetFineOffset), 0x06, 0x01, 0x00, 0x00}),
		expectWrite(port, []byte{byte(delayunit.CmdGetCoarse)}),
		expectRead(port, []byte{0x02, 0x00, 0x00, 0x00}),
		expectWrite(port, []byte{byte(delayunit.CmdGetFineOffset)}),
		expectRead(port, []byte{0x06, 0x01, 0x00, 0x00}),
	)
	if err := dev.SetDelayPs(12345); err != nil {
		t.Fatalf("SetDelayPs failed: %v", err)
	}
	got, err := dev.DelayPs()
	if err != nil {
		t.Fatalf("DelayPs failed: %v", err)
	}
	// Fine steps quantize to ~8.93ps, so the readback loses a few ps.
	if got != 12339 {
		t.Errorf("DelayPs = %v, want 12339", got)
	}
}

func TestSetWidthPsFloorsCoarseWidth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	port := mocks.NewMockPortInterface(ctrl)
	dev := delayunit.NewDevice(port)

	// 100ps is below one tick; the coarse width floors to 1 and the fine
	// width carries the remainder.
	gomock.InOrder(
		expectWrite(port, []byte{byte(delayunit.CmdSetOutputWidth), 0x01, 0x00, 0x00, 0x00}),
		expectWrite(port, []byte{byte(delayunit.CmdSetFineWidth), 0x0B, 0x00, 0x00, 0x00}),
	)
	if err := dev.SetWidthPs(100); err != nil {
		t.Fatalf("SetWidthPs failed: %v", err)
	}
}

func TestStatusWire(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	port := mocks.NewMockPortInterface(ctrl)
	dev := delayunit.NewDevice(port)

	want := delayunit.Status{
		TriggerCount: 7,
		CoarseDelay:  1234,
		OutputWidth:  9,
		Armed:        1,
		ArmedMode:    delayunit.ArmedRepeat,
		Locked:       1,
		PhaseReady:   1,
		Edge:         delayunit.EdgeFalling,
	}
	gomock.InOrder(
		expectWrite(port, []byte{byte(delayunit.CmdGetStatus)}),
		expectRead(port, statusBytes(t, want)),
	)
	got, err := dev.Status()
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if *got != want {
		t.Errorf("Status = %+v, want %+v", *got, want)
	}
}

func TestWaitPhaseReadyRetriesUntilReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	port := mocks.NewMockPortInterface(ctrl)
	dev := delayunit.NewDevice(port)

	gomock.InOrder(
		expectWrite(port, []byte{byte(delayunit.CmdGetStatus)}),
		expectRead(port, statusBytes(t, delayunit.Status{})),
		expectWrite(port, []byte{byte(delayunit.CmdGetStatus)}),
		expectRead(port, statusBytes(t, delayunit.Status{PhaseReady: 1})),
	)
	if err := dev.WaitPhaseReady(5); err != nil {
		t.Errorf("WaitPhaseReady failed: %v", err)
	}
}

func TestWaitPhaseReadyGivesUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	port := mocks.NewMockPortInterface(ctrl)
	dev := delayunit.NewDevice(port)

	gomock.InOrder(
		expectWrite(port, []byte{byte(delayunit.CmdGetStatus)}),
		expectRead(port, statusBytes(t, delayunit.Status{})),
		expectWrite(port, []byte{byte(delayunit.CmdGetStatus)}),
		expectRead(port, statusBytes(t, delayunit.Status{})),
	)
	if err := dev.WaitPhaseReady(2); err == nil {
		t.Errorf("WaitPhaseReady reported ready on a busy shifter")
	}
}
