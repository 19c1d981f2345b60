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

// Host-side control interface for the delay unit board.
package delayunit

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/golang/glog"
)

// Timing constants of the board. One coarse tick is 5ns (200MHz); the phase
// shifter divides a tick into 560 fine steps (~8.93ps each). Fine values
// past half a tick alias, so the split keeps them within +/-280 steps.
const (
	CoarseStepPs     = 5000
	FineStepsPerTick = 560
	MaxFineSteps     = 280
)

// SplitDelay converts picoseconds into coarse ticks plus signed fine steps.
func SplitDelay(ps int64) (coarse uint32, fine int32) {
	if ps < 0 {
		ps = 0
	}
	totalFine := ps * FineStepsPerTick / CoarseStepPs
	coarse = uint32(totalFine / FineStepsPerTick)
	fine = int32(totalFine % FineStepsPerTick)
	if fine > MaxFineSteps {
		coarse++
		fine -= FineStepsPerTick
	}
	return coarse, fine
}

// CombineDelay converts coarse ticks plus fine steps back to picoseconds.
func CombineDelay(coarse uint32, fine int32) int64 {
	finePs := int64(math.Round(float64(fine) * CoarseStepPs / FineStepsPerTick))
	return int64(coarse)*CoarseStepPs + finePs
}

// Device drives one delay unit board through its byte protocol.
type Device struct {
	port PortInterface
}

func NewDevice(port PortInterface) *Device {
	return &Device{port}
}

func (d *Device) Close() error {
	return d.port.Close()
}

// Sends one command with an optional little-endian payload.
func (d *Device) command(cmd Command, payload interface{}) error {
	var err error
	buf := new(bytes.Buffer)
	buf.WriteByte(byte(cmd))
	if payload != nil {
		if err = binary.Write(buf, binary.LittleEndian, payload); err != nil {
			return fmt.Errorf("binary.Write failed: %v", err)
		}
	}
	glog.V(1).Infof("[cmd-write]: %v, len = %v", cmd, buf.Len())
	if _, err = d.port.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("Write %v failed: %v", cmd, err)
	}
	return nil
}

// Sends a GET command and decodes the fixed-size response into data.
func (d *Device) query(cmd Command, data interface{}) error {
	var err error
	if err = d.command(cmd, nil); err != nil {
		return err
	}
	if binary.Size(data) == -1 {
		return fmt.Errorf("Failed to get data size")
	}
	buf := make([]byte, binary.Size(data))
	if _, err = io.ReadFull(d.port, buf); err != nil {
		return fmt.Errorf("Read %v response failed: %v", cmd, err)
	}
	glog.V(1).Infof("[cmd-read]: %v, len = %v", cmd, len(buf))
	if err = binary.Read(bytes.NewReader(buf), binary.LittleEndian, data); err != nil {
		return fmt.Errorf("binary.Read failed: %v", err)
	}
	return nil
}

//
// Coarse timing registers.
//

func (d *Device) SetCoarseDelay(ticks uint32) error {
	return d.command(CmdSetCoarse, ticks)
}

func (d *Device) CoarseDelay() (uint32, error) {
	var v uint32
	err := d.query(CmdGetCoarse, &v)
	return v, err
}

func (d *Device) SetOutputWidth(ticks uint32) error {
	if ticks == 0 {
		ticks = 1
	}
	return d.command(CmdSetOutputWidth, ticks)
}

func (d *Device) OutputWidth() (uint32, error) {
	var v uint32
	err := d.query(CmdGetOutputWidth, &v)
	return v, err
}

func (d *Device) SetSoftTriggerWidth(ticks uint32) error {
	return d.command(CmdSetSoftTriggerWidth, ticks)
}

func (d *Device) SoftTriggerWidth() (uint32, error) {
	var v uint32
	err := d.query(CmdGetSoftTriggerWidth, &v)
	return v, err
}

//
// Fine timing registers. SET blocks on the board until the phase shifter
// confirms, so allow for a slow round trip on readback mismatches.
//

func (d *Device) SetFineOffset(steps int32) error {
	return d.command(CmdSetFineOffset, steps)
}

func (d *Device) FineOffset() (int32, error) {
	var v int32
	err := d.query(CmdGetFineOffset, &v)
	return v, err
}

func (d *Device) SetFineWidth(steps int32) error {
	return d.command(CmdSetFineWidth, steps)
}

func (d *Device) FineWidth() (int32, error) {
	var v int32
	err := d.query(CmdGetFineWidth, &v)
	return v, err
}

// SetDelayPs programs the total trigger-to-output delay in picoseconds,
// splitting it into coarse ticks and fine steps.
func (d *Device) SetDelayPs(ps int64) error {
	var err error
	coarse, fine := SplitDelay(ps)
	if err = d.SetCoarseDelay(coarse); err != nil {
		return err
	}
	return d.SetFineOffset(fine)
}

// DelayPs reads back the programmed total delay in picoseconds.
func (d *Device) DelayPs() (int64, error) {
	var err error
	var coarse uint32
	var fine int32
	if coarse, err = d.CoarseDelay(); err != nil {
		return 0, err
	}
	if fine, err = d.FineOffset(); err != nil {
		return 0, err
	}
	return CombineDelay(coarse, fine), nil
}

// SetWidthPs programs the total output pulse width in picoseconds.
func (d *Device) SetWidthPs(ps int64) error {
	var err error
	coarse, fine := SplitDelay(ps)
	if coarse == 0 {
		coarse = 1
	}
	if err = d.SetOutputWidth(coarse); err != nil {
		return err
	}
	return d.SetFineWidth(fine)
}

// WidthPs reads back the programmed total pulse width in picoseconds.
func (d *Device) WidthPs() (int64, error) {
	var err error
	var coarse uint32
	var fine int32
	if coarse, err = d.OutputWidth(); err != nil {
		return 0, err
	}
	if fine, err = d.FineWidth(); err != nil {
		return 0, err
	}
	return CombineDelay(coarse, fine), nil
}

//
// Trigger configuration.
//

func (d *Device) SetEdge(edge EdgeType) error {
	return d.command(CmdSetEdge, edge)
}

func (d *Device) Edge() (EdgeType, error) {
	var v EdgeType
	err := d.query(CmdGetEdge, &v)
	return v, err
}

func (d *Device) SetTriggerMode(mode TriggerMode) error {
	return d.command(CmdSetTriggerMode, mode)
}

func (d *Device) TriggerMode() (TriggerMode, error) {
	var v TriggerMode
	err := d.query(CmdGetTriggerMode, &v)
	return v, err
}

func (d *Device) SetCounterMode(mode CounterMode) error {
	return d.command(CmdSetCounterMode, mode)
}

func (d *Device) CounterMode() (CounterMode, error) {
	var v CounterMode
	err := d.query(CmdGetCounterMode, &v)
	return v, err
}

func (d *Device) SetEdgeCountTarget(count uint32) error {
	return d.command(CmdSetEdgeCountTarget, count)
}

func (d *Device) EdgeCountTarget() (uint32, error) {
	var v uint32
	err := d.query(CmdGetEdgeCountTarget, &v)
	return v, err
}

func (d *Device) SetArmedMode(mode ArmedMode) error {
	return d.command(CmdSetArmedMode, mode)
}

func (d *Device) ArmedMode() (ArmedMode, error) {
	var v ArmedMode
	err := d.query(CmdGetArmedMode, &v)
	return v, err
}

func (d *Device) Armed() (bool, error) {
	var v uint8
	err := d.query(CmdGetArmed, &v)
	return v != 0, err
}

//
// Actions.
//

func (d *Device) Arm() error {
	return d.command(CmdArm, nil)
}

func (d *Device) Disarm() error {
	return d.command(CmdDisarm, nil)
}

func (d *Device) SoftTrigger() error {
	return d.command(CmdSoftTrigger, nil)
}

func (d *Device) ResetCounter() error {
	return d.command(CmdResetCount, nil)
}

func (d *Device) ResetEdgeCount() error {
	return d.command(CmdResetEdgeCount, nil)
}

// Status reads the full device snapshot.
func (d *Device) Status() (*Status, error) {
	var err error
	if err = d.command(CmdGetStatus, nil); err != nil {
		return nil, err
	}
	buf := make([]byte, StatusSize)
	if _, err = io.ReadFull(d.port, buf); err != nil {
		return nil, fmt.Errorf("Read status failed: %v", err)
	}
	s := &Status{}
	if err = s.UnmarshalBinary(buf); err != nil {
		return nil, err
	}
	return s, nil
}

// WaitPhaseReady polls until the phase-shift collaborator reports that the
// last fine adjustment completed.
func (d *Device) WaitPhaseReady(attempts int) error {
	for i := 0; i < attempts; i++ {
		s, err := d.Status()
		if err != nil {
			return err
		}
		if s.PhaseReady != 0 {
			return nil
		}
		glog.V(1).Infof("Phase shift busy, retrying")
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("Phase shift did not become ready")
}
