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

// Byte-stream command dispatcher.
package delayunit

import (
	"encoding/binary"

	"github.com/golang/glog"
)

type protoState int

const (
	protoIdle protoState = iota
	protoPayload
	protoRespond
	protoWaitPhase
)

const (
	// Ticks to wait for the rest of a payload before discarding a partial
	// command. ~5ms at 200MHz.
	payloadTimeoutTicks = 1 << 20
	// Bound on the phase-shift collaborator round trip. The shifter steps
	// one unit per adjustment, so this covers any reachable target.
	phaseWaitTimeoutTicks = 1 << 24
)

// Protocol is the command dispatcher: one opcode byte, a fixed per-opcode
// payload, and for GET commands a response streamed one byte per free
// transmit slot. One outstanding request at a time; unknown opcodes are
// dropped silently with no side effect.
type Protocol struct {
	cfg    *Config
	arb    *TriggerArbiter
	offset PhaseShifterInterface
	width  PhaseShifterInterface

	// Engine-provided status snapshot for GET_STATUS.
	snapshot func() Status

	state   protoState
	cmd     Command
	payload []byte
	resp    []byte
	respPos int

	waitCmd    Command
	waitTarget int32
	waitTicks  int

	stallTicks int
	softReq    bool
}

type cmdSpec struct {
	payloadLen int
	handle     func(p *Protocol, payload []byte)
}

func u32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

func putU32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

var commandTable = map[Command]cmdSpec{
	CmdSetCoarse: {4, func(p *Protocol, pl []byte) {
		p.cfg.CoarseDelay = u32(pl)
	}},
	CmdGetCoarse: {0, func(p *Protocol, pl []byte) {
		p.respond(putU32(p.cfg.CoarseDelay))
	}},
	CmdSetEdge: {1, func(p *Protocol, pl []byte) {
		p.cfg.Edge = EdgeType(pl[0] & 0x03)
	}},
	CmdGetEdge: {0, func(p *Protocol, pl []byte) {
		p.respond([]byte{byte(p.cfg.Edge)})
	}},
	CmdGetStatus: {0, func(p *Protocol, pl []byte) {
		s := p.snapshot()
		buf, err := s.MarshalBinary()
		if err != nil {
			glog.Errorf("Status encode failed: %v", err)
			return
		}
		p.respond(buf)
	}},
	CmdResetCount: {0, func(p *Protocol, pl []byte) {
		p.arb.ResetTriggerCount()
	}},
	CmdSoftTrigger: {0, func(p *Protocol, pl []byte) {
		p.softReq = true
	}},
	CmdSetOutputWidth: {4, func(p *Protocol, pl []byte) {
		p.cfg.OutputWidth = u32(pl)
	}},
	CmdGetOutputWidth: {0, func(p *Protocol, pl []byte) {
		p.respond(putU32(p.cfg.OutputWidth))
	}},
	CmdSetTriggerMode: {1, func(p *Protocol, pl []byte) {
		p.cfg.Mode = TriggerMode(pl[0] & 0x01)
	}},
	CmdGetTriggerMode: {0, func(p *Protocol, pl []byte) {
		p.respond([]byte{byte(p.cfg.Mode)})
	}},
	CmdSetSoftTriggerWidth: {4, func(p *Protocol, pl []byte) {
		p.cfg.SoftTriggerWidth = u32(pl)
	}},
	CmdGetSoftTriggerWidth: {0, func(p *Protocol, pl []byte) {
		p.respond(putU32(p.cfg.SoftTriggerWidth))
	}},
	CmdSetCounterMode: {1, func(p *Protocol, pl []byte) {
		p.cfg.Counter = CounterMode(pl[0] & 0x01)
	}},
	CmdGetCounterMode: {0, func(p *Protocol, pl []byte) {
		p.respond([]byte{byte(p.cfg.Counter)})
	}},
	CmdSetEdgeCountTarget: {4, func(p *Protocol, pl []byte) {
		v := u32(pl)
		if v == 0 {
			v = 1
		}
		p.cfg.EdgeCountTarget = v
	}},
	CmdGetEdgeCountTarget: {0, func(p *Protocol, pl []byte) {
		p.respond(putU32(p.cfg.EdgeCountTarget))
	}},
	CmdResetEdgeCount: {0, func(p *Protocol, pl []byte) {
		p.arb.ResetEdgeCount()
	}},
	CmdArm: {0, func(p *Protocol, pl []byte) {
		p.arb.Arm()
	}},
	CmdDisarm: {0, func(p *Protocol, pl []byte) {
		p.arb.Disarm()
	}},
	CmdSetArmedMode: {1, func(p *Protocol, pl []byte) {
		p.cfg.ArmMode = ArmedMode(pl[0] & 0x01)
	}},
	CmdGetArmedMode: {0, func(p *Protocol, pl []byte) {
		p.respond([]byte{byte(p.cfg.ArmMode)})
	}},
	CmdGetArmed: {0, func(p *Protocol, pl []byte) {
		p.respond([]byte{boolByte(p.arb.Armed())})
	}},
	CmdSetFineOffset: {4, func(p *Protocol, pl []byte) {
		p.startPhaseWait(CmdSetFineOffset, int32(u32(pl)), p.offset)
	}},
	CmdGetFineOffset: {0, func(p *Protocol, pl []byte) {
		p.respond(putU32(uint32(p.cfg.FineOffset)))
	}},
	CmdSetFineWidth: {4, func(p *Protocol, pl []byte) {
		p.startPhaseWait(CmdSetFineWidth, int32(u32(pl)), p.width)
	}},
	CmdGetFineWidth: {0, func(p *Protocol, pl []byte) {
		p.respond(putU32(uint32(p.cfg.FineWidth)))
	}},
}

func NewProtocol(cfg *Config, arb *TriggerArbiter,
	offset, width PhaseShifterInterface, snapshot func() Status) *Protocol {
	return &Protocol{
		cfg:      cfg,
		arb:      arb,
		offset:   offset,
		width:    width,
		snapshot: snapshot,
	}
}

func (p *Protocol) respond(data []byte) {
	p.resp = data
	p.respPos = 0
	p.state = protoRespond
}

func (p *Protocol) startPhaseWait(cmd Command, target int32, sh PhaseShifterInterface) {
	sh.Configure(target)
	if sh.Configured() {
		// Already at target, no adjustment cycle to wait out.
		p.latchPhase(cmd, target)
		return
	}
	p.waitCmd = cmd
	p.waitTarget = target
	p.waitTicks = 0
	p.state = protoWaitPhase
}

func (p *Protocol) latchPhase(cmd Command, target int32) {
	switch cmd {
	case CmdSetFineOffset:
		p.cfg.FineOffset = target
	case CmdSetFineWidth:
		p.cfg.FineWidth = target
	}
	p.state = protoIdle
}

// TakeSoftTrigger consumes the one-tick soft-trigger request.
func (p *Protocol) TakeSoftTrigger() bool {
	req := p.softReq
	p.softReq = false
	return req
}

// Tick advances the dispatcher by one tick, consuming at most one received
// byte and producing at most one transmit byte when txFree.
func (p *Protocol) Tick(rx byte, rxValid, txFree bool) (tx byte, txValid bool) {
	switch p.state {
	case protoIdle:
		if !rxValid {
			return 0, false
		}
		cmd := Command(rx)
		spec, ok := commandTable[cmd]
		if !ok {
			glog.V(2).Infof("[proto]: unknown opcode 0x%02x dropped", rx)
			return 0, false
		}
		glog.V(2).Infof("[proto]: %v", cmd)
		if spec.payloadLen == 0 {
			spec.handle(p, nil)
			return 0, false
		}
		p.cmd = cmd
		p.payload = p.payload[:0]
		p.stallTicks = 0
		p.state = protoPayload

	case protoPayload:
		spec := commandTable[p.cmd]
		if !rxValid {
			p.stallTicks++
			if p.stallTicks >= payloadTimeoutTicks {
				glog.Warningf("[proto]: %v payload timed out after %d bytes, discarding",
					p.cmd, len(p.payload))
				p.state = protoIdle
			}
			return 0, false
		}
		p.stallTicks = 0
		p.payload = append(p.payload, rx)
		if len(p.payload) == spec.payloadLen {
			p.state = protoIdle
			spec.handle(p, p.payload)
		}

	case protoRespond:
		if !txFree {
			return 0, false
		}
		tx = p.resp[p.respPos]
		p.respPos++
		if p.respPos == len(p.resp) {
			p.state = protoIdle
		}
		return tx, true

	case protoWaitPhase:
		sh := p.offset
		if p.waitCmd == CmdSetFineWidth {
			sh = p.width
		}
		// The ack is edge-detected: Configure drops the level, so seeing it
		// high again means this request completed, not a stale level.
		if sh.Configured() {
			p.latchPhase(p.waitCmd, p.waitTarget)
			return 0, false
		}
		p.waitTicks++
		if p.waitTicks >= phaseWaitTimeoutTicks {
			glog.Warningf("[proto]: %v collaborator ack timed out, value not latched",
				p.waitCmd)
			p.state = protoIdle
		}
	}
	return 0, false
}

// Idle reports whether the dispatcher is between commands.
func (p *Protocol) Idle() bool {
	return p.state == protoIdle
}

// WantsRx reports whether the dispatcher can consume a received byte this
// tick. While responding or waiting on the collaborator, received bytes stay
// in the UART FIFO.
func (p *Protocol) WantsRx() bool {
	return p.state == protoIdle || p.state == protoPayload
}
