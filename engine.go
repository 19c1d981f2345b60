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

// Tick-synchronous trigger delay engine. This is the Go rendition of the
// FPGA gateware: one discrete update per tick of the 200MHz reference clock
// (5ns/tick), no preemption, deterministic component order, so two identical
// traces of inputs always produce identical outputs.
package delayunit

// Engine wires the edge synchronizer, trigger arbiter, pulse generator and
// command dispatcher together. Command bytes enter through an rx queue (the
// UART byte assembly is external) and responses leave through a tx queue,
// at most one byte each per tick.
type Engine struct {
	cfg   *Config
	sync  EdgeSynchronizer
	arb   TriggerArbiter
	gen   DelayPulseGenerator
	proto *Protocol

	offset *SimPhaseShifter
	width  *SimPhaseShifter

	rxq []byte
	txq []byte

	setCross   ToggleCrossing
	resetCross ToggleCrossing
	fineSet    bool
	fineReset  bool

	softLeft uint32
	softOut  bool

	ticks uint64
}

func NewEngine() *Engine {
	e := &Engine{
		cfg:    NewConfig(),
		offset: NewSimPhaseShifter(),
		width:  NewSimPhaseShifter(),
	}
	e.proto = NewProtocol(e.cfg, &e.arb, e.offset, e.width, e.statusSnapshot)
	return e
}

func (e *Engine) statusSnapshot() Status {
	return Status{
		TriggerCount: e.arb.TriggerCount(),
		CoarseDelay:  e.cfg.CoarseDelay,
		FineOffset:   e.cfg.FineOffset,
		OutputWidth:  e.cfg.OutputWidth,
		FineWidth:    e.cfg.FineWidth,
		Armed:        boolByte(e.arb.Armed()),
		TriggerMode:  e.cfg.Mode,
		ArmedMode:    e.cfg.ArmMode,
		CounterMode:  e.cfg.Counter,
		Locked:       boolByte(e.offset.Locked() && e.width.Locked()),
		PhaseReady:   boolByte(e.offset.Configured() && e.width.Configured()),
		Edge:         e.cfg.Edge,
	}
}

// PushRx queues command bytes for the dispatcher.
func (e *Engine) PushRx(data ...byte) {
	e.rxq = append(e.rxq, data...)
}

// PopTx drains and returns the queued response bytes.
func (e *Engine) PopTx() []byte {
	out := e.txq
	e.txq = nil
	return out
}

// Tick advances the whole engine by one tick. raw is the asynchronous
// external trigger line level.
func (e *Engine) Tick(raw bool) {
	e.ticks++

	var rx byte
	rxValid := false
	if e.proto.WantsRx() && len(e.rxq) > 0 {
		rx = e.rxq[0]
		e.rxq = e.rxq[1:]
		rxValid = true
	}
	if tx, ok := e.proto.Tick(rx, rxValid, true); ok {
		e.txq = append(e.txq, tx)
	}
	soft := e.proto.TakeSoftTrigger()

	// The soft-trigger monitor pulse fires on every request, independent of
	// the arm gate and of the main output.
	if soft {
		w := e.cfg.SoftTriggerWidth
		if w == 0 {
			w = 1
		}
		e.softLeft = w
	}
	e.softOut = e.softLeft > 0
	if e.softLeft > 0 {
		e.softLeft--
	}

	edge := e.sync.Tick(raw, e.cfg.Edge)
	trig := e.arb.Select(edge, soft, e.cfg)
	if e.gen.Tick(trig, e.cfg) {
		e.arb.NoteAccepted(e.cfg)
	}

	if e.gen.SetStrobe() {
		e.setCross.Send()
	}
	if e.gen.ResetStrobe() {
		e.resetCross.Send()
	}
	e.fineSet = e.setCross.Recv()
	e.fineReset = e.resetCross.Recv()

	e.offset.Tick()
	e.width.Tick()
}

// Run advances the engine n ticks with the trigger line held at raw.
func (e *Engine) Run(n int, raw bool) {
	for i := 0; i < n; i++ {
		e.Tick(raw)
	}
}

// Out is the main delayed output pulse level this tick.
func (e *Engine) Out() bool {
	return e.gen.Out()
}

// SoftOut is the soft-trigger monitor pulse level this tick.
func (e *Engine) SoftOut() bool {
	return e.softOut
}

// FineSetPulse reports the rising-edge strobe as seen in the fine-delay
// domain after resynchronization.
func (e *Engine) FineSetPulse() bool {
	return e.fineSet
}

// FineResetPulse is the falling-edge counterpart of FineSetPulse.
func (e *Engine) FineResetPulse() bool {
	return e.fineReset
}

// Ticks is the number of ticks elapsed since power-on.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Config exposes the register file for inspection.
func (e *Engine) Config() *Config {
	return e.cfg
}

// Arbiter exposes the arming gate and counters for inspection.
func (e *Engine) Arbiter() *TriggerArbiter {
	return &e.arb
}

// Generator exposes the pulse generator for inspection.
func (e *Engine) Generator() *DelayPulseGenerator {
	return &e.gen
}

// Status returns the same snapshot GET_STATUS would report.
func (e *Engine) Status() Status {
	return e.statusSnapshot()
}
