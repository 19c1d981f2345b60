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

// Records delivered trigger pulses.
package delayunit

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
)

// PulseTrace is one delivered trigger: the tick the trigger was accepted and
// the ticks the output pulse started and ended (exclusive).
type PulseTrace struct {
	TriggerTick uint64 `json:"trig"`
	StartTick   uint64 `json:"start"`
	EndTick     uint64 `json:"end"`
}

// DelayTicks is the observed trigger-to-output latency.
func (t PulseTrace) DelayTicks() uint64 {
	return t.StartTick - t.TriggerTick
}

// WidthTicks is the observed output pulse width.
func (t PulseTrace) WidthTicks() uint64 {
	return t.EndTick - t.StartTick
}

type Recording []PulseTrace

// Exported for testing.
func LoadRecordingIo(src io.Reader) (Recording, error) {
	var rec Recording
	zipper, err := gzip.NewReader(src)
	if err != nil {
		return nil, fmt.Errorf("gzip NewReader failed %v", err)
	}
	decoder := json.NewDecoder(zipper)
	if err = decoder.Decode(&rec); err != nil {
		return nil, fmt.Errorf("JSON decoder failed %v", err)
	}
	return rec, nil
}

// Loads a recording from file.
func LoadRecording(filename string) (Recording, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("Error opening recording file: %v", err)
	}
	defer f.Close()
	return LoadRecordingIo(f)
}

// Exported for testing.
func (r Recording) SaveIo(dst io.Writer) error {
	var err error
	zipper := gzip.NewWriter(dst)
	encoder := json.NewEncoder(zipper)
	if err = encoder.Encode(r); err != nil {
		return fmt.Errorf("JSON encoder failed %v", err)
	}
	if err = zipper.Close(); err != nil {
		return fmt.Errorf("gzip close failed %v", err)
	}
	return nil
}

func (r Recording) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("Error creating recording file: %v", err)
	}
	defer f.Close()
	return r.SaveIo(f)
}

// Recorder builds a Recording by observing the engine after every tick.
// Accepted triggers are matched to output pulses in order; the pending
// retrigger bound keeps at most two triggers outstanding, so the match
// window is small. Back-to-back zero-delay cycles merge into one trace
// because the output line never drops between them.
type Recorder struct {
	rec       Recording
	lastCount uint16
	lastOut   bool
	waiting   []uint64
	open      *PulseTrace
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Observe samples the engine state; call once after each Engine.Tick.
func (r *Recorder) Observe(e *Engine) {
	tick := e.Ticks()

	count := e.Arbiter().TriggerCount()
	if count != r.lastCount {
		r.lastCount = count
		r.waiting = append(r.waiting, tick)
	}

	out := e.Out()
	if out && !r.lastOut {
		trace := PulseTrace{TriggerTick: tick, StartTick: tick}
		if len(r.waiting) > 0 {
			trace.TriggerTick = r.waiting[0]
			r.waiting = r.waiting[1:]
		} else {
			glog.Warningf("Output pulse at tick %d with no matching trigger", tick)
		}
		r.open = &trace
	}
	if !out && r.lastOut && r.open != nil {
		r.open.EndTick = tick
		r.rec = append(r.rec, *r.open)
		r.open = nil
	}
	r.lastOut = out
}

// Recording returns the completed traces so far.
func (r *Recorder) Recording() Recording {
	return r.rec
}
