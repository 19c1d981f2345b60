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

// Input synchronization and edge detection.
package delayunit

// syncStages is the depth of the sampling pipeline guarding against a
// transition landing too close to a sampling instant.
const syncStages = 3

// Synchronizer passes an asynchronous level through a multi-stage sampling
// pipeline. One Sample per tick; the output lags the input by syncStages
// ticks.
type Synchronizer struct {
	stages [syncStages]bool
}

// Sample shifts the pipeline by one tick and returns the synchronized level.
func (s *Synchronizer) Sample(raw bool) bool {
	out := s.stages[syncStages-1]
	for i := syncStages - 1; i > 0; i-- {
		s.stages[i] = s.stages[i-1]
	}
	s.stages[0] = raw
	return out
}

// EdgeSynchronizer samples the external trigger line and emits a one-tick
// edge pulse whenever a transition matching the configured edge type occurs.
// It cannot fail, only suppress.
type EdgeSynchronizer struct {
	sync Synchronizer
	// Synchronized level and its value one tick earlier.
	level, prev bool
}

// Tick consumes one raw input sample and reports whether a qualifying edge
// occurred this tick.
func (e *EdgeSynchronizer) Tick(raw bool, edge EdgeType) bool {
	e.prev = e.level
	e.level = e.sync.Sample(raw)

	rising := e.level && !e.prev
	falling := !e.level && e.prev

	switch edge {
	case EdgeRising:
		return rising
	case EdgeFalling:
		return falling
	case EdgeBoth:
		return rising || falling
	}
	return false
}

// Level returns the synchronized input level as of the last Tick.
func (e *EdgeSynchronizer) Level() bool {
	return e.level
}

// ToggleCrossing carries a one-tick strobe into an independently-clocked
// domain. The sender flips a toggle; the receiver samples it through a
// Synchronizer and edge-detects, so a held level can never double-fire and
// no strobe is lost as long as strobes are farther apart than the pipeline
// depth.
type ToggleCrossing struct {
	toggle bool
	sync   Synchronizer
	prev   bool
}

// Send flips the source-domain toggle, marking one strobe.
func (t *ToggleCrossing) Send() {
	t.toggle = !t.toggle
}

// Recv advances the destination domain by one tick and reports whether a
// strobe arrived.
func (t *ToggleCrossing) Recv() bool {
	cur := t.sync.Sample(t.toggle)
	fired := cur != t.prev
	t.prev = cur
	return fired
}
