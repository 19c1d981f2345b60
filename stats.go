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

// Timing statistics over a recording.
package delayunit

import (
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the delivered pulses of a recording, in ticks.
// On real hardware the delay spread is the rig's jitter; in simulation it
// is exactly zero, which the determinism tests rely on.
type Summary struct {
	Count       int
	MeanDelay   float64
	StdDevDelay float64
	MeanWidth   float64
	StdDevWidth float64
}

// Delays returns the per-pulse trigger-to-output latencies.
func (r Recording) Delays() []float64 {
	out := make([]float64, len(r))
	for i, t := range r {
		out[i] = float64(t.DelayTicks())
	}
	return out
}

// Widths returns the per-pulse output widths.
func (r Recording) Widths() []float64 {
	out := make([]float64, len(r))
	for i, t := range r {
		out[i] = float64(t.WidthTicks())
	}
	return out
}

// Summarize computes mean and spread of delay and width.
func (r Recording) Summarize() Summary {
	s := Summary{Count: len(r)}
	if len(r) == 0 {
		return s
	}
	delays := r.Delays()
	widths := r.Widths()
	s.MeanDelay = stat.Mean(delays, nil)
	s.MeanWidth = stat.Mean(widths, nil)
	if len(r) > 1 {
		s.StdDevDelay = stat.StdDev(delays, nil)
		s.StdDevWidth = stat.StdDev(widths, nil)
	}
	return s
}
