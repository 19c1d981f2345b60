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

package delayunit

// Config is the device register file. It is written exclusively by the
// command protocol engine and read by the trigger path every tick.
// Changes never apply retroactively: a delay/width cycle latches its
// parameters when the trigger is accepted.
type Config struct {
	CoarseDelay      uint32
	OutputWidth      uint32
	Edge             EdgeType
	Mode             TriggerMode
	SoftTriggerWidth uint32
	Counter          CounterMode
	EdgeCountTarget  uint32
	ArmMode          ArmedMode

	// Applied sub-tick values, latched after the phase-shift collaborator
	// confirms each request.
	FineOffset int32
	FineWidth  int32
}

func NewConfig() *Config {
	c := &Config{}
	c.Reset()
	return c
}

// Reset restores power-on defaults.
func (c *Config) Reset() {
	c.CoarseDelay = DefaultCoarseDelay
	c.OutputWidth = DefaultOutputWidth
	c.Edge = DefaultEdgeType
	c.Mode = TriggerExternal
	c.SoftTriggerWidth = DefaultSoftTriggerWidth
	c.Counter = CounterDisabled
	c.EdgeCountTarget = DefaultEdgeCountTarget
	c.ArmMode = ArmedSingle
	c.FineOffset = 0
	c.FineWidth = 0
}
