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
	"math"
	"testing"

	delayunit "github.com/HWS-XMS/DelayUnit"
)

func TestSummarizeEmptyRecording(t *testing.T) {
	s := delayunit.Recording{}.Summarize()
	if s.Count != 0 || s.MeanDelay != 0 || s.StdDevDelay != 0 {
		t.Errorf("Empty recording summary = %+v, want zeros", s)
	}
}

func TestSummarizeJitterFree(t *testing.T) {
	rec := delayunit.Recording{
		{TriggerTick: 0, StartTick: 10, EndTick: 13},
		{TriggerTick: 100, StartTick: 110, EndTick: 113},
		{TriggerTick: 200, StartTick: 210, EndTick: 213},
	}
	s := rec.Summarize()
	if s.Count != 3 {
		t.Errorf("Count = %v, want 3", s.Count)
	}
	if s.MeanDelay != 10 || s.StdDevDelay != 0 {
		t.Errorf("Delay stats = (%v, %v), want (10, 0)", s.MeanDelay, s.StdDevDelay)
	}
	if s.MeanWidth != 3 || s.StdDevWidth != 0 {
		t.Errorf("Width stats = (%v, %v), want (3, 0)", s.MeanWidth, s.StdDevWidth)
	}
}

func TestSummarizeSpread(t *testing.T) {
	rec := delayunit.Recording{
		{TriggerTick: 0, StartTick: 9, EndTick: 12},
		{TriggerTick: 100, StartTick: 111, EndTick: 114},
	}
	s := rec.Summarize()
	if s.MeanDelay != 10 {
		t.Errorf("Mean delay = %v, want 10", s.MeanDelay)
	}
	// Sample standard deviation of {9, 11}.
	if math.Abs(s.StdDevDelay-math.Sqrt2) > 1e-12 {
		t.Errorf("Delay stddev = %v, want sqrt(2)", s.StdDevDelay)
	}
}
