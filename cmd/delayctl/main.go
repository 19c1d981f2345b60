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

// Command-line control of a delay unit board.
package main

import (
	"flag"
	"fmt"
	"strconv"

	delayunit "github.com/HWS-XMS/DelayUnit"

	"github.com/golang/glog"
)

var (
	deviceFlag = flag.String("device", "/dev/ttyUSB0", "Serial device of the board")
)

const usage = `usage: delayctl [flags] <command> [arg]

commands:
  status                              print the full device snapshot
  arm | disarm                        set/clear the arming gate
  soft-trigger                        fire one internal trigger
  reset-count | reset-edge-count      zero the trigger/edge counters
  get-delay | set-delay <ps>          total trigger-to-output delay
  get-width | set-width <ps>          total output pulse width
  get-edge | set-edge <none|rising|falling|both>
  get-trigger-mode | set-trigger-mode <external|internal>
  get-counter-mode | set-counter-mode <off|on>
  get-edge-count-target | set-edge-count-target <n>
  get-armed-mode | set-armed-mode <single|repeat>
  armed                               print the armed state
`

func parseEdge(s string) (delayunit.EdgeType, error) {
	switch s {
	case "none":
		return delayunit.EdgeNone, nil
	case "rising":
		return delayunit.EdgeRising, nil
	case "falling":
		return delayunit.EdgeFalling, nil
	case "both":
		return delayunit.EdgeBoth, nil
	}
	return 0, fmt.Errorf("Unknown edge type %q", s)
}

func parseInt(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		glog.Fatalf("Invalid number %q: %v", s, err)
	}
	return v
}

func arg() string {
	if flag.NArg() < 2 {
		glog.Fatalf("Missing argument\n%s", usage)
	}
	return flag.Arg(1)
}

func printStatus(s *delayunit.Status) {
	fmt.Printf("trigger count:     %d\n", s.TriggerCount)
	fmt.Printf("delay:             %d ps (coarse %d, fine %d)\n",
		delayunit.CombineDelay(s.CoarseDelay, s.FineOffset), s.CoarseDelay, s.FineOffset)
	fmt.Printf("width:             %d ps (coarse %d, fine %d)\n",
		delayunit.CombineDelay(s.OutputWidth, s.FineWidth), s.OutputWidth, s.FineWidth)
	fmt.Printf("armed:             %v (mode %d)\n", s.Armed != 0, s.ArmedMode)
	fmt.Printf("trigger mode:      %d\n", s.TriggerMode)
	fmt.Printf("counter mode:      %d\n", s.CounterMode)
	fmt.Printf("edge type:         %d\n", s.Edge)
	fmt.Printf("clocks locked:     %v\n", s.Locked != 0)
	fmt.Printf("phase shift ready: %v\n", s.PhaseReady != 0)
}

func main() {
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() < 1 {
		glog.Fatal(usage)
	}

	port, err := delayunit.OpenSerialPort(*deviceFlag)
	if err != nil {
		glog.Fatal(err)
	}
	dev := delayunit.NewDevice(port)
	defer dev.Close()

	switch cmd := flag.Arg(0); cmd {
	case "status":
		var s *delayunit.Status
		if s, err = dev.Status(); err == nil {
			printStatus(s)
		}
	case "arm":
		err = dev.Arm()
	case "disarm":
		err = dev.Disarm()
	case "soft-trigger":
		err = dev.SoftTrigger()
	case "reset-count":
		err = dev.ResetCounter()
	case "reset-edge-count":
		err = dev.ResetEdgeCount()
	case "get-delay":
		var ps int64
		if ps, err = dev.DelayPs(); err == nil {
			fmt.Printf("%d ps\n", ps)
		}
	case "set-delay":
		if err = dev.SetDelayPs(parseInt(arg())); err == nil {
			err = dev.WaitPhaseReady(100)
		}
	case "get-width":
		var ps int64
		if ps, err = dev.WidthPs(); err == nil {
			fmt.Printf("%d ps\n", ps)
		}
	case "set-width":
		if err = dev.SetWidthPs(parseInt(arg())); err == nil {
			err = dev.WaitPhaseReady(100)
		}
	case "get-edge":
		var e delayunit.EdgeType
		if e, err = dev.Edge(); err == nil {
			fmt.Println(e)
		}
	case "set-edge":
		var e delayunit.EdgeType
		if e, err = parseEdge(arg()); err == nil {
			err = dev.SetEdge(e)
		}
	case "get-trigger-mode":
		var m delayunit.TriggerMode
		if m, err = dev.TriggerMode(); err == nil {
			fmt.Println(m)
		}
	case "set-trigger-mode":
		m := delayunit.TriggerExternal
		if arg() == "internal" {
			m = delayunit.TriggerInternal
		}
		err = dev.SetTriggerMode(m)
	case "get-counter-mode":
		var m delayunit.CounterMode
		if m, err = dev.CounterMode(); err == nil {
			fmt.Println(m)
		}
	case "set-counter-mode":
		m := delayunit.CounterDisabled
		if arg() == "on" {
			m = delayunit.CounterEnabled
		}
		err = dev.SetCounterMode(m)
	case "get-edge-count-target":
		var n uint32
		if n, err = dev.EdgeCountTarget(); err == nil {
			fmt.Println(n)
		}
	case "set-edge-count-target":
		err = dev.SetEdgeCountTarget(uint32(parseInt(arg())))
	case "get-armed-mode":
		var m delayunit.ArmedMode
		if m, err = dev.ArmedMode(); err == nil {
			fmt.Println(m)
		}
	case "set-armed-mode":
		m := delayunit.ArmedSingle
		if arg() == "repeat" {
			m = delayunit.ArmedRepeat
		}
		err = dev.SetArmedMode(m)
	case "armed":
		var armed bool
		if armed, err = dev.Armed(); err == nil {
			fmt.Println(armed)
		}
	default:
		glog.Fatalf("Unknown command %q\n%s", cmd, usage)
	}

	if err != nil {
		glog.Fatal(err)
	}
}
