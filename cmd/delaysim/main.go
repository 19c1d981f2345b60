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

// Runs the simulated delay unit behind a TCP listener speaking the board's
// byte protocol. Useful for exercising host tooling without hardware.
package main

import (
	"flag"
	"fmt"
	"net"
	"path"
	"time"

	delayunit "github.com/HWS-XMS/DelayUnit"

	"github.com/golang/glog"
)

var (
	listenFlag = flag.String("listen", ":5331", "TCP listen address")
	recordFlag = flag.String("record", "", "Directory for pulse recordings (empty disables)")
	periodFlag = flag.Int("pulse_period", 0,
		"Drive the external trigger line high every N ticks (0 disables)")
	widthFlag = flag.Int("pulse_width", 4, "External trigger pulse width in ticks")
	batchFlag = flag.Int("batch", 20000, "Engine ticks per scheduling slice")
)

// lineSource replays a periodic external trigger pattern onto the line.
type lineSource struct {
	period, width, phase int
}

func (l *lineSource) next() bool {
	if l.period <= 0 {
		return false
	}
	l.phase++
	if l.phase >= l.period {
		l.phase = 0
	}
	return l.phase < l.width
}

func handle(conn net.Conn) {
	defer conn.Close()
	glog.Infof("Client connected: %v", conn.RemoteAddr())

	eng := delayunit.NewEngine()
	rec := delayunit.NewRecorder()
	line := &lineSource{period: *periodFlag, width: *widthFlag}

	buf := make([]byte, 64)
	for {
		conn.SetReadDeadline(time.Now().Add(time.Millisecond))
		n, err := conn.Read(buf)
		if n > 0 {
			eng.PushRx(buf[:n]...)
		}
		if err != nil {
			if nerr, ok := err.(net.Error); ok && nerr.Timeout() {
				err = nil
			} else {
				glog.Infof("Client gone: %v", err)
				break
			}
		}

		for i := 0; i < *batchFlag; i++ {
			eng.Tick(line.next())
			rec.Observe(eng)
		}

		if tx := eng.PopTx(); len(tx) > 0 {
			if _, err := conn.Write(tx); err != nil {
				glog.Warningf("Write failed: %v", err)
				break
			}
		}
	}

	if *recordFlag == "" {
		return
	}
	recording := rec.Recording()
	if len(recording) == 0 {
		return
	}
	name := path.Join(*recordFlag,
		fmt.Sprintf("recording-%d.json.gz", time.Now().Unix()))
	if err := recording.Save(name); err != nil {
		glog.Errorf("Saving recording failed: %v", err)
		return
	}
	glog.Infof("Saved %d pulses to %v", len(recording), name)
}

func main() {
	flag.Parse()
	defer glog.Flush()

	ln, err := net.Listen("tcp", *listenFlag)
	if err != nil {
		glog.Fatal(err)
	}
	glog.Infof("Simulated delay unit listening on %v", *listenFlag)

	for {
		conn, err := ln.Accept()
		if err != nil {
			glog.Fatal(err)
		}
		handle(conn)
	}
}
