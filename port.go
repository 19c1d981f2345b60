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

// Serial link to the board.
package delayunit

import (
	"fmt"
	"time"

	"github.com/golang/glog"
	"github.com/tarm/serial"
)

// BoardBaudRate is the fixed UART rate of the delay unit.
const BoardBaudRate = 1000000

var defaultReadTimeout = 750 * time.Millisecond

//go:generate mockgen -destination=mocks/port.go -package=mocks github.com/HWS-XMS/DelayUnit PortInterface
type PortInterface interface {
	// Reads/writes raw command bytes.
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
	Close() error
	// Clears any pending data from the read buffer.
	Flush() error
}

// SerialPort is the real board link over a local serial device.
type SerialPort struct {
	port *serial.Port
}

func OpenSerialPort(name string) (*SerialPort, error) {
	conf := &serial.Config{
		Name:        name,
		Baud:        BoardBaudRate,
		ReadTimeout: defaultReadTimeout,
	}
	glog.V(1).Infof("[serial-open]: %v @ %v baud", name, conf.Baud)
	port, err := serial.OpenPort(conf)
	if err != nil {
		return nil, fmt.Errorf("serial.OpenPort failed: %v", err)
	}
	// Let the USB-serial bridge settle before the first command.
	time.Sleep(100 * time.Millisecond)
	return &SerialPort{port}, nil
}

func (s *SerialPort) Read(p []byte) (int, error) {
	return s.port.Read(p)
}

func (s *SerialPort) Write(p []byte) (int, error) {
	return s.port.Write(p)
}

func (s *SerialPort) Close() error {
	glog.V(1).Infof("[serial-close]")
	return s.port.Close()
}

func (s *SerialPort) Flush() error {
	return s.port.Flush()
}
