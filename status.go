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

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// StatusSize is the byte length of the GET_STATUS response.
const StatusSize = 26

// Status is the fixed-layout snapshot returned by GET_STATUS.
// Field order matches the wire layout, so don't change this.
type Status struct {
	TriggerCount uint16
	CoarseDelay  uint32
	FineOffset   int32
	OutputWidth  uint32
	FineWidth    int32
	Armed        uint8
	TriggerMode  TriggerMode
	ArmedMode    ArmedMode
	CounterMode  CounterMode
	Locked       uint8
	PhaseReady   uint8
	Edge         EdgeType
	Reserved     uint8
}

// MarshalBinary packs the snapshot in wire order, little-endian.
func (s *Status) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, s); err != nil {
		return nil, fmt.Errorf("binary.Write failed: %v", err)
	}
	if buf.Len() != StatusSize {
		return nil, fmt.Errorf("Unexpected status size %v", buf.Len())
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary unpacks a wire-order snapshot.
func (s *Status) UnmarshalBinary(data []byte) error {
	if len(data) != StatusSize {
		return fmt.Errorf("Unexpected status size %v", len(data))
	}
	r := bytes.NewReader(data)
	if err := binary.Read(r, binary.LittleEndian, s); err != nil {
		return fmt.Errorf("binary.Read failed: %v", err)
	}
	return nil
}
