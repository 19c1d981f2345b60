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

// Wire-level command codes and register value types shared by the device
// engine and the host client. All multi-byte fields are little-endian.
package delayunit

//go:generate stringer -type=Command,EdgeType,TriggerMode,CounterMode,ArmedMode -output=commands_string.go
type Command uint8

const (
	CmdSetCoarse           Command = 0x01
	CmdGetCoarse           Command = 0x02
	CmdSetEdge             Command = 0x03
	CmdGetEdge             Command = 0x04
	CmdGetStatus           Command = 0x05
	CmdResetCount          Command = 0x06
	CmdSoftTrigger         Command = 0x07
	CmdSetOutputWidth      Command = 0x08
	CmdGetOutputWidth      Command = 0x09
	CmdSetTriggerMode      Command = 0x0A
	CmdGetTriggerMode      Command = 0x0B
	CmdSetSoftTriggerWidth Command = 0x0C
	CmdGetSoftTriggerWidth Command = 0x0D
	CmdSetCounterMode      Command = 0x0E
	CmdGetCounterMode      Command = 0x0F
	CmdSetEdgeCountTarget  Command = 0x10
	CmdGetEdgeCountTarget  Command = 0x11
	CmdResetEdgeCount      Command = 0x12
	CmdArm                 Command = 0x13
	CmdDisarm              Command = 0x14
	CmdSetArmedMode        Command = 0x15
	CmdGetArmedMode        Command = 0x16
	CmdGetArmed            Command = 0x17
	CmdSetFineOffset       Command = 0x18
	CmdGetFineOffset       Command = 0x19
	CmdSetFineWidth        Command = 0x1A
	CmdGetFineWidth        Command = 0x1B
)

type EdgeType uint8

const (
	EdgeNone    EdgeType = 0x00
	EdgeRising  EdgeType = 0x01
	EdgeFalling EdgeType = 0x02
	EdgeBoth    EdgeType = 0x03
)

type TriggerMode uint8

const (
	TriggerExternal TriggerMode = 0x00
	TriggerInternal TriggerMode = 0x01
)

type CounterMode uint8

const (
	CounterDisabled CounterMode = 0x00
	CounterEnabled  CounterMode = 0x01
)

type ArmedMode uint8

const (
	ArmedSingle ArmedMode = 0x00
	ArmedRepeat ArmedMode = 0x01
)

// Power-on defaults. The engine resets to these values; the board applies
// the same set on FPGA configuration.
const (
	DefaultCoarseDelay      uint32 = 0
	DefaultOutputWidth      uint32 = 1
	DefaultSoftTriggerWidth uint32 = 10
	DefaultEdgeCountTarget  uint32 = 1
)

const DefaultEdgeType = EdgeRising
