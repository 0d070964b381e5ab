package ezo

import (
	"testing"
	"time"

	"github.com/moffa90/go-ezo/protocol"
)

func TestCommandOptions(t *testing.T) {
	tests := []struct {
		name         string
		cmd          Command
		wantCommand  string
		wantDelay    time.Duration
		wantResponse protocol.CommandResponse
		wantNoReply  bool
	}{
		{
			name:        "baud",
			cmd:         Baud(Bps9600),
			wantCommand: "Baud,9600",
			wantNoReply: true,
		},
		{
			name:         "calibrate at temperature",
			cmd:          CalibrateAt(100.0),
			wantCommand:  "Cal,100.00",
			wantDelay:    600 * time.Millisecond,
			wantResponse: protocol.Ack,
		},
		{
			name:         "calibration clear",
			cmd:          CalibrationClear(),
			wantCommand:  "Cal,clear",
			wantDelay:    300 * time.Millisecond,
			wantResponse: protocol.Ack,
		},
		{
			name:         "calibration state",
			cmd:          CalibrationState(),
			wantCommand:  "Cal,?",
			wantDelay:    300 * time.Millisecond,
			wantResponse: protocol.CalibrationState,
		},
		{
			name:         "datalogger period",
			cmd:          DataloggerPeriod(320),
			wantCommand:  "D,320",
			wantDelay:    300 * time.Millisecond,
			wantResponse: protocol.Ack,
		},
		{
			name:         "datalogger disable",
			cmd:          DataloggerDisable(),
			wantCommand:  "D,0",
			wantDelay:    300 * time.Millisecond,
			wantResponse: protocol.Ack,
		},
		{
			name:         "datalogger interval",
			cmd:          DataloggerInterval(),
			wantCommand:  "D,?",
			wantDelay:    300 * time.Millisecond,
			wantResponse: protocol.DataloggerInterval,
		},
		{
			name:         "device information",
			cmd:          DeviceInformation(),
			wantCommand:  "I",
			wantDelay:    300 * time.Millisecond,
			wantResponse: protocol.DeviceInformation,
		},
		{
			name:         "export",
			cmd:          Export(),
			wantCommand:  "Export",
			wantDelay:    300 * time.Millisecond,
			wantResponse: protocol.Export,
		},
		{
			name:         "export info",
			cmd:          ExportInfo(),
			wantCommand:  "Export,?",
			wantDelay:    300 * time.Millisecond,
			wantResponse: protocol.ExportInfo,
		},
		{
			name:        "factory reset",
			cmd:         Factory(),
			wantCommand: "Factory",
			wantNoReply: true,
		},
		{
			name:         "find",
			cmd:          Find(),
			wantCommand:  "Find",
			wantDelay:    300 * time.Millisecond,
			wantResponse: protocol.Ack,
		},
		{
			name:         "import",
			cmd:          Import("59 6F 75 20"),
			wantCommand:  "Import,59 6F 75 20",
			wantDelay:    300 * time.Millisecond,
			wantResponse: protocol.Ack,
		},
		{
			name:         "led on",
			cmd:          LedOn(),
			wantCommand:  "L,1",
			wantDelay:    300 * time.Millisecond,
			wantResponse: protocol.Ack,
		},
		{
			name:         "led off",
			cmd:          LedOff(),
			wantCommand:  "L,0",
			wantDelay:    300 * time.Millisecond,
			wantResponse: protocol.Ack,
		},
		{
			name:         "led state",
			cmd:          LedState(),
			wantCommand:  "L,?",
			wantDelay:    300 * time.Millisecond,
			wantResponse: protocol.LedState,
		},
		{
			name:         "memory clear",
			cmd:          MemoryClear(),
			wantCommand:  "M,clear",
			wantDelay:    300 * time.Millisecond,
			wantResponse: protocol.Ack,
		},
		{
			name:         "memory recall",
			cmd:          MemoryRecall(),
			wantCommand:  "M",
			wantDelay:    300 * time.Millisecond,
			wantResponse: protocol.MemoryRecall,
		},
		{
			name:         "memory recall last",
			cmd:          MemoryRecallLast(),
			wantCommand:  "M,?",
			wantDelay:    300 * time.Millisecond,
			wantResponse: protocol.MemoryRecallLastLocation,
		},
		{
			name:         "protocol lock enable",
			cmd:          ProtocolLockEnable(),
			wantCommand:  "Plock,1",
			wantDelay:    300 * time.Millisecond,
			wantResponse: protocol.Ack,
		},
		{
			name:         "protocol lock state",
			cmd:          ProtocolLockState(),
			wantCommand:  "Plock,?",
			wantDelay:    300 * time.Millisecond,
			wantResponse: protocol.ProtocolLockState,
		},
		{
			name:         "take reading",
			cmd:          TakeReading(),
			wantCommand:  "R",
			wantDelay:    600 * time.Millisecond,
			wantResponse: protocol.Reading,
		},
		{
			name:         "scale celsius",
			cmd:          ScaleCelsius(),
			wantCommand:  "S,c",
			wantDelay:    300 * time.Millisecond,
			wantResponse: protocol.Ack,
		},
		{
			name:         "scale state",
			cmd:          ScaleState(),
			wantCommand:  "S,?",
			wantDelay:    300 * time.Millisecond,
			wantResponse: protocol.ScaleState,
		},
		{
			name:        "set address",
			cmd:         SetAddress(99),
			wantCommand: "I2C,99",
			wantNoReply: true,
		},
		{
			name:        "sleep",
			cmd:         Sleep(),
			wantCommand: "Sleep",
			wantNoReply: true,
		},
		{
			name:         "status",
			cmd:          Status(),
			wantCommand:  "Status",
			wantDelay:    300 * time.Millisecond,
			wantResponse: protocol.Status,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.cmd.Options()

			if got := string(opts.Bytes()); got != tt.wantCommand {
				t.Errorf("command = %q, want %q", got, tt.wantCommand)
			}

			response, hasResponse := opts.Response()
			if tt.wantNoReply {
				if hasResponse {
					t.Errorf("expected fire-and-forget, got response shape %v", response)
				}
				return
			}
			if !hasResponse || response != tt.wantResponse {
				t.Errorf("response = (%v, %v), want %v", response, hasResponse, tt.wantResponse)
			}

			delay, hasDelay := opts.Delay()
			if !hasDelay || delay != tt.wantDelay {
				t.Errorf("delay = (%v, %v), want %v", delay, hasDelay, tt.wantDelay)
			}
		})
	}
}
