package protocol

import (
	"bytes"
	"testing"
	"time"
)

func TestCommandOptionsOrderIndependent(t *testing.T) {
	var a CommandOptions
	forward := a.SetCommand("R").
		SetDelay(600 * time.Millisecond).
		SetResponse(Reading).
		Finish()

	var b CommandOptions
	backward := b.SetResponse(Reading).
		SetDelay(600 * time.Millisecond).
		SetCommand("R").
		Finish()

	if forward != backward {
		t.Errorf("setter order changed the command: %+v != %+v", forward, backward)
	}
}

func TestCommandOptionsDefaults(t *testing.T) {
	var opts CommandOptions
	cmd := opts.SetCommand("Sleep").Finish()

	if got := cmd.Bytes(); !bytes.Equal(got, []byte("Sleep")) {
		t.Errorf("Bytes() = %q, want %q", got, "Sleep")
	}
	if _, ok := cmd.Delay(); ok {
		t.Error("delay should default to none")
	}
	if _, ok := cmd.Response(); ok {
		t.Error("response should default to none")
	}
}

func TestCommandOptionsFinishSnapshot(t *testing.T) {
	var opts CommandOptions
	cmd := opts.SetCommand("Status").
		SetDelay(300 * time.Millisecond).
		SetResponse(Status).
		Finish()

	// Mutating the builder afterwards must not affect the snapshot.
	opts.SetCommand("R").SetDelay(time.Second).SetResponse(Reading)

	if got := string(cmd.Bytes()); got != "Status" {
		t.Errorf("command = %q, want %q", got, "Status")
	}
	delay, ok := cmd.Delay()
	if !ok || delay != 300*time.Millisecond {
		t.Errorf("delay = %v (set=%v), want 300ms", delay, ok)
	}
	response, ok := cmd.Response()
	if !ok || response != Status {
		t.Errorf("response = %v (set=%v), want Status", response, ok)
	}
}

func TestCommandAccessors(t *testing.T) {
	tests := []struct {
		name         string
		cmd          Command
		wantCommand  string
		wantDelay    time.Duration
		wantDelaySet bool
		wantResponse CommandResponse
		wantRespSet  bool
	}{
		{
			name: "full command",
			cmd: func() Command {
				var o CommandOptions
				return o.SetCommand("Cal,?").
					SetDelay(300 * time.Millisecond).
					SetResponse(CalibrationState).
					Finish()
			}(),
			wantCommand:  "Cal,?",
			wantDelay:    300 * time.Millisecond,
			wantDelaySet: true,
			wantResponse: CalibrationState,
			wantRespSet:  true,
		},
		{
			name: "fire and forget",
			cmd: func() Command {
				var o CommandOptions
				return o.SetCommand("Factory").Finish()
			}(),
			wantCommand: "Factory",
		},
		{
			name: "delay without response",
			cmd: func() Command {
				var o CommandOptions
				return o.SetCommand("Baud,9600").SetDelay(100 * time.Millisecond).Finish()
			}(),
			wantCommand:  "Baud,9600",
			wantDelay:    100 * time.Millisecond,
			wantDelaySet: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(tt.cmd.Bytes()); got != tt.wantCommand {
				t.Errorf("Bytes() = %q, want %q", got, tt.wantCommand)
			}
			delay, ok := tt.cmd.Delay()
			if ok != tt.wantDelaySet || delay != tt.wantDelay {
				t.Errorf("Delay() = (%v, %v), want (%v, %v)", delay, ok, tt.wantDelay, tt.wantDelaySet)
			}
			response, ok := tt.cmd.Response()
			if ok != tt.wantRespSet || (ok && response != tt.wantResponse) {
				t.Errorf("Response() = (%v, %v), want (%v, %v)", response, ok, tt.wantResponse, tt.wantRespSet)
			}
		})
	}
}
