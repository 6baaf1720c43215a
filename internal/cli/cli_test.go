package cli

import (
	"os"
	"testing"

	"github.com/retroenv/chippy/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseEmulatorFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "test.ch8"},
			want: options.Program{Input: "test.ch8", Clock: options.DefaultClock, Scale: options.DefaultScale},
		},
		{
			name: "clock and scale",
			args: []string{"prog", "-clock", "500", "-scale", "4", "test.ch8"},
			want: options.Program{Input: "test.ch8", Clock: 500, Scale: 4},
		},
		{
			name: "debug flag",
			args: []string{"prog", "-debug", "test.ch8"},
			want: options.Program{Input: "test.ch8", Clock: options.DefaultClock, Scale: options.DefaultScale, Debug: true},
		},
		{
			name: "quiet flag",
			args: []string{"prog", "-q", "test.ch8"},
			want: options.Program{Input: "test.ch8", Clock: options.DefaultClock, Scale: options.DefaultScale, Quiet: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseEmulatorFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEmulatorFlagsErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		usage bool
	}{
		{"missing rom argument", []string{"prog"}, true},
		{"flag after rom argument", []string{"prog", "test.ch8", "-debug"}, false},
		{"invalid clock", []string{"prog", "-clock", "0", "test.ch8"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, err := ParseEmulatorFlags()
			assert.Error(t, err)
		})
	}
}

func TestParseDisasmFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Disassembler
	}{
		{
			name: "default flags",
			args: []string{"prog", "test.ch8"},
			want: options.Disassembler{Input: "test.ch8", HexComments: true, OffsetComments: true},
		},
		{
			name: "nohexcomments flag",
			args: []string{"prog", "-nohexcomments", "test.ch8"},
			want: options.Disassembler{Input: "test.ch8", OffsetComments: true},
		},
		{
			name: "nooffsets flag",
			args: []string{"prog", "-nooffsets", "test.ch8"},
			want: options.Disassembler{Input: "test.ch8", HexComments: true},
		},
		{
			name: "output file",
			args: []string{"prog", "-o", "test.asm", "test.ch8"},
			want: options.Disassembler{Input: "test.ch8", Output: "test.asm", HexComments: true, OffsetComments: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseDisasmFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
