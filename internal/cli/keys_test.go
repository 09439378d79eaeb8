package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Command
	}{
		{"Letters", "nlph", []Command{CmdForward, CmdForward, CmdBackward, CmdBackward}},
		{"Arrows", "\x1b[C\x1b[D", []Command{CmdForward, CmdBackward}},
		{"Other Escape Ignored", "\x1b[An", []Command{CmdForward}},
		{"Playback", " rg", []Command{CmdToggle, CmdReset, CmdRandom}},
		{"Speed", "+-=", []Command{CmdFaster, CmdSlower, CmdFaster}},
		{"Quit", "q", []Command{CmdQuit}},
		{"Ctrl-C", "\x03", []Command{CmdQuit}},
		{"Unknown", "xyz\r\n", nil},
		{"Truncated Escape", "\x1b[", nil},
		{"Upper Case", "NP", []Command{CmdForward, CmdBackward}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseKeys([]byte(tt.in)))
		})
	}
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "forward", CmdForward.String())
	assert.Equal(t, "quit", CmdQuit.String())
	assert.Equal(t, "none", Command(99).String())
}

func TestKeyDecoder_SplitEscape(t *testing.T) {
	tests := []struct {
		name  string
		reads []string
		want  []Command
	}{
		{"After ESC", []string{"n\x1b", "[C"}, []Command{CmdForward, CmdForward}},
		{"After Bracket", []string{"\x1b[", "Dq"}, []Command{CmdBackward, CmdQuit}},
		{"Three Reads", []string{"\x1b", "[", "C"}, []Command{CmdForward}},
		{"Lone ESC Then Key", []string{"\x1b", "x", "p"}, []Command{CmdBackward}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d KeyDecoder
			var got []Command
			for _, r := range tt.reads {
				got = append(got, d.Decode([]byte(r))...)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
