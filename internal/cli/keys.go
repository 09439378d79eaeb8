package cli

// Command is one user action decoded from terminal input.
type Command int

const (
	CmdNone Command = iota
	CmdForward
	CmdBackward
	CmdToggle
	CmdReset
	CmdRandom
	CmdFaster
	CmdSlower
	CmdQuit
)

func (c Command) String() string {
	switch c {
	case CmdForward:
		return "forward"
	case CmdBackward:
		return "backward"
	case CmdToggle:
		return "toggle"
	case CmdReset:
		return "reset"
	case CmdRandom:
		return "random"
	case CmdFaster:
		return "faster"
	case CmdSlower:
		return "slower"
	case CmdQuit:
		return "quit"
	}
	return "none"
}

// KeyHelp is the one-line key reference printed under the table.
const KeyHelp = "n/→ next  p/← prev  space play/pause  r reset  g random  +/- speed  q quit"

// ParseKeys decodes one complete chunk of raw-mode terminal input. Arrow
// keys arrive as the escape sequences ESC [ C and ESC [ D; unknown bytes
// are ignored.
func ParseKeys(buf []byte) []Command {
	var d KeyDecoder
	return d.Decode(buf)
}

// KeyDecoder decodes a stream of reads, carrying an escape sequence that
// was split across two reads over to the next call.
type KeyDecoder struct {
	pending []byte
}

// Decode returns the commands completed by buf.
func (d *KeyDecoder) Decode(buf []byte) []Command {
	if len(d.pending) > 0 {
		buf = append(d.pending, buf...)
		d.pending = nil
	}

	var cmds []Command
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b == 0x1b {
			switch {
			case i+1 == len(buf), i+2 == len(buf) && buf[i+1] == '[':
				d.pending = append([]byte(nil), buf[i:]...)
				return cmds
			case buf[i+1] == '[':
				switch buf[i+2] {
				case 'C':
					cmds = append(cmds, CmdForward)
				case 'D':
					cmds = append(cmds, CmdBackward)
				}
				i += 2
				continue
			}
		}

		switch b {
		case 'n', 'N', 'l', 'L':
			cmds = append(cmds, CmdForward)
		case 'p', 'P', 'h', 'H':
			cmds = append(cmds, CmdBackward)
		case ' ':
			cmds = append(cmds, CmdToggle)
		case 'r', 'R':
			cmds = append(cmds, CmdReset)
		case 'g', 'G':
			cmds = append(cmds, CmdRandom)
		case '+', '=':
			cmds = append(cmds, CmdFaster)
		case '-', '_':
			cmds = append(cmds, CmdSlower)
		case 'q', 'Q', 0x03, 0x04: // Ctrl-C, Ctrl-D
			cmds = append(cmds, CmdQuit)
		}
	}
	return cmds
}
