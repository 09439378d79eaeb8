package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/aretw0/lcsviz"
	"github.com/aretw0/lcsviz/internal/presentation/tui"
	"github.com/aretw0/lcsviz/pkg/domain"
	"github.com/aretw0/lcsviz/pkg/ports"
	"github.com/muesli/termenv"
)

// Loop is the interactive terminal session: it decodes keys from In,
// drives the Visualizer and redraws Out after every change.
type Loop struct {
	Viz      *lcsviz.Visualizer
	Renderer *tui.Renderer
	In       io.Reader
	Out      io.Writer

	// Frames, when set, triggers redraws for auto-play ticks.
	Frames ports.FrameSource
	// Explanation is appended under the table, already rendered.
	Explanation string
	// Raw translates "\n" to "\r\n" for terminals in raw mode.
	Raw    bool
	Rand   *rand.Rand
	Logger *slog.Logger
}

// Run blocks until the user quits, In is exhausted or ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	if l.Logger == nil {
		l.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var frames <-chan domain.Frame
	if l.Frames != nil {
		ch, release, err := l.Frames.Subscribe(ctx)
		if err != nil {
			return err
		}
		defer release()
		frames = ch
	}

	cmds := make(chan []Command)
	readErr := make(chan error, 1)
	go l.readKeys(ctx, cmds, readErr)

	l.draw(l.Viz.Frame())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			return err
		case f, ok := <-frames:
			if !ok {
				frames = nil
				continue
			}
			l.draw(f)
		case batch := <-cmds:
			for _, c := range batch {
				if c == CmdQuit {
					l.Logger.Debug("Quit requested")
					l.draw(l.Viz.Frame())
					return nil
				}
				l.apply(ctx, c)
			}
			l.draw(l.Viz.Frame())
		}
	}
}

func (l *Loop) readKeys(ctx context.Context, cmds chan<- []Command, readErr chan<- error) {
	buf := make([]byte, 64)
	var keys KeyDecoder
	for {
		n, err := l.In.Read(buf)
		if n > 0 {
			if batch := keys.Decode(buf[:n]); len(batch) > 0 {
				select {
				case cmds <- batch:
				case <-ctx.Done():
					return
				}
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = nil
			}
			readErr <- err
			return
		}
	}
}

func (l *Loop) apply(ctx context.Context, c Command) {
	l.Logger.Debug("Key", "command", c)
	switch c {
	case CmdForward:
		l.Viz.StepForward(ctx)
	case CmdBackward:
		l.Viz.StepBackward(ctx)
	case CmdToggle:
		l.Viz.TogglePlay(ctx)
	case CmdReset:
		l.Viz.Reset(ctx)
	case CmdRandom:
		l.Viz.SetSequences(ctx,
			lcsviz.RandomSequence(l.Rand, domain.DefaultRandomLength),
			lcsviz.RandomSequence(l.Rand, domain.DefaultRandomLength))
	case CmdFaster:
		l.Viz.SetDelay(ctx, l.Viz.Delay()-domain.DelayStep)
	case CmdSlower:
		l.Viz.SetDelay(ctx, l.Viz.Delay()+domain.DelayStep)
	}
}

func (l *Loop) draw(f domain.Frame) {
	out := termenv.NewOutput(l.Out, termenv.WithProfile(l.Renderer.Profile))
	out.ClearScreen()

	var sb strings.Builder
	sb.WriteString(l.Renderer.Frame(f))
	sb.WriteString("\n")
	sb.WriteString(KeyHelp)
	sb.WriteString("\n")
	if l.Explanation != "" {
		sb.WriteString(l.Explanation)
	}

	text := sb.String()
	if l.Raw {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}
	_, _ = io.WriteString(out, text)
}
