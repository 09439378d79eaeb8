package cli

import (
	"context"
	"io"
	"math/rand/v2"
	"os"

	"github.com/aretw0/lcsviz/internal/config"
	"github.com/aretw0/lcsviz/internal/presentation/tui"
	"github.com/aretw0/lcsviz/pkg/adapters/memory"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// PlayOptions configures the interactive `play` command.
type PlayOptions struct {
	Config  config.Config
	Explain bool
	In      *os.File
	Out     io.Writer
}

// RunPlay runs the interactive visualizer until the user quits or a signal
// arrives. Stdin is switched to raw mode when it is a terminal.
func RunPlay(opts PlayOptions) error {
	logger := CreateLogger(opts.Config.Debug)
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	frames := memory.NewBroadcaster()
	session, err := NewSession(opts.Config, logger, DebugHooks(logger, opts.Config.Debug), frames)
	if err != nil {
		return err
	}
	defer session.Close()

	profile := termenv.NewOutput(opts.Out).Profile
	loop := &Loop{
		Viz:      session.Viz,
		Renderer: tui.NewRenderer(profile),
		In:       opts.In,
		Out:      opts.Out,
		Frames:   frames,
		Rand:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		Logger:   logger,
	}

	if opts.Explain {
		md, err := tui.NewMarkdownRenderer(profile, 80)(tui.Explanation)
		if err != nil {
			logger.Warn("Explanation render failed", "err", err)
		} else {
			loop.Explanation = md
		}
	}

	fd := int(opts.In.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return err
		}
		defer term.Restore(fd, state)
		loop.Raw = true
	}

	err = loop.Run(sigCtx)
	if sig := sigCtx.Signal(); sig != nil {
		logger.Debug("Interrupted", "signal", sig)
	}
	printSystemMessage(opts.Out, "Bye.")
	return HandleExecutionError(err)
}
