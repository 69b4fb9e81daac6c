// Command chatdemo is a small terminal chat room: a handful of scripted NPCs
// speak on a timer, an idle watcher chimes in once you speak, and your own
// lines go out through a TextInput prompt under a scrollback Textbox. It
// exercises every layer of the stack end to end: agent scheduling, UI
// splitting/widgets, the ANSI iosys backend, the adapter, and the engine
// runner, the way redshell/src/app/chat.rs exercises its own engine.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/garaekz/tuigfx/engine"
	"github.com/garaekz/tuigfx/glyph"
	"github.com/garaekz/tuigfx/internal/share"
	"github.com/garaekz/tuigfx/iosys/ansiterm"
	"github.com/garaekz/tuigfx/logx"
	"github.com/garaekz/tuigfx/terminal"
	"github.com/garaekz/tuigfx/tuigfxcfg"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a tuigfxcfg YAML file")
		mouse      = flag.Bool("mouse", false, "enable SGR mouse reporting")
	)
	flag.Parse()

	if terminal.IsTerminal(os.Stdout) {
		logx.Configure(logx.DefaultOptions())
	} else {
		opts := logx.DefaultOptions()
		opts.Format = share.FormatJSON
		logx.Configure(opts)
	}
	log := logx.GetLogger()

	cfg := tuigfxcfg.DefaultConfig()
	if *configPath != "" {
		loaded, err := tuigfxcfg.Load(*configPath)
		if err != nil {
			log.Error("chatdemo: loading config: %v", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	term, err := ansiterm.New(ansiterm.Options{
		In:    os.Stdin,
		Out:   os.Stdout,
		Mouse: *mouse,
		Log:   log,
	})
	if err != nil {
		log.Error("chatdemo: opening terminal: %v", err)
		os.Exit(1)
	}

	idle, idleHandle := newIdleWatcher()
	game := newChatGame(idleHandle)

	strategy := engine.RunOrig
	switch cfg.Strategy {
	case "single":
		strategy = engine.RunSingle
	case "parallel":
		strategy = engine.RunParallel
	}

	runner := engine.New[chatMsg](game).
		Spawn(newNPC("mara", glyph.BrightCyan, 4*time.Second,
			"hey, welcome in.",
			"we don't get many new faces round here.",
			"say something, don't be shy.")).
		Spawn(newNPC("dock", glyph.BrightYellow, 6*time.Second,
			"mara's all talk, don't mind her.",
			"grab a seat if you can find one.")).
		Spawn(idle).
		InputTick(cfg.InputTick()).
		RenderInterval(cfg.RenderInterval()).
		WithStrategy(strategy).
		WithLogger(log)

	ioRunner := ansiterm.NewRunner(term)
	if err := runner.Run(term, ioRunner); err != nil {
		fmt.Fprintf(os.Stderr, "chatdemo: %v\n", err)
		os.Exit(1)
	}
}
