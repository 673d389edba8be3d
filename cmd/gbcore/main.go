package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/thelolagemann/gbcore/internal/gameboy"
	"github.com/thelolagemann/gbcore/pkg/debugger"
	"github.com/thelolagemann/gbcore/pkg/debugger/remote"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

func main() {
	bootROM := flag.String("boot", "", "The boot rom file to load (raw, .gz, .xz, .zip or .7z)")
	run := flag.Bool("run", false, "Run until an instruction fails, instead of starting the debugger")
	listen := flag.String("listen", "", "Serve the debugger over a websocket on the given address")
	verbose := flag.Bool("v", false, "Log every executed instruction and accepted write")
	keepGoing := flag.Bool("keep-going", false, "Report instruction errors in the debugger instead of exiting")
	limit := flag.Int("limit", 0, "The maximum number of instructions to run, 0 for no limit")
	flag.Parse()

	logger := log.New()
	if *verbose {
		logger = log.NewVerbose()
	}

	// the boot rom may also be given as the first argument
	if *bootROM == "" && flag.NArg() > 0 {
		*bootROM = flag.Arg(0)
	}
	if *bootROM == "" {
		logger.Fatal("No boot rom supplied. Please supply one with -boot")
	}

	boot, err := utils.LoadFile(*bootROM)
	if err != nil {
		logger.WithError(err).Fatal("loading boot rom")
	}

	g, err := gameboy.NewGameBoy(boot, gameboy.WithLogger(logger), gameboy.WithStepLimit(*limit))
	if err != nil {
		logger.WithError(err).Fatal("creating gameboy")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *listen != "":
		srv := &http.Server{Addr: *listen, Handler: remote.NewServer(g, logger)}
		go func() {
			<-ctx.Done()
			_ = srv.Shutdown(context.Background())
		}()

		logger.WithField("addr", *listen).Info("serving debugger")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("serving debugger")
		}
	case *run:
		err := g.Run(ctx)
		entry := logger.WithField("state", g.Snapshot().String()).WithField("steps", g.Steps())
		if errors.Is(err, context.Canceled) {
			entry.Info("interrupted")
			return
		}
		stop()
		entry.WithError(err).Fatal("execution stopped")
	default:
		d := debugger.New(g)
		d.In = os.Stdin
		d.Out = os.Stdout
		if !isTerminal(int(os.Stdin.Fd())) {
			d.Prompt = ""
		}
		if *keepGoing {
			d.Policy = debugger.Report
		}
		if err := d.Run(); err != nil {
			stop()
			logger.WithField("state", g.Snapshot().String()).WithError(err).Fatal("debugger stopped")
		}
	}
}
