package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/deskfb/internal/app"
	"github.com/rook-computer/deskfb/internal/render"
	"github.com/rook-computer/deskfb/internal/system"
	"github.com/rook-computer/deskfb/internal/web"
)

func main() {
	serverDefaults, err := web.DefaultServerConfigFromEnv("127.0.0.1:7410")
	if err != nil {
		fmt.Println("server config error:", err)
		os.Exit(2)
	}

	fbPath := flag.String("fb", envOr("DESKFB_DEVICE", "/dev/fb0"), "frame buffer device; also configurable via DESKFB_DEVICE")
	listenAddr := flag.String("listen", serverDefaults.ListenAddr, "API listen address; also configurable via "+web.EnvListenAddr)
	devMode := flag.Bool("dev", serverDefaults.DevMode, "enable permissive CORS; also configurable via "+web.EnvDevMode)
	debug := flag.Bool("debug", false, "enable debug logging to ./deskfb-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via DESKFB_STDIO_LOG")
	sampling := flag.String("sampling", envOr("DESKFB_SAMPLING", "compat"), "background resampling: compat | nearest")
	exitKey := flag.Uint("exit-key", uint(system.KeyF4), "evdev key code that stops the daemon (0 disables)")
	noConsole := flag.Bool("no-console", false, "leave the VT in text mode")
	flag.Parse()

	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("DESKFB_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./deskfb-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	mode, err := render.ParseSampleMode(*sampling)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	if *exitKey > 0xffff {
		fmt.Println("exit-key out of range:", *exitKey)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.NewHTTPServer(web.ServerConfig{ListenAddr: *listenAddr, DevMode: *devMode})
	a := app.New(server, logger)
	a.FBPath = *fbPath
	a.Sampling = mode
	a.ExitKey = uint16(*exitKey)
	a.Console = !*noConsole

	if err := a.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		// Includes an unsupported pixel format: no writer can be built, so
		// there is nothing to fall back to.
		fmt.Println("deskfb:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
