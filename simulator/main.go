package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/deskfb/internal/app"
	"github.com/rook-computer/deskfb/internal/graphics"
	"github.com/rook-computer/deskfb/internal/render"
	"github.com/rook-computer/deskfb/internal/sysapi"
	"github.com/rook-computer/deskfb/internal/web"
)

func main() {
	defaults, err := web.DefaultServerConfigFromEnv(":8080")
	if err != nil {
		fmt.Println("server config error:", err)
		os.Exit(2)
	}

	listenAddr := flag.String("listen", defaults.ListenAddr, "http listen address; also configurable via "+web.EnvListenAddr)
	devMode := flag.Bool("dev", defaults.DevMode, "enable dev mode; also configurable via "+web.EnvDevMode)
	width := flag.Int("width", 1280, "simulated horizontal resolution")
	height := flag.Int("height", 800, "simulated vertical resolution")
	stride := flag.Int("stride", 0, "simulated pixels per scan line (0 means width)")
	format := flag.String("format", "bgr", "simulated channel order: rgb | bgr")
	sampling := flag.String("sampling", "compat", "background resampling: compat | nearest")
	verbose := flag.Bool("v", false, "log to stderr")
	flag.Parse()

	var logger app.Logger = app.NoopLogger{}
	if *verbose {
		logger = app.NewFileLogger(os.Stderr)
	}

	pixelFormat, err := render.ParsePixelFormat(*format)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	mode, err := render.ParseSampleMode(*sampling)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	state := graphics.New(logger)
	state.SetSampling(mode)
	control := NewSimControl(state, ScreenSpec{Width: *width, Height: *height, Stride: *stride, Format: pixelFormat})
	if err := control.Reset(); err != nil {
		fmt.Println("graphics init error:", err)
		os.Exit(1)
	}

	mux := web.NewDefaultMux(web.APIV1Config{Deps: web.APIV1Deps{
		Calls:   sysapi.New(state),
		Desktop: state,
		Screen:  web.CaptureFunc(state.Snapshot),
		Logger:  logger,
	}})
	registerSimEndpoints(mux, control)

	server := web.NewHTTPServer(web.ServerConfig{ListenAddr: *listenAddr, DevMode: *devMode})
	server.Handler = mux
	server.Logger = logger
	if err := server.Start(processCtx); err != nil {
		fmt.Println("server start error:", err)
		os.Exit(1)
	}

	fmt.Println("deskfb simulator listening on", server.Addr)
	fmt.Printf("Screen: %dx%d %s\n", *width, *height, pixelFormat)
	fmt.Println("API: http://" + displayAddr(server.Addr) + "/api/v1/")

	<-processCtx.Done()
	_ = server.Stop()
}

func displayAddr(addr string) string {
	// Best-effort for display; don't attempt full URL parsing here.
	if len(addr) > 0 && addr[0] == ':' {
		return "127.0.0.1" + addr
	}
	if len(addr) > 5 && addr[:5] == "[::]:" {
		return "127.0.0.1" + addr[4:]
	}
	return addr
}
