// demoserver compiles the audiotag demo program to WebAssembly and serves it
// locally, rebuilding and live-reloading the browser whenever the sources
// change.
//
// Usage:
//
//	go run ./cmd/demoserver --port=8080 --media=./media
//
// Configuration also comes from AUDIOTAG_* environment variables; flags win
// where both are given.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/janpfeifer/must"
	klog "k8s.io/klog/v2"

	"github.com/wasmlab/audiotag/common"
	"github.com/wasmlab/audiotag/internal/devserver"
	"github.com/wasmlab/audiotag/version"
)

var (
	// Extra directories to watch for changes -- can be set multiple times.
	flagWatch = common.ArrayFlag{}

	flagHost = flag.String("host", "", "Host to bind to. Overrides AUDIOTAG_HOST when set.")
	flagPort = flag.Int("port", 0, "Port to serve on. Overrides AUDIOTAG_PORT when set.")
	flagMedia = flag.String("media", "",
		"Directory with the audio files served under /media/. Overrides AUDIOTAG_MEDIA_DIR when set.")

	flagShortVersion = flag.Bool("V", false, "Print version information")
	flagLongVersion  = flag.Bool("version", false, "Print detailed version information")
)

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()

	flag.Var(&flagWatch, "watch",
		"Extra directory to watch for changes, besides the module sources -- can be set multiple times.")
	flag.Parse()

	if len(flag.Args()) > 0 {
		_, _ = fmt.Fprintf(os.Stderr, "No extra arguments are allowed (passed %q). Use --help for more information.\n", flag.Args())
		os.Exit(1)
	}

	// --version or -V
	if printVersion() {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigC
		klog.Infof("Received %s, shutting down", sig)
		cancel()
	}()

	cfg := must.M1(devserver.Load(ctx))
	if *flagHost != "" {
		cfg.Host = *flagHost
	}
	if *flagPort != 0 {
		cfg.Port = *flagPort
	}
	if *flagMedia != "" {
		cfg.MediaDir = *flagMedia
	}
	must.M(cfg.Validate())

	server := must.M1(devserver.New(cfg))
	for _, dir := range flagWatch {
		must.M(server.Watch(dir))
	}

	if err := server.Run(ctx); err != nil {
		klog.Fatalf("demoserver failed: %+v", err)
	}
}

// printVersion returns whether version printing was requested.
func printVersion() bool {
	if *flagShortVersion {
		fmt.Println(version.AppVersion.String())
		return true
	} else if *flagLongVersion {
		version.AppVersion.Print()
		return true
	}
	return false
}
