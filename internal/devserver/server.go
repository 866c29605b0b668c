package devserver

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"os"
	"path"
	"strings"
	"text/template"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	klog "k8s.io/klog/v2"

	"github.com/wasmlab/audiotag"
	"github.com/wasmlab/audiotag/common"
	"github.com/wasmlab/audiotag/internal/util"
)

//go:embed index.html
var indexHTML []byte

var tmplIndexHTML = template.Must(template.New("indexHTML").Parse(
	string(indexHTML)))

// debounceDelay is how long the server waits after the first change
// notification before rebuilding, so an editor writing several files
// triggers one rebuild.
const debounceDelay = 200 * time.Millisecond

// Server ties the pieces together: it serves the demo page, the compiled
// WASM binary and the media files, rebuilds on source changes and notifies
// browsers over SSE.
type Server struct {
	cfg     *Config
	builder *Builder
	watcher *Watcher
	events  *Broadcaster

	// page is the rendered index.html, fixed at construction.
	page []byte

	// sampleTone is the generated fallback for /media/sample.wav.
	sampleTone []byte
	started    time.Time

	// removeDir is removed when Run returns, when the build directory was
	// created here rather than configured.
	removeDir string
}

// New creates a Server from the configuration. The watcher starts listening
// immediately; compilation and serving start with Run.
func New(cfg *Config) (*Server, error) {
	buildDir := cfg.BuildDir
	var removeDir string
	if buildDir == "" {
		var err error
		buildDir, err = os.MkdirTemp("", "audiotag_demoserver_")
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create a build directory")
		}
		removeDir = buildDir
	}

	watcher, err := NewWatcher()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:        cfg,
		builder:    NewBuilder(cfg.ModuleDir, cfg.DemoPkg, buildDir),
		watcher:    watcher,
		events:     NewBroadcaster(),
		sampleTone: sampleWAV(),
		started:    time.Now(),
		removeDir:  removeDir,
	}
	s.page, err = renderPage()
	if err != nil {
		_ = watcher.Close()
		return nil, err
	}
	return s, nil
}

// renderPage executes the index template with the fixed URLs of the served
// files.
func renderPage() ([]byte, error) {
	data := struct {
		Id, WasmExecJsUrl, CompiledWasmUrl string
	}{
		Id:              common.UniqueId(),
		WasmExecJsUrl:   "/wasm_exec.js",
		CompiledWasmUrl: "/" + CompiledWasmName,
	}
	var buf bytes.Buffer
	if err := tmplIndexHTML.Execute(&buf, &data); err != nil {
		return nil, errors.Wrapf(err, "failed to render the demo page")
	}
	return buf.Bytes(), nil
}

// Watch adds an extra directory tree to trigger rebuilds, besides the module
// sources tracked by Run.
func (s *Server) Watch(dirPath string) error {
	return s.watcher.Track(dirPath)
}

// routes returns the HTTP routing for the server.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.Handle("/events", s.events)
	mux.HandleFunc("/wasm_exec.js", s.handleWasmExec)
	mux.HandleFunc("/"+CompiledWasmName, s.handleWasm)
	mux.HandleFunc("/media/sample.wav", s.handleSampleWAV)
	if s.cfg.MediaDir != "" {
		mux.Handle("/media/", http.StripPrefix("/media/",
			http.FileServer(http.Dir(s.cfg.MediaDir))))
	}
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(s.page)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleWasm(w http.ResponseWriter, r *http.Request) {
	// instantiateStreaming requires the right content type.
	w.Header().Set("Content-Type", "application/wasm")
	http.ServeFile(w, r, s.builder.WasmPath())
}

func (s *Server) handleWasmExec(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, s.builder.WasmExecPath())
}

// handleSampleWAV serves sample.wav from the media directory when it exists
// there, and the generated tone otherwise. A real file always wins.
func (s *Server) handleSampleWAV(w http.ResponseWriter, r *http.Request) {
	if s.cfg.MediaDir != "" {
		filePath := path.Join(s.cfg.MediaDir, "sample.wav")
		if _, err := os.Stat(filePath); err == nil {
			http.ServeFile(w, r, filePath)
			return
		}
	}
	// ServeContent gives the element range requests, which it uses to seek.
	w.Header().Set("Content-Type", audiotag.FormatWAV.MIME())
	http.ServeContent(w, r, "sample.wav", s.started, bytes.NewReader(s.sampleTone))
}

// Run compiles the demo, starts serving and rebuilds on source changes,
// until ctx is done or serving fails.
func (s *Server) Run(ctx context.Context) error {
	if s.removeDir != "" {
		defer func() { util.ReportError(os.RemoveAll(s.removeDir)) }()
	}
	defer func() { util.ReportError(s.watcher.Close()) }()

	if err := s.builder.InstallWasmExec(); err != nil {
		return err
	}
	// A broken initial build is not fatal: the server comes up and pushes
	// the compiler output to the browser until the code is fixed.
	s.rebuild()

	if err := s.watcher.Track(s.cfg.ModuleDir); err != nil {
		return err
	}
	s.events.Start()
	defer s.events.Stop()

	httpServer := &http.Server{Addr: s.cfg.Addr(), Handler: s.routes()}
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		klog.Infof("Serving the audiotag demo on http://%s/", s.cfg.Addr())
		err := httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrapf(err, "http server failed")
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		s.watchLoop(gCtx)
		return nil
	})
	return g.Wait()
}

// watchLoop rebuilds whenever the watcher reports changed sources.
func (s *Server) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.watcher.C():
			// Let the editor finish writing its burst of files.
			time.Sleep(debounceDelay)
			var changed []string
			_ = s.watcher.EnumerateUpdatedFiles(func(filePath string) error {
				changed = append(changed, filePath)
				return nil
			})
			klog.V(1).Infof("sources changed (%s), rebuilding", strings.Join(changed, ", "))
			s.rebuild()
		}
	}
}

// rebuild compiles the demo and tells the browsers: reload on success, show
// the compiler output on failure.
func (s *Server) rebuild() {
	err := s.builder.Build()
	if err == nil {
		s.events.Broadcast(ReloadEvent{Type: EventReload})
		return
	}
	var buildErr *BuildError
	if errors.As(err, &buildErr) {
		fmt.Println(buildErr.Colorized())
		s.events.Broadcast(ReloadEvent{Type: EventBuildError, Message: buildErr.Output})
		return
	}
	klog.Errorf("rebuild failed: %+v", err)
}
