// Package browsertest holds the integration test that compiles the demo
// program to WASM, serves it with the devserver and drives the resulting
// page in a headless browser.
//
// The test needs the `go` tool in the path and downloads a browser on first
// use (managed by go-rod). Run with `-short` to skip all of it.
package browsertest

import (
	"net"
	"net/http"
	"path"
	"runtime"
	"time"

	"github.com/pkg/errors"
)

// RootDir returns the root directory of this repository, where the module
// and the demo program live.
func RootDir() string {
	_, rootDir, _, _ := runtime.Caller(0)
	rootDir = path.Dir(path.Dir(path.Dir(rootDir)))
	return rootDir
}

// FreePort returns a TCP port currently available on the host -- the demo
// server could bind port 0 itself, but then the URL wouldn't be known in
// advance.
func FreePort() (int, error) {
	l, err := net.Listen("tcp", ":0")
	if err != nil {
		return 0, errors.Wrapf(err, "failed to find a free TCP port")
	}
	port := l.Addr().(*net.TCPAddr).Port
	if err = l.Close(); err != nil {
		return 0, errors.Wrapf(err, "failed to close port %d, temporarily opened to probe availability", port)
	}
	return port, nil
}

// WaitForHTTP polls url until it answers with 200, or gives up after
// timeout. Used to wait for the demo server to come up, initial WASM
// compilation included.
func WaitForHTTP(url string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		resp, err := http.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		if time.Now().After(deadline) {
			return errors.Errorf("server at %q not ready after %s", url, timeout)
		}
		time.Sleep(100 * time.Millisecond)
	}
}
