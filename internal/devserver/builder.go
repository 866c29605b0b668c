package devserver

import (
	"fmt"
	"os"
	"os/exec"
	"path"
	"regexp"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	klog "k8s.io/klog/v2"
)

// CompiledWasmName is the file name of the compiled demo binary, also the URL
// path it is served under.
const CompiledWasmName = "audiotag_demo.wasm"

// Builder compiles the demo program to WebAssembly and stages the support
// files next to it.
type Builder struct {
	moduleDir string // Module root, where `go build` runs.
	demoPkg   string // Package pattern to compile, e.g. "./cmd/demo".
	outDir    string // Where the .wasm binary and wasm_exec.js land.
}

// NewBuilder returns a Builder that compiles demoPkg (relative to moduleDir)
// into outDir.
func NewBuilder(moduleDir, demoPkg, outDir string) *Builder {
	return &Builder{moduleDir: moduleDir, demoPkg: demoPkg, outDir: outDir}
}

// OutDir returns the staging directory with the compiled files.
func (b *Builder) OutDir() string { return b.outDir }

// WasmPath returns the path of the compiled WASM binary.
func (b *Builder) WasmPath() string { return path.Join(b.outDir, CompiledWasmName) }

// WasmExecPath returns the path of the staged wasm_exec.js.
func (b *Builder) WasmExecPath() string { return path.Join(b.outDir, "wasm_exec.js") }

// Build compiles the demo package for js/wasm. When the compiler rejects the
// program it returns a *BuildError carrying the full compiler output.
func (b *Builder) Build() error {
	cmd := exec.Command("go", "build", "-o", b.WasmPath(), b.demoPkg)
	cmd.Dir = b.moduleDir
	// Set GOARCH and GOOS in cmd.Env.
	cmd.Env = append(
		slices.DeleteFunc(cmd.Environ(), func(s string) bool {
			return strings.HasPrefix(s, "GOARCH=") ||
				strings.HasPrefix(s, "GOOS=")
		}),
		"GOARCH=wasm",
		"GOOS=js",
	)

	klog.V(2).Infof("Executing %s", cmd)
	output, err := cmd.CombinedOutput()
	if err != nil {
		klog.V(2).Infof("Failed %q:\n%s\n", cmd, output)
		return &BuildError{Output: string(output), Err: errors.Wrapf(err, "failed to run %q", cmd)}
	}
	return nil
}

// InstallWasmExec copies the Go runtime's `wasm_exec.js` support file from
// GOROOT into the output directory.
func (b *Builder) InstallWasmExec() error {
	goRoot, err := GoRoot()
	if err != nil {
		return errors.WithMessage(err, "failed to find GOROOT, needed to copy wasm_exec.js for WASM programs")
	}
	wasmExecSrc := path.Join(goRoot, "misc", "wasm", "wasm_exec.js")
	if _, statErr := os.Stat(wasmExecSrc); statErr != nil {
		// Go 1.24 moved the support file.
		wasmExecSrc = path.Join(goRoot, "lib", "wasm", "wasm_exec.js")
	}

	var data []byte
	data, err = os.ReadFile(wasmExecSrc)
	if err != nil {
		return errors.Wrapf(err, "failed to read wasm_exec.js from GOROOT %q", goRoot)
	}
	err = os.WriteFile(b.WasmExecPath(), data, 0775)
	if err != nil {
		return errors.Wrapf(err, "failed to write 'wasm_exec.js' to %q", b.WasmExecPath())
	}
	return nil
}

var goRoot string

// GoRoot returns the Go compiler's GOROOT, by running `go env GOROOT`.
// Memoized after the first successful call.
func GoRoot() (string, error) {
	if goRoot != "" {
		return goRoot, nil
	}

	cmd := exec.Command("go", "env", "GOROOT")
	klog.V(2).Infof("Executing %q", cmd)
	cmd.Stderr = os.Stderr
	output, err := cmd.Output()
	if err != nil {
		return "", errors.Wrapf(err, "failed to find GOROOT")
	}
	goRoot = string(output)
	goRoot = strings.TrimSuffix(goRoot, "\n")
	return goRoot, nil
}

// BuildError is returned by Build when the compilation fails. It keeps the
// raw compiler output so callers can render it to a terminal or push it to
// the browser.
type BuildError struct {
	Output string
	Err    error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%v:\n%s", e.Err, e.Output)
}

func (e *BuildError) Unwrap() error { return e.Err }

// `(file.go:line:col: )(message)` prefix of the compiler's error lines.
var reFileLinePrefix = regexp.MustCompile(`^(.+\.go):(\d+)(?::(\d+))?: (.+)$`)

// Colorized returns the compiler output with file locations and messages
// colored for terminal display. Lines that are not `file:line: message`
// errors pass through unchanged.
func (e *BuildError) Colorized() string {
	lines := strings.Split(strings.TrimSuffix(e.Output, "\n"), "\n")
	for ii, lineStr := range lines {
		lines[ii] = colorizeErrorLine(lineStr)
	}
	return strings.Join(lines, "\n")
}

func colorizeErrorLine(lineStr string) (message string) {
	matches := reFileLinePrefix.FindStringSubmatch(lineStr)
	if len(matches) != 5 {
		return lineStr
	}
	file, line := matches[1], matches[2]
	message += color.New(color.FgBlue).Sprint("\tFile ")
	message += color.New(color.FgGreen).Sprint("\"" + file + "\"")
	message += color.New(color.FgBlue).Sprint(", line ")
	message += color.New(color.FgGreen).Sprint(line)
	message += "\n"
	message += color.New(color.FgRed).Sprint("\t" + matches[4])
	return message
}
