package devserver

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderPaths(t *testing.T) {
	b := NewBuilder("/repo", "./cmd/demo", "/tmp/out")
	assert.Equal(t, "/tmp/out", b.OutDir())
	assert.Equal(t, "/tmp/out/"+CompiledWasmName, b.WasmPath())
	assert.Equal(t, "/tmp/out/wasm_exec.js", b.WasmExecPath())
}

func TestBuildErrorColorized(t *testing.T) {
	// Disable colors so the assertions see the plain text.
	color.NoColor = true

	buildErr := &BuildError{
		Output: "# github.com/wasmlab/audiotag/cmd/demo\n" +
			"cmd/demo/main.go:17:2: undefined: frobnicate\n" +
			"cmd/demo/main.go:21:10: cannot use x (variable of type int) as string value\n",
		Err: errors.New(`failed to run "go build"`),
	}

	got := buildErr.Colorized()
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 5)
	// Non-error lines pass through unchanged.
	assert.Equal(t, "# github.com/wasmlab/audiotag/cmd/demo", lines[0])
	// Error lines are re-formatted as location + message.
	assert.Equal(t, "\tFile \"cmd/demo/main.go\", line 17", lines[1])
	assert.Equal(t, "\tundefined: frobnicate", lines[2])
	assert.Equal(t, "\tFile \"cmd/demo/main.go\", line 21", lines[3])

	assert.Contains(t, buildErr.Error(), "undefined: frobnicate")
	assert.EqualError(t, errors.Unwrap(buildErr), `failed to run "go build"`)
}

func TestColorizeErrorLinePassthrough(t *testing.T) {
	color.NoColor = true
	for _, line := range []string{
		"",
		"exit status 1",
		"go: downloading github.com/pkg/errors v0.9.1",
	} {
		assert.Equal(t, line, colorizeErrorLine(line))
	}
	// A line without a column number still matches.
	assert.Equal(t, "\tFile \"main.go\", line 3\n\tsyntax error",
		colorizeErrorLine("main.go:3: syntax error"))
}

func TestGoRoot(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that runs the go tool")
	}
	goRoot, err := GoRoot()
	require.NoError(t, err)
	assert.NotEmpty(t, goRoot)
	info, err := os.Stat(goRoot)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Memoized on repeat.
	again, err := GoRoot()
	require.NoError(t, err)
	assert.Equal(t, goRoot, again)
}
