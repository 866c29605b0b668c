// Package version resolves the version and commit of a binary in this
// module.
//
// Release archives carry the version directly: the version/ package's source
// is marked with the `export-subst` git attribute, so `git archive` replaces
// its $Format$ placeholders with the tag and commit hash. Builds from a
// plain checkout fall back to the hardcoded release tag plus whatever commit
// metadata `go build` embedded.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
)

const repoURL = "https://github.com/wasmlab/audiotag"

// VersionInfo describes one build of a binary in this module.
type VersionInfo struct {
	// Version is the release tag, suffixed with "-dirty" when the build had
	// uncommitted changes.
	Version string

	// Commit is the full hash of the commit the binary was built from, when
	// known.
	Commit string
}

// AppVersion resolves version information. The `git archive` substitutions
// passed in gitDescribe and gitHash win when present; otherwise tag is the
// version of record and the commit comes from the build metadata.
//
// A build from a plain checkout sees the literal placeholders, recognizable
// by their leading "$".
func AppVersion(tag, gitDescribe, gitHash string) *VersionInfo {
	if !strings.HasPrefix(gitDescribe, "$") && !strings.HasPrefix(gitHash, "$") {
		return &VersionInfo{Version: gitDescribe, Commit: gitHash}
	}
	v := &VersionInfo{Version: tag}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return v
	}
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			v.Commit = setting.Value
		case "vcs.modified":
			modified, _ = strconv.ParseBool(setting.Value)
		}
	}
	if modified && v.Commit != "" {
		v.Version += "-dirty"
	}
	return v
}

// String returns the bare version, e.g. for a -V flag.
func (v *VersionInfo) String() string {
	return v.Version
}

// Print writes a verbose version report to stdout.
func (v *VersionInfo) Print() {
	fmt.Println("audiotag version:", v.Version)
	if v.Commit != "" {
		fmt.Printf("  commit: %s/tree/%s\n", repoURL, v.Commit)
	}
	fmt.Printf("  go: %s (%s/%s)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
