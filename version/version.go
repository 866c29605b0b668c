// Package version exposes the module's release version.
package version

import "github.com/wasmlab/audiotag/internal/version"

// AppVersion carries the release tag and commit of this build. The $Format$
// placeholders are filled in by `git archive` (this file carries the
// export-subst attribute); regular builds fall back to GitTag plus the
// commit metadata `go build` embeds.
var AppVersion = version.AppVersion(GitTag, "$Format:%(describe)$", "$Format:%H$")
