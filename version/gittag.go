package version

// GitTag is the hardcoded release tag, used when the build carries no git
// metadata of its own. Updated as part of the release process.
const GitTag = "v0.1.0"
