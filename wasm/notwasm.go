//go:build !js || !wasm

// Package wasm binds the audiotag package to a real browser DOM.
//
// This program was NOT compiled for WebAssembly, so only the IsWasm constant
// is available. Compile with GOOS=js GOARCH=wasm for the full package.
package wasm

// IsWasm indicates whether the program was compiled for WebAssembly.
const IsWasm = false
