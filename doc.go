// Package audiotag provides typed Go control of the browser's native HTML5
// `<audio>` element, for Go programs compiled to WebAssembly.
//
// The package owns no playback machinery of its own: buffering, decoding and
// playback timing are entirely the browser's business. An Audio handle simply
// wraps one native element and translates typed calls into property reads,
// property writes and the native play()/pause() method calls. Nothing is
// cached: every query re-reads the live element, every command re-writes it,
// so the handle can never drift from the element it wraps.
//
// The handle is written against the small Media interface, which states the
// exact native surface required. The sub-package `wasm` implements Media over
// the real DOM (using `github.com/gowebapi/webapi`) and adds the element
// construction helpers; FakeMedia implements it in memory, so everything in
// this package can be exercised with plain `go test` and no browser.
//
// Typical use, in a js/wasm build:
//
//	src := audiotag.MustNewSource("/media/song.mp3")
//	audio, elem := wasm.NewAudio(audiotag.DefaultSettings(), src)
//	wasm.Append(wasm.Doc.Body(), elem)
//	audio.SetVolume(0.8)
//	audio.Play()
//
// Playback state changes made by the browser itself -- autoplay being blocked,
// or playback reaching the end -- are only observable the next time State()
// (or any other getter) is polled; the handle exposes no callbacks.
package audiotag
