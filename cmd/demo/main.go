//go:build js && wasm

// demo is the WASM program served by demoserver. It builds a small player UI
// around one audio element and wires every control through the typed handle,
// so clicking around the page exercises the whole audiotag surface.
//
// Keyboard shortcuts, while the page has focus: space toggles play/pause, up
// and down nudge the volume, left rewinds to the start, right jumps to the
// end.
package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gowebapi/webapi/dom"

	"github.com/wasmlab/audiotag"
	"github.com/wasmlab/audiotag/common"
	"github.com/wasmlab/audiotag/wasm"
)

// Sources offered to the element, in preference order. The browser picks the
// first one it can fetch and decode; the server always knows how to answer
// for sample.wav, so the demo plays even with an empty media directory.
var demoSources = []audiotag.Source{
	audiotag.MustNewSource("/media/sample.mp3"),
	audiotag.MustNewSource("/media/sample.ogg"),
	audiotag.MustNewSource("/media/sample.wav"),
}

func main() {
	root := wasm.ById("demo_root")
	if root == nil {
		fmt.Println("demo: page has no #demo_root element, nothing to do")
		return
	}

	audio, elem := wasm.NewAudio(audiotag.Settings{
		Controls: true,
		Preload:  audiotag.PreloadAuto,
		Volume:   0.8,
	}, demoSources...)
	wasm.Append(root, elem)

	p := newPlayerUI(root, audio, elem)
	p.refresh()
	fmt.Println("demo: player ready")
	wasm.WaitForever()
}

// playerUI holds the controls built around the audio handle. The handle is
// the only model; every refresh re-reads it.
type playerUI struct {
	audio  *audiotag.Audio
	slider *dom.Element
	status *dom.Element
}

func newPlayerUI(root wasm.NodeCompatible, audio *audiotag.Audio, elem *dom.Element) *playerUI {
	p := &playerUI{audio: audio}

	buttons := newRow(root)
	p.newButton(buttons, "Play", func() { audio.Play() })
	p.newButton(buttons, "Pause", func() { audio.Pause() })
	p.newButton(buttons, "Stop", func() { audio.Stop() })
	p.newButton(buttons, "Play/Pause", func() { audio.TogglePlaying() })

	toggles := newRow(root)
	p.newButton(toggles, "Mute", func() { audio.ToggleMuted() })
	p.newButton(toggles, "Loop", func() { audio.ToggleLooping() })
	p.newButton(toggles, "⏮", func() { audio.Seek(audiotag.SeekStart) })
	p.newButton(toggles, "⏭", func() { audio.Seek(audiotag.SeekEnd) })

	volume := newRow(root)
	wasm.Append(volume, textElem("label", "Volume: "))
	p.slider = wasm.NewElem("input", "type=range", "min=0", "max=100", "step=5", "value=80")
	p.slider.SetId(common.UniqueId() + "_volume")
	wasm.Append(volume, p.slider)
	wasm.On(p.slider, "input", func(ev wasm.EventCompatible) {
		v, err := strconv.ParseFloat(wasm.AsInput(p.slider).Value(), 64)
		if err != nil {
			return
		}
		audio.SetVolume(v / 100)
		p.refresh()
	})

	p.status = wasm.NewElem("div")
	p.status.SetId(common.UniqueId() + "_status")
	wasm.Append(root, p.status)

	// The element fires these on its own (e.g. when a track runs out or the
	// user drives the native controls), so the status line can't go stale.
	for _, eventType := range []string{"play", "pause", "ended", "volumechange", "loadedmetadata"} {
		wasm.On(elem, eventType, func(ev wasm.EventCompatible) { p.refresh() })
	}

	wasm.On(wasm.Doc, "keydown", func(ev wasm.EventCompatible) { p.onKeyDown(ev) })
	return p
}

func (p *playerUI) onKeyDown(ev wasm.EventCompatible) {
	kev := wasm.AsKeyboardEvent(ev)
	if kev == nil {
		return
	}
	switch kev.KeyCode() {
	case wasm.KeyCodeUp:
		p.setSlider(p.audio.ModVolume(+0.1))
	case wasm.KeyCodeDown:
		p.setSlider(p.audio.ModVolume(-0.1))
	case wasm.KeyCodeLeft:
		p.audio.Seek(audiotag.SeekStart)
	case wasm.KeyCodeRight:
		p.audio.Seek(audiotag.SeekEnd)
	default:
		if kev.Code() == "Space" {
			p.audio.TogglePlaying()
			ev.PreventDefault() // Keep the page from scrolling.
		} else {
			return
		}
	}
	p.refresh()
}

// setSlider mirrors a volume set through the keyboard back onto the slider.
func (p *playerUI) setSlider(volume float64) {
	wasm.AsInput(p.slider).SetValue(strconv.Itoa(int(math.Round(volume * 100))))
}

func (p *playerUI) refresh() {
	a := p.audio
	wasm.SetText(p.status, fmt.Sprintf(
		"state: %s | volume: %.0f%% | muted: %v | loop: %v | duration: %.1fs",
		a.State(), a.Volume()*100, a.IsMuted(), a.IsLooping(), a.Duration()))
}

func (p *playerUI) newButton(parent wasm.NodeCompatible, label string, onClick func()) {
	b := wasm.NewElem("button", "type=button")
	b.SetId(common.UniqueId() + "_button")
	wasm.SetText(b, label)
	wasm.On(b, "click", func(ev wasm.EventCompatible) {
		onClick()
		p.refresh()
	})
	wasm.Append(parent, b)
}

func newRow(parent wasm.NodeCompatible) wasm.NodeCompatible {
	row := wasm.NewElem("div")
	wasm.Append(parent, row)
	return row
}

func textElem(tag, text string) wasm.NodeCompatible {
	e := wasm.NewElem(tag)
	wasm.SetText(e, text)
	return e
}
