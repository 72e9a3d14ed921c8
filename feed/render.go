package feed

import (
	"fmt"
	"strconv"
)

// RenderFunc produces the output for one item. The index is the item's
// current position in the retained collection. Render calls happen only for
// items inside the window and are isolated from each other: an error return
// or a panic affects that item alone.
type RenderFunc[T any] func(item T, index int) (string, error)

// Rendered is the output for one in-window item.
type Rendered struct {
	// Key identifies the item for the host's reconciliation or caching.
	// See KeyFunc for the index-derived default and its eviction caveat.
	Key string
	// Index is the item's position in the retained collection.
	Index int
	// Content is the render output, or fallback content when Failed.
	Content string
	// Failed marks an item whose render call errored or panicked.
	Failed bool
}

// Frame is one rendered window: the in-range items plus two padding spacers
// sized so the total scrollable height is preserved without materializing
// the off-window items.
type Frame struct {
	// TopPad and BottomPad are spacer heights in pixels.
	TopPad    int
	BottomPad int
	// Items holds the rendered in-window items, in collection order.
	Items []Rendered
	// Start and End mirror the window range the frame was built from.
	Start int
	End   int
}

// RenderFrame maps the current window to a Frame.
//
// The collection snapshot is taken under the lock, the render calls run
// outside it, so a slow or failing renderer never blocks scrolling or
// pagination.
func (f *feed[T]) RenderFrame(render RenderFunc[T]) Frame {
	f.mu.Lock()
	win := f.win
	n := len(f.items)
	items := append([]T(nil), f.items[win.Start:win.End]...)
	geo := f.geo
	key := f.opt.Key
	fallback := f.opt.Fallback
	f.mu.Unlock()

	fr := Frame{
		TopPad:    geo.PadTop(win),
		BottomPad: geo.PadBottom(win, n),
		Items:     make([]Rendered, 0, len(items)),
		Start:     win.Start,
		End:       win.End,
	}
	for i, item := range items {
		idx := win.Start + i
		out := Rendered{Key: keyFor(key, item, idx), Index: idx}
		content, err := renderOne(render, item, idx)
		if err != nil {
			out.Failed = true
			if fallback != nil {
				content = fallback(idx, err)
			} else {
				content = ""
			}
		}
		out.Content = content
		fr.Items = append(fr.Items, out)
	}
	return fr
}

// renderOne invokes the renderer for a single item, converting a panic into
// an error so one malformed item cannot take down the rest of the frame.
func renderOne[T any](render RenderFunc[T], item T, index int) (content string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("feed: render panic at index %d: %v", index, r)
		}
	}()
	if render == nil {
		return "", fmt.Errorf("feed: nil render function")
	}
	return render(item, index)
}

func keyFor[T any](key KeyFunc[T], item T, index int) string {
	if key != nil {
		return key(item, index)
	}
	return strconv.Itoa(index)
}
