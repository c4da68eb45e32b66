// Package widgets provides the theme-aware terminal widgets shown by the gallery.
//
// Widgets never read global state. Every View call receives a RenderContext
// built from the active theme:
//
//	ctx := widgets.NewRenderContext(store.Theme())
//	out := button.View(ctx)
//
// NewRenderContext derives the StyleParams for the theme on each call, so a
// theme change is picked up by the next render without any cache to invalidate.
// The Grid is the exception: the bubbles table keeps its own styles, so the
// grid must be restyled with ApplyStyle when the theme changes.
package widgets
