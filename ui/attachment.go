package ui

// Attachment is what tuigfx calls a UI element: something that consumes a
// Region's input and writes to its ScreenView, producing a result of
// whatever type makes sense for that widget (a clicked bool, submitted
// text, layout stats, ...).
type Attachment[T any] interface {
	Attach(Region) T
}

// RawAttachment is the lower-level form used to build Attachment
// implementations: it deals directly with the input Action and ScreenView
// rather than a whole Region.
type RawAttachment[T any] interface {
	RawAttach(Action, ScreenView) T
}

// RawFunc adapts a plain function into a RawAttachment/Attachment, mirroring
// the blanket "closures are attachments" behavior widgets like Fill build
// on.
type RawFunc[T any] func(Action, ScreenView) T

func (f RawFunc[T]) RawAttach(a Action, sv ScreenView) T { return f(a, sv) }
func (f RawFunc[T]) Attach(r Region) T                   { return f(r.input, r.view) }

// Attach hands r to a, unpacking its raw pieces first if a only implements
// RawAttachment.
func Attach[T any](r Region, a RawAttachment[T]) T {
	return a.RawAttach(r.input, r.view)
}
