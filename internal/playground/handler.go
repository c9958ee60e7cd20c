package playground

import "strings"

// Writable and Deletable are combined by embedding into Disposable.
type Writable interface {
	Write()
}

type Deletable interface {
	Destroy()
}

type Disposable interface {
	Writable
	Deletable
}

// Scratch is a Disposable that only records what happened to it.
type Scratch struct {
	Writes    int
	Destroyed bool
}

func (s *Scratch) Write() {
	if s.Destroyed {
		return
	}
	s.Writes++
}

func (s *Scratch) Destroy() { s.Destroyed = true }

// Reader and StringWriter are composed into ReadWriter.
type Reader interface {
	Read() string
}

type StringWriter interface {
	WriteString(s string)
}

type ReadWriter interface {
	Reader
	StringWriter
}

// Buffer is an in-memory ReadWriter. Read drains what was written.
type Buffer struct {
	b strings.Builder
}

func (h *Buffer) Read() string {
	s := h.b.String()
	h.b.Reset()
	return s
}

func (h *Buffer) WriteString(s string) { h.b.WriteString(s) }

var (
	_ Disposable = (*Scratch)(nil)
	_ ReadWriter = (*Buffer)(nil)
)
