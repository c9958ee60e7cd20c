// Package playground runs the interface lessons: a die behind an abstract
// random source, interface embedding and composition, generic collection
// helpers and default behavior through struct embedding.
package playground

import (
	"fmt"
	"io"

	"github.com/xtding233/protocol-playground/internal/config"
	"github.com/xtding233/protocol-playground/internal/dice"
)

// printer keeps the first write error so sections can print freely.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Run prints every section to w, in order.
func Run(w io.Writer, params config.Params) error {
	p := &printer{w: w}

	p.printf("== Interfaces as types\n")
	gen, err := params.NewGenerator()
	if err != nil {
		return err
	}
	d, err := dice.NewDie(params.Sides, gen)
	if err != nil {
		return err
	}
	for _, v := range d.RollN(params.Rolls) {
		p.printf("Random: %d\n", v)
	}

	p.printf("\n== Interface embedding\n")
	var disp Disposable = &Scratch{}
	disp.Write()
	disp.Destroy()
	disp.Write()
	s := disp.(*Scratch)
	p.printf("writes=%d destroyed=%t\n", s.Writes, s.Destroyed)

	p.printf("\n== Interface composition\n")
	var rw ReadWriter = &Buffer{}
	rw.WriteString("Hello")
	p.printf("read %q\n", rw.Read())

	p.printf("\n== Generic collection helpers\n")
	if p.err == nil {
		p.err = SummarizeSlice(w, []string{"Murilo", "Felipe"})
	}
	if p.err == nil {
		p.err = SummarizeSet(w, NewSet("Teixeira", "Gonçalves"))
	}

	p.printf("\n== Default implementation\n")
	for _, a := range []Animal{Dog{}, Cat{}} {
		p.printf("%T: %s\n", a, a.MakeNoise())
	}
	return p.err
}
