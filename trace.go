package dynarr

import (
	"fmt"
	"io"
)

//go:generate mockgen -source=trace.go -destination=mock_printer_test.go -package=dynarr

// Printer receives the name of each call made through a Traced array and
// the array's state right after it.
type Printer interface {
	Print(op, state string)
}

type Traced[T any] struct {
	arr     *Array[T]
	printer Printer
	dump    bool
}

func Trace[T any](arr *Array[T], printer Printer) *Traced[T] {
	return &Traced[T]{arr: arr, printer: printer}
}

// Verbose switches the reported state from String to Dump.
func (t *Traced[T]) Verbose(on bool) *Traced[T] {
	t.dump = on
	return t
}

func (t *Traced[T]) Array() *Array[T] {
	return t.arr
}

func (t *Traced[T]) Get(index int) (item T, err error) {
	item, err = t.arr.Get(index)
	t.report(result(fmt.Sprintf("get(%d)", index), item, err))
	return
}

func (t *Traced[T]) Push(item T) {
	t.arr.Push(item)
	t.report(fmt.Sprintf("push(%v)", item))
}

func (t *Traced[T]) Pop() (item T, err error) {
	item, err = t.arr.Pop()
	t.report(result("pop()", item, err))
	return
}

func (t *Traced[T]) Insert(index int, item T) error {
	err := t.arr.Insert(index, item)
	t.report(failed(fmt.Sprintf("insert(%d, %v)", index, item), err))
	return err
}

func (t *Traced[T]) Delete(index int) error {
	err := t.arr.Delete(index)
	t.report(failed(fmt.Sprintf("delete(%d)", index), err))
	return err
}

func (t *Traced[T]) report(op string) {
	state := t.arr.String()
	if t.dump {
		state = t.arr.Dump()
	}
	t.printer.Print(op, state)
}

func result(op string, item any, err error) string {
	if err != nil {
		return failed(op, err)
	}
	return fmt.Sprintf("%s -> %v", op, item)
}

func failed(op string, err error) string {
	if err != nil {
		return fmt.Sprintf("%s -> error: %s", op, err)
	}
	return op
}

// WriterPrinter writes one "op\n\tstate" entry per call. The first write
// error is kept and later writes are skipped.
type WriterPrinter struct {
	w   io.Writer
	err error
}

func NewWriterPrinter(w io.Writer) *WriterPrinter {
	return &WriterPrinter{w: w}
}

func (p *WriterPrinter) Print(op, state string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s\n\t%s\n", op, state)
}

func (p *WriterPrinter) Err() error {
	return p.err
}
