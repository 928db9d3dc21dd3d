// frame.go — one activation record on the VM's call stack.
package monkey

// Frame is the VM's call-frame: the closure being executed, the
// instruction pointer within it, and the base pointer into the VM's data
// stack where this call's locals begin.
type Frame struct {
	cl          *Closure
	ip          int
	basePointer int
}

// NewFrame creates a frame for cl with its locals starting at basePointer.
func NewFrame(cl *Closure, basePointer int) *Frame {
	return &Frame{cl: cl, ip: -1, basePointer: basePointer}
}

// Instructions returns the frame's closure's instruction stream.
func (f *Frame) Instructions() Instructions {
	return f.cl.Fn.Instructions
}
