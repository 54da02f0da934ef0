package vm

// Mux is a single select-line multiplexor: Select sets which input is
// live, and Choose returns it. Modeling each datapath mux as its own
// named unit (rather than inlining every select as an anonymous ternary)
// keeps Simulator.Step reading the same way the datapath diagram does.
type Mux struct {
	signal bool
}

// Select sets the mux's control signal.
func (m *Mux) Select(signal bool) {
	m.signal = signal
}

// Signal reports the mux's current control signal.
func (m *Mux) Signal() bool {
	return m.signal
}

// Choose returns ifTrue when the mux's signal is set, ifFalse otherwise.
func (m *Mux) Choose(ifTrue, ifFalse int32) int32 {
	if m.signal {
		return ifTrue
	}
	return ifFalse
}

// addPC adds two byte addresses together. A single-purpose named helper,
// matching the datapath's own dedicated next-PC adder rather than folding
// the arithmetic inline.
func addPC(x, y uint32) uint32 {
	return x + y
}

// shiftLeft2 shifts a word-count value into a byte address.
func shiftLeft2(target uint32) uint32 {
	return target << 2
}
