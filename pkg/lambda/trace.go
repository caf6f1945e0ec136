package lambda

// TraceEvent records one beta step: the redex that fired and the term it
// rewrote to, before further reduction.
type TraceEvent struct {
	Step   uint64
	Redex  string
	Result string
}

// EnableTrace starts recording beta steps into a fixed-capacity buffer.
// Events past capacity are dropped.
func (e *Evaluator) EnableTrace(capacity int) {
	if capacity <= 0 {
		capacity = 1
	}
	e.traceBuf = make([]TraceEvent, 0, capacity)
	e.traceCap = uint64(capacity)
	e.traceIdx = 0
	e.traceOn = true
}

// DisableTrace stops recording.
func (e *Evaluator) DisableTrace() {
	e.traceOn = false
}

// TraceSnapshot returns a copy of the events recorded so far.
func (e *Evaluator) TraceSnapshot() []TraceEvent {
	if !e.traceOn {
		return nil
	}
	res := make([]TraceEvent, len(e.traceBuf))
	copy(res, e.traceBuf)
	return res
}

func (e *Evaluator) recordTrace(redex, result Term) {
	if !e.traceOn || e.traceCap == 0 {
		return
	}
	idx := e.traceIdx
	e.traceIdx++
	if idx >= e.traceCap {
		return
	}
	e.traceBuf = append(e.traceBuf, TraceEvent{
		Step:   idx,
		Redex:  redex.String(),
		Result: result.String(),
	})
}
