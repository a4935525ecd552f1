package qgame

import "time"

/*
Frame is an immutable record of one change to a world: either a group of
operations added by a single effect, or a set of measurement outcomes from
a pop. Frames are replayed in order to rebuild the state after an undo, so
the ledger is the source of truth and the state vector is a cache of it.
*/
type Frame struct {
	Sequence     uint64
	Timestamp    time.Time
	Operations   []Operation
	Measurements []Measurement
}

// Measurement records that a qid was observed holding Value.
type Measurement struct {
	Qid   *Qid
	Value int
}

/*
ledger keeps the ordered frame history of a world. Sequence numbers keep
increasing across undos, so a caller holding a sequence number never sees a
different frame under it.
*/
type ledger struct {
	frames []Frame
	next   uint64
}

func (l *ledger) append(ops []Operation, measurements []Measurement) Frame {
	frame := Frame{
		Sequence:     l.next,
		Timestamp:    time.Now(),
		Operations:   ops,
		Measurements: measurements,
	}
	l.next++
	l.frames = append(l.frames, frame)
	return frame
}

func (l *ledger) dropLast() (Frame, bool) {
	if len(l.frames) == 0 {
		return Frame{}, false
	}

	last := l.frames[len(l.frames)-1]
	l.frames = l.frames[:len(l.frames)-1]
	return last, true
}

// since returns every frame with a sequence number of at least seq.
func (l *ledger) since(seq uint64) []Frame {
	for i, frame := range l.frames {
		if frame.Sequence >= seq {
			return append([]Frame{}, l.frames[i:]...)
		}
	}
	return []Frame{}
}
