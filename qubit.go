package qgame

import "fmt"

/*
Qid is a handle to one simulated quantum digit. A Qid with Dim 2 is a qubit,
anything larger is a qudit. Operations refer to qids by pointer, so two qids
with the same name are still distinct wires.
*/
type Qid struct {
	Name string
	Dim  int
}

// NewQid returns a qid of the given dimension.
func NewQid(name string, dim int) *Qid {
	return &Qid{Name: name, Dim: dim}
}

func (q *Qid) String() string {
	if q.Dim == 2 {
		return q.Name
	}

	return fmt.Sprintf("%s(d=%d)", q.Name, q.Dim)
}
