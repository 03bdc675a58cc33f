package history

// Replayer applies records to a document. The editor implements it; the log
// only decides which records to replay and in what order.
type Replayer interface {
	// Undo reverts the effect of r.
	Undo(r *Record)
	// Redo reapplies the effect of r.
	Redo(r *Record)
}
