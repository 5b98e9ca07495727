package writer

// Writer is a sink for a finished document buffer.
type Writer interface {
	WriteDocument(buf []byte) error
}

var (
	_ Writer = (*FileWriter)(nil)
	_ Writer = (*MemWriter)(nil)
)

// MemWriter captures document bytes in memory.
type MemWriter struct {
	Buf []byte
}

// WriteDocument stores a copy of buf, reusing Buf's storage.
func (w *MemWriter) WriteDocument(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}

// Detach returns the captured bytes and forgets them, so the next write
// allocates fresh storage.
func (w *MemWriter) Detach() []byte {
	b := w.Buf
	w.Buf = nil
	return b
}
