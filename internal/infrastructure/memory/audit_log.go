package memory

import "github.com/mianwali/crop-advisory/internal/core/domain"

// AuditCapacity is the number of entries the audit log retains.
const AuditCapacity = 100

// AuditLog is a fixed-size ring buffer. Once full, each append overwrites
// the oldest entry.
type AuditLog struct {
	buf   [AuditCapacity]domain.AuditEntry
	start int
	n     int
}

func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

func (l *AuditLog) Append(entry domain.AuditEntry) {
	if l.n < AuditCapacity {
		l.buf[(l.start+l.n)%AuditCapacity] = entry
		l.n++
		return
	}
	l.buf[l.start] = entry
	l.start = (l.start + 1) % AuditCapacity
}

func (l *AuditLog) Snapshot() []domain.AuditEntry {
	out := make([]domain.AuditEntry, l.n)
	for i := 0; i < l.n; i++ {
		out[i] = l.buf[(l.start+i)%AuditCapacity]
	}
	return out
}

func (l *AuditLog) Len() int {
	return l.n
}
