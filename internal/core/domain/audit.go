package domain

import "time"

// AuditTimeLayout is the timestamp format used when rendering audit entries.
const AuditTimeLayout = "2006-01-02 15:04:05"

// AuditEntry is one line of the system history.
type AuditEntry struct {
	Time    time.Time `json:"time"`
	Message string    `json:"message"`
}

func (e AuditEntry) String() string {
	return "[" + e.Time.Format(AuditTimeLayout) + "] " + e.Message
}
