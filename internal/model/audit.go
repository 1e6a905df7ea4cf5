package model

import "time"

// Audit action vocabulary. Matches the wire/storage values consumers of
// the audit_log table already depend on.
const (
	AuditRequestCreated   = "SERVICE_REQUEST"
	AuditRequestAccepted  = "SERVICE_REQUEST_ACCEPTED"
	AuditRequestCompleted = "SERVICE_REQUEST_COMPLETED"
	AuditRequestConfirmed = "SERVICE_REQUEST_CONFIRMED"
	AuditMessageSent      = "MESSAGE_SENT"
)

// AuditEntry is an append-only operator-facing record. Writes are
// best-effort: a failed audit write never fails the business operation.
type AuditEntry struct {
	ID          int64     `json:"id,string"`
	Action      string    `json:"action_type"`
	Description string    `json:"description"`
	ActorID     *int64    `json:"created_by,string,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
