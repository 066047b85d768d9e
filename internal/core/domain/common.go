package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// Timestamps are server-assigned at write time.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
