package domain

import "time"

// DefaultUserID identifies the single local owner of the dashboard.
// The data model keeps audit fields so a multi-user upgrade stays cheap,
// but every mutation in this deployment is attributed to this id.
const DefaultUserID = "owner"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
