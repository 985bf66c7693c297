package models

import "time"

// AuditFields holds standard audit columns shared by all persisted records.
type AuditFields struct {
	CreatedAt     time.Time `bson:"created_at"`
	CreatedBy     string    `bson:"created_by"`
	LastUpdatedAt time.Time `bson:"last_updated_at"`
	LastUpdatedBy string    `bson:"last_updated_by"`
}
