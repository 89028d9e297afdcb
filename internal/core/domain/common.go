package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// Now returns the timestamp used for audit fields and transaction dates.
// Values are kept in UTC at microsecond precision so they survive a round trip through either store.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
