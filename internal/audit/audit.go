package audit

import "time"

// Action tags what a ledger mutation did.
type Action string

const (
	ActionInsert  Action = "insert"
	ActionDelete  Action = "delete"
	ActionRestore Action = "restore"
	ActionPurge   Action = "purge"
)

// Entry is one append-only audit row. Entries are written alongside every
// mutating movement operation and only ever read back for display.
type Entry struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Username    string    `json:"username" gorm:"not null"`
	Action      Action    `json:"action" gorm:"not null"`
	Table       string    `json:"table_name" gorm:"column:table_name;not null"`
	RecordID    int64     `json:"record_id" gorm:"column:record_id;not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Entry) TableName() string {
	return "audit_log"
}
