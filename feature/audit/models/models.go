package models

import "time"

// Run modes recorded in AuditRun.Mode.
const (
	ModeCheck = "check"
	ModeFix   = "fix"
)

// AuditRun represents the 'audit_runs' table: one row per check or fix.
type AuditRun struct {
	ID         string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	Character  string    `gorm:"column:character;type:varchar(64)" json:"character"`
	Gearset    string    `gorm:"column:gearset;type:varchar(512)" json:"gearset"`
	Mode       string    `gorm:"column:mode;type:varchar(16)" json:"mode"`
	DryRun     bool      `gorm:"column:dry_run;type:tinyint(1)" json:"dry_run"`
	Total      int       `gorm:"column:total;type:int" json:"total"`
	OK         int       `gorm:"column:ok;type:int" json:"ok"`
	WrongBag   int       `gorm:"column:wrong_bag;type:int" json:"wrong_bag"`
	Missing    int       `gorm:"column:missing;type:int" json:"missing"`
	Unknown    int       `gorm:"column:unknown;type:int" json:"unknown"`
	Changed    int       `gorm:"column:changed;type:int" json:"changed"`
	BackupPath string    `gorm:"column:backup_path;type:varchar(512)" json:"backup_path,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at;type:datetime" json:"created_at"`

	Corrections []AuditCorrection `gorm:"foreignKey:RunID" json:"corrections,omitempty"`
}

// TableName overrides the table name.
func (AuditRun) TableName() string {
	return "audit_runs"
}

// AuditCorrection represents the 'audit_corrections' table: one bag rewrite
// planned or applied during a fix run.
type AuditCorrection struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	RunID    string `gorm:"column:run_id;type:varchar(36);index" json:"run_id"`
	Name     string `gorm:"column:name;type:varchar(255)" json:"name"`
	Location string `gorm:"column:location;type:varchar(64)" json:"location"`
	Conflict bool   `gorm:"column:conflict;type:tinyint(1)" json:"conflict"`
}

// TableName overrides the table name.
func (AuditCorrection) TableName() string {
	return "audit_corrections"
}

// All lists every model owned by the audit feature, in migration order.
func All() []any {
	return []any{&AuditRun{}, &AuditCorrection{}}
}
