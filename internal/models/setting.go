package models

// Setting is one persisted key/value pair, grouped by namespace
type Setting struct {
	ID        uint   `gorm:"primaryKey"`
	Namespace string `gorm:"size:64;not null;uniqueIndex:idx_setting_ns_name"`
	Name      string `gorm:"size:128;not null;uniqueIndex:idx_setting_ns_name"`
	Value     string `gorm:"type:text"`
}
