package models

// DisposableDomain is one known disposable mail domain.
// Rows are only written in bulk by the domain sync and dropped with the table.
type DisposableDomain struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement"`
	Domain string `gorm:"type:varchar(255);not null;uniqueIndex"`
}
