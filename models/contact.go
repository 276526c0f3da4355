package models

// Contact represents a person appointments are scheduled with.
// It corresponds to the 'contacts' table.
type Contact struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string  `gorm:"not null" json:"name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	CreatedAt string  `gorm:"not null" json:"created_at"` // UTC ISO-8601, set at insert, immutable
}

// TableName explicitly sets the table name for GORM.
func (Contact) TableName() string {
	return "contacts"
}
