package tariff

// Zone is a named location node used to key tariffs.
type Zone struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);not null;unique" json:"nombre"`
}

// TableName sets the table name for the Zone model
func (Zone) TableName() string {
	return "zones"
}
