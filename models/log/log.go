package log

import (
	"time"
)

// Log represents an HTTP request/response log entry persisted by the
// asynchronous logger.
type Log struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Method          string    `gorm:"type:varchar(10);not null;index" json:"method"`
	URL             string    `gorm:"type:text;not null" json:"url"`
	RequestBody     string    `gorm:"type:text" json:"request_body"`
	RequestHeaders  string    `gorm:"type:text" json:"request_headers"`
	ResponseBody    string    `gorm:"type:text" json:"response_body"`
	ResponseHeaders string    `gorm:"type:text" json:"response_headers"`
	StatusCode      int       `gorm:"type:int;index" json:"status_code"`
	CreatedAt       time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName sets the table name for the Log model
func (Log) TableName() string {
	return "logs"
}
