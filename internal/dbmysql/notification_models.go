package dbmysql

import (
	"time"
)

// DeliveryRecord is one notification the router routed to presentation (sink,
// device notification, or a failed notification attempt).
type DeliveryRecord struct {
	ID          uint      `gorm:"primaryKey"`
	MessageID   string    `gorm:"not null;index;size:36"`
	ChannelID   string    `gorm:"not null;index;size:80"`
	RecipientID string    `gorm:"not null;index;size:36"`
	Outcome     string    `gorm:"not null;size:30"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// SosRecord is the terminal outcome for one destination of one SOS
// invocation.
type SosRecord struct {
	ID           uint      `gorm:"primaryKey"`
	InvocationID string    `gorm:"not null;index;size:36"`
	Number       string    `gorm:"not null;size:20"`
	Channel      string    `gorm:"size:10"`
	Status       string    `gorm:"not null;size:30"`
	Reason       string    `gorm:"size:255"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}
