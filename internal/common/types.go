package common

import (
	"time"
)

type SenderRole string

const (
	RoleDoctor  SenderRole = "doctor"
	RolePatient SenderRole = "patient"
)

type MessageKind string

const (
	KindPlain         MessageKind = "plain"
	KindSeizureAlert  MessageKind = "seizure_alert"
	KindMedicalAdvice MessageKind = "medical_advice"
	KindEmergency     MessageKind = "emergency"
)

type AlertStatus string

const (
	AlertActive       AlertStatus = "active"
	AlertAcknowledged AlertStatus = "acknowledged"
	AlertResolved     AlertStatus = "resolved"
)

// Message is one unit of communication delivered to a recipient. ID, sender
// fields, body and CreatedAt are immutable after creation; only Read mutates.
type Message struct {
	ID              string
	ChannelID       string
	SenderID        string
	SenderRole      SenderRole
	SenderName      string
	Body            string
	Urgent          bool
	Kind            MessageKind
	RelatedRecordID string
	Read            bool
	CreatedAt       time.Time
}

// EmergencyAlert is the SOS-raised document tracked separately from chat
// messages. Status walks active -> acknowledged -> resolved.
type EmergencyAlert struct {
	ID          string
	ChannelID   string
	PatientID   string
	PatientName string
	Status      AlertStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Coordinates struct {
	Lat float64
	Lon float64
}

type LifecycleState string

const (
	StateForeground LifecycleState = "foreground"
	StateBackground LifecycleState = "background"
)
