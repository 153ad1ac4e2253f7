package dbmysql

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"carepulse/internal/common"
)

type deliveryLog struct {
	db *gorm.DB
}

// NewDeliveryLog returns the MySQL-backed common.DeliveryLog.
func NewDeliveryLog(db *gorm.DB) common.DeliveryLog {
	return &deliveryLog{
		db: db,
	}
}

func (r *deliveryLog) RecordNotification(ctx context.Context, messageID, channelID, recipientID, outcome string) error {
	rec := &DeliveryRecord{
		MessageID:   messageID,
		ChannelID:   channelID,
		RecipientID: recipientID,
		Outcome:     outcome,
	}
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to record notification delivery: %w", err)
	}
	return nil
}

func (r *deliveryLog) RecordSosOutcome(ctx context.Context, invocationID, number, channel, status, reason string) error {
	rec := &SosRecord{
		InvocationID: invocationID,
		Number:       number,
		Channel:      channel,
		Status:       status,
		Reason:       reason,
	}
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to record sos outcome: %w", err)
	}
	return nil
}

// RecentDeliveries lists the newest delivery records for the report endpoint.
func RecentDeliveries(ctx context.Context, db *gorm.DB, limit int) ([]*DeliveryRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	var records []*DeliveryRecord
	err := db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	return records, nil
}

// RecentSosOutcomes lists the newest SOS outcome records.
func RecentSosOutcomes(ctx context.Context, db *gorm.DB, limit int) ([]*SosRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	var records []*SosRecord
	err := db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sos outcomes: %w", err)
	}
	return records, nil
}
