package dbmongo

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"carepulse/internal/common"
)

const (
	messagesCollection = "messages"
	alertsCollection   = "emergency_alerts"

	watchReconnectDelay = 2 * time.Second
)

type messageDoc struct {
	ID              string    `bson:"_id"`
	ChannelID       string    `bson:"channel_id"`
	SenderID        string    `bson:"sender_id"`
	SenderRole      string    `bson:"sender_role"`
	SenderName      string    `bson:"sender_name"`
	Body            string    `bson:"body"`
	Urgent          bool      `bson:"urgent"`
	Kind            string    `bson:"kind"`
	RelatedRecordID string    `bson:"related_record_id,omitempty"`
	Read            bool      `bson:"read"`
	CreatedAt       time.Time `bson:"created_at"`
}

type alertDoc struct {
	ID          string    `bson:"_id"`
	ChannelID   string    `bson:"channel_id"`
	PatientID   string    `bson:"patient_id"`
	PatientName string    `bson:"patient_name"`
	Status      string    `bson:"status"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

// MessageStore implements common.MessageStore over MongoDB collections.
type MessageStore struct {
	messages *mongo.Collection
	alerts   *mongo.Collection
}

func NewMessageStore(mc *MongoClient) *MessageStore {
	return &MessageStore{
		messages: mc.Database.Collection(messagesCollection),
		alerts:   mc.Database.Collection(alertsCollection),
	}
}

// CreateMessage inserts a message document. The id and creation timestamp are
// assigned here (store side), never by the caller.
func (ms *MessageStore) CreateMessage(ctx context.Context, msg *common.Message) (string, error) {
	msg.ID = uuid.NewString()
	msg.CreatedAt = time.Now().UTC()

	doc := messageDoc{
		ID:              msg.ID,
		ChannelID:       msg.ChannelID,
		SenderID:        msg.SenderID,
		SenderRole:      string(msg.SenderRole),
		SenderName:      msg.SenderName,
		Body:            msg.Body,
		Urgent:          msg.Urgent,
		Kind:            string(msg.Kind),
		RelatedRecordID: msg.RelatedRecordID,
		Read:            false,
		CreatedAt:       msg.CreatedAt,
	}

	if _, err := ms.messages.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("failed to create message: %w", err)
	}
	return msg.ID, nil
}

// MarkRead flips the read flag, the only mutable message attribute.
func (ms *MessageStore) MarkRead(ctx context.Context, messageID string) error {
	res, err := ms.messages.UpdateByID(ctx, messageID, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("message not found: %s", messageID)
	}
	return nil
}

func (ms *MessageStore) CreateAlert(ctx context.Context, alert *common.EmergencyAlert) (string, error) {
	alert.ID = uuid.NewString()
	alert.Status = common.AlertActive
	alert.CreatedAt = time.Now().UTC()
	alert.UpdatedAt = alert.CreatedAt

	doc := alertDoc{
		ID:          alert.ID,
		ChannelID:   alert.ChannelID,
		PatientID:   alert.PatientID,
		PatientName: alert.PatientName,
		Status:      string(alert.Status),
		CreatedAt:   alert.CreatedAt,
		UpdatedAt:   alert.UpdatedAt,
	}

	if _, err := ms.alerts.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("failed to create alert: %w", err)
	}
	return alert.ID, nil
}

// UpdateAlertStatus transitions an emergency alert and drops a courtesy
// message into the alert's channel so the other party sees the transition.
func (ms *MessageStore) UpdateAlertStatus(ctx context.Context, alertID string, status common.AlertStatus) error {
	var doc alertDoc
	err := ms.alerts.FindOneAndUpdate(ctx,
		bson.M{"_id": alertID},
		bson.M{"$set": bson.M{"status": string(status), "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return fmt.Errorf("alert not found: %s", alertID)
		}
		return fmt.Errorf("failed to update alert status: %w", err)
	}

	courtesy := &common.Message{
		ChannelID:       doc.ChannelID,
		SenderID:        "system",
		SenderName:      "CarePulse",
		Body:            fmt.Sprintf("Emergency alert for %s is now %s.", doc.PatientName, status),
		Urgent:          status == common.AlertAcknowledged,
		Kind:            common.KindEmergency,
		RelatedRecordID: doc.ID,
	}
	if _, err := ms.CreateMessage(ctx, courtesy); err != nil {
		log.Printf("dbmongo: failed to create alert status message: %v", err)
	}
	return nil
}

// Subscribe opens a change-stream backed feed for one channel. The current
// ordered message set is delivered immediately, then re-delivered in full on
// every change, matching snapshot-listener semantics. Close stops delivery.
func (ms *MessageStore) Subscribe(ctx context.Context, channelID string) (common.Subscription, error) {
	wctx, cancel := context.WithCancel(context.Background())
	sub := &subscription{
		updates: make(chan []*common.Message, 1),
		errs:    make(chan error, 1),
		cancel:  cancel,
	}
	go ms.watch(wctx, channelID, sub)
	return sub, nil
}

type subscription struct {
	updates chan []*common.Message
	errs    chan error
	cancel  context.CancelFunc
	once    sync.Once
}

func (s *subscription) Updates() <-chan []*common.Message { return s.updates }
func (s *subscription) Err() <-chan error                 { return s.errs }

func (s *subscription) Close() {
	s.once.Do(s.cancel)
}

func (s *subscription) pushErr(err error) {
	select {
	case s.errs <- err:
	default:
	}
}

// pushSnapshot queries the current ordered set and hands it to the consumer.
// A pending undelivered snapshot is superseded rather than queued: only the
// single watcher goroutine writes, so drain-then-send is safe.
func (s *subscription) push(msgs []*common.Message) {
	select {
	case <-s.updates:
	default:
	}
	select {
	case s.updates <- msgs:
	default:
	}
}

func (ms *MessageStore) watch(ctx context.Context, channelID string, sub *subscription) {
	defer close(sub.updates)
	defer close(sub.errs)

	ms.pushSnapshot(ctx, channelID, sub)

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "fullDocument.channel_id", Value: channelID}}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	for {
		cs, err := ms.messages.Watch(ctx, pipeline, opts)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			sub.pushErr(fmt.Errorf("change stream open failed: %w", err))
			select {
			case <-time.After(watchReconnectDelay):
				continue
			case <-ctx.Done():
				return
			}
		}

		for cs.Next(ctx) {
			ms.pushSnapshot(ctx, channelID, sub)
		}
		err = cs.Err()
		cs.Close(context.Background())

		if ctx.Err() != nil {
			return
		}
		if err != nil {
			sub.pushErr(fmt.Errorf("change stream failed: %w", err))
		}
		select {
		case <-time.After(watchReconnectDelay):
		case <-ctx.Done():
			return
		}
	}
}

func (ms *MessageStore) pushSnapshot(ctx context.Context, channelID string, sub *subscription) {
	msgs, err := ms.channelMessages(ctx, channelID)
	if err != nil {
		if ctx.Err() == nil {
			sub.pushErr(err)
		}
		return
	}
	sub.push(msgs)
}

func (ms *MessageStore) channelMessages(ctx context.Context, channelID string) ([]*common.Message, error) {
	cursor, err := ms.messages.Find(ctx,
		bson.M{"channel_id": channelID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query channel %s: %w", channelID, err)
	}
	defer cursor.Close(ctx)

	var docs []messageDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode channel %s: %w", channelID, err)
	}

	msgs := make([]*common.Message, len(docs))
	for i, d := range docs {
		msgs[i] = &common.Message{
			ID:              d.ID,
			ChannelID:       d.ChannelID,
			SenderID:        d.SenderID,
			SenderRole:      common.SenderRole(d.SenderRole),
			SenderName:      d.SenderName,
			Body:            d.Body,
			Urgent:          d.Urgent,
			Kind:            common.MessageKind(d.Kind),
			RelatedRecordID: d.RelatedRecordID,
			Read:            d.Read,
			CreatedAt:       d.CreatedAt,
		}
	}
	return msgs, nil
}
