package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GioMjds/AzureaHotel/internal/models"
	"github.com/GioMjds/AzureaHotel/pkg/broadcast"
	"github.com/GioMjds/AzureaHotel/pkg/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Realtime sink ---

type fakeStore struct {
	writes   map[string]any
	appends  map[string][]any
	updates  []realtime.BookingUpdate
	writeErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{writes: map[string]any{}, appends: map[string][]any{}}
}

func (s *fakeStore) Write(ctx context.Context, path string, value any) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.writes[path] = value
	return nil
}

func (s *fakeStore) Append(ctx context.Context, path string, value any) error {
	s.appends[path] = append(s.appends[path], value)
	return nil
}

func (s *fakeStore) SendBookingUpdate(ctx context.Context, update realtime.BookingUpdate) error {
	s.updates = append(s.updates, update)
	return nil
}

func testEvent() Event {
	userID := uint(7)
	roomID := uint(3)
	return Event{
		BookingID:      42,
		UserID:         &userID,
		PreviousStatus: models.StatusPending,
		Status:         models.StatusReserved,
		UnitID:         &roomID,
		UnitName:       "Deluxe 301",
		TotalPrice:     4500,
		NumberOfGuests: 2,
		Timestamp:      time.Now(),
	}
}

func TestRealtimeSink_WritesAllThreeKeys(t *testing.T) {
	store := newFakeStore()
	sink := NewRealtimeSink(store)

	err := sink.Deliver(context.Background(), testEvent())
	require.NoError(t, err)

	assert.Contains(t, store.writes, "booking_updates/42")
	assert.Contains(t, store.writes, "user_bookings/user_7/42")
	assert.Len(t, store.appends["user_notifications/user_7"], 1)
	// High-level helper ran as well.
	assert.Len(t, store.updates, 1)
	assert.Equal(t, uint(42), store.updates[0].BookingID)
}

func TestRealtimeSink_AnonymousBookingSkipsUserKeys(t *testing.T) {
	store := newFakeStore()
	sink := NewRealtimeSink(store)

	event := testEvent()
	event.UserID = nil

	err := sink.Deliver(context.Background(), event)
	require.NoError(t, err)

	assert.Contains(t, store.writes, "booking_updates/42")
	assert.Empty(t, store.appends)
}

func TestRealtimeSink_WriteFailureStillAttemptsAppend(t *testing.T) {
	store := newFakeStore()
	store.writeErr = errors.New("connection reset")
	sink := NewRealtimeSink(store)

	err := sink.Deliver(context.Background(), testEvent())

	assert.Error(t, err)
	// The append path is independent of the failed writes.
	assert.Len(t, store.appends["user_notifications/user_7"], 1)
}

func TestRealtimeSink_NilStoreDegradesToLogOnly(t *testing.T) {
	sink := NewRealtimeSink(nil)
	assert.NoError(t, sink.Deliver(context.Background(), testEvent()))
}

// --- Audit sink ---

type fakeNotifications struct {
	created []models.Notification
	err     error
}

func (f *fakeNotifications) Create(ctx context.Context, n *models.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, *n)
	return nil
}

func (f *fakeNotifications) FindByUser(ctx context.Context, userID uint) ([]models.Notification, error) {
	return nil, nil
}

func TestAuditSink_PersistsNotification(t *testing.T) {
	repo := &fakeNotifications{}
	sink := NewAuditSink(repo)

	err := sink.Deliver(context.Background(), testEvent())
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Equal(t, uint(7), repo.created[0].UserID)
	assert.Equal(t, "booking_update", repo.created[0].NotificationType)
	assert.Contains(t, repo.created[0].Message, "Booking #42")
	assert.Contains(t, repo.created[0].Message, "reserved")
}

func TestAuditSink_SkipsAnonymousBooking(t *testing.T) {
	repo := &fakeNotifications{}
	sink := NewAuditSink(repo)

	event := testEvent()
	event.UserID = nil

	assert.NoError(t, sink.Deliver(context.Background(), event))
	assert.Empty(t, repo.created)
}

// --- Broadcast sink ---

type fakeCounter struct {
	count    int64
	statuses []models.BookingStatus
	err      error
}

func (f *fakeCounter) CountByStatuses(ctx context.Context, statuses []models.BookingStatus) (int64, error) {
	f.statuses = statuses
	return f.count, f.err
}

type fakePublisher struct {
	channel  string
	payloads []any
	err      error
}

func (f *fakePublisher) Publish(channel string, payload any) error {
	if f.err != nil {
		return f.err
	}
	f.channel = channel
	f.payloads = append(f.payloads, payload)
	return nil
}

func TestBroadcastSink_RecountsAndPublishes(t *testing.T) {
	counter := &fakeCounter{count: 12}
	publisher := &fakePublisher{}
	sink := NewBroadcastSink(counter, publisher)

	err := sink.Deliver(context.Background(), testEvent())
	require.NoError(t, err)

	// Full recount over the blocking set, not an incremental delta.
	assert.Equal(t, models.BlockingStatuses, counter.statuses)
	assert.Equal(t, broadcast.AdminChannel, publisher.channel)
	require.Len(t, publisher.payloads, 1)
	assert.Equal(t, ActiveCountUpdate{Type: "active_count_update", Count: 12}, publisher.payloads[0])
}

func TestBroadcastSink_CountFailureReturnsError(t *testing.T) {
	counter := &fakeCounter{err: errors.New("db down")}
	publisher := &fakePublisher{}
	sink := NewBroadcastSink(counter, publisher)

	assert.Error(t, sink.Deliver(context.Background(), testEvent()))
	assert.Empty(t, publisher.payloads)
}

func TestBroadcastSink_NilPublisherDegradesToLogOnly(t *testing.T) {
	sink := NewBroadcastSink(&fakeCounter{count: 3}, nil)
	assert.NoError(t, sink.Deliver(context.Background(), testEvent()))
}
