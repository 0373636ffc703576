package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

func marshal(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("realtime marshal: %w", err)
	}
	return data, nil
}

// BookingUpdate is the payload mobile clients subscribe to.
type BookingUpdate struct {
	BookingID uint           `json:"booking_id"`
	UserID    *uint          `json:"user_id,omitempty"`
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Data      map[string]any `json:"data,omitempty"`
}

// SendBookingUpdate is the high-level helper the dispatcher calls before the
// raw mirror writes. It duplicates part of the mirror data under a summary
// key; both paths are independently best-effort.
func (s *Store) SendBookingUpdate(ctx context.Context, update BookingUpdate) error {
	update.Timestamp = time.Now().Format(time.RFC3339)

	path := Key("booking_status", strconv.FormatUint(uint64(update.BookingID), 10))
	if err := s.Write(ctx, path, update); err != nil {
		return err
	}

	if update.UserID != nil {
		userPath := Key("user_status", "user_"+strconv.FormatUint(uint64(*update.UserID), 10))
		if err := s.Write(ctx, userPath, update); err != nil {
			return err
		}
	}
	return nil
}
