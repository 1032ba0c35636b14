package entity

import (
	"time"
)

type Reservation struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"user_id" db:"user_id"`
	ActivityID int64     `json:"activity_id" db:"activity_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// ReservationWithActivity carries the joined activity so the schedule
// conflict check can compare time intervals without extra lookups.
type ReservationWithActivity struct {
	Reservation
	Activity Activity `json:"activity"`
}
