package entity

import "errors"

var (
	// Activity errors
	ErrActivityNotFound = errors.New("activity not found")
	ErrNoRooms          = errors.New("no rooms left for this activity")
	ErrInvalidInterval  = errors.New("activity must start before it ends")

	// Reservation errors
	ErrAlreadyEnrolled    = errors.New("user is already enrolled in this activity")
	ErrScheduleConflict   = errors.New("user is already enrolled in an activity at the same time")
	ErrReservationMissing = errors.New("reservation not found")

	// Place errors
	ErrPlaceNotFound = errors.New("place not found")
	ErrUnknownPlace  = errors.New("activity references an unknown place")

	// General errors
	ErrInvalidInput = errors.New("invalid input")
)
