package entity

// ActivitySlot is the trimmed activity view used in day agendas:
// raw timestamps are replaced with local "HH:MM" times.
type ActivitySlot struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	StartsAt string `json:"starts_at"`
	EndsAt   string `json:"ends_at"`
	Rooms    int    `json:"rooms"`
}

// PlaceAgenda groups one day's activities under a place. Places with no
// activities that day still get a group with an empty list.
type PlaceAgenda struct {
	Name       string         `json:"name"`
	Activities []ActivitySlot `json:"activities"`
}

// EventSummary is the whole-event aggregate: calendar span plus the sum of
// active hours across all days. Never persisted, computed on demand.
type EventSummary struct {
	Year       int     `json:"year"`
	StartDay   int     `json:"start_day"`
	StartMonth int     `json:"start_month"`
	EndDay     int     `json:"end_day"`
	EndMonth   int     `json:"end_month"`
	TotalHours float64 `json:"total_hours"`
}
