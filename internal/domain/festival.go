package domain

import "time"

// Festival is a calendar-anchored event with an associated hashtag bundle.
// Generation and the trending dashboard surface festivals whose date falls
// within the next 30 days and whose Active flag is set.
type Festival struct {
	ID          int64     `json:"-"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Hashtags    []string  `json:"hashtags"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
}

// FestivalWindow is the number of days ahead a festival is considered current.
const FestivalWindow = 30 * 24 * time.Hour
