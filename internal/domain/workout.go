package domain

import "liftinglog/lifting-log/internal/calendar"

// Workout is a dated log of performed exercise entries. Stats is derived on
// every read and never persisted.
type Workout struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Username    string          `json:"username,omitempty"`
	Description *string         `json:"description,omitempty"`
	Date        calendar.Date   `json:"date"`
	StartTime   string          `json:"start_time"`
	Duration    string          `json:"duration"`
	Entries     []ExerciseEntry `json:"exercise_entries"`
	Stats       *WorkoutStats   `json:"stats,omitempty"`
}

// ExerciseEntry is one exercise performed within a workout, in display order.
type ExerciseEntry struct {
	ID           int64      `json:"-"`
	ExerciseID   int64      `json:"exercise_id"`
	ExerciseName string     `json:"exercise_name,omitempty"`
	Description  *string    `json:"description,omitempty"`
	SetEntries   []SetEntry `json:"set_entries"`
}

// SetEntry is one performed unit of work. Exactly the fields matching the
// exercise's declared axes are populated; the rest stay nil.
type SetEntry struct {
	Weight *float64 `json:"weight,omitempty"`
	Reps   *int     `json:"reps,omitempty"`
	Time   *string  `json:"time,omitempty"`
}
