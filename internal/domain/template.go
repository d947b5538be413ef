package domain

// WorkoutTemplate is a reusable planned routine. It mirrors the Workout tree
// but carries target ranges instead of performed values.
type WorkoutTemplate struct {
	ID                int64              `json:"id"`
	Name              string             `json:"name"`
	Username          string             `json:"username,omitempty"`
	ExerciseTemplates []ExerciseTemplate `json:"exercise_templates"`
}

type ExerciseTemplate struct {
	ID           int64         `json:"-"`
	ExerciseID   int64         `json:"exercise_id"`
	ExerciseName string        `json:"exercise_name,omitempty"`
	RoutineNote  *string       `json:"routine_note,omitempty"`
	SetTemplates []SetTemplate `json:"set_templates"`
}

// SetTemplate describes one planned set. Either a fixed rep count or a rep
// range may be given when the exercise supports reps; time ranges only when it
// supports time.
type SetTemplate struct {
	Reps           *int    `json:"reps,omitempty"`
	RepRangeStart  *int    `json:"rep_range_start,omitempty"`
	RepRangeEnd    *int    `json:"rep_range_end,omitempty"`
	TimeRangeStart *string `json:"time_range_start,omitempty"`
	TimeRangeEnd   *string `json:"time_range_end,omitempty"`
}
