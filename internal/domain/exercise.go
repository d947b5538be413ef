package domain

// Exercise is a single entry of the exercise catalog. A nil Username marks a
// default exercise visible to every account; otherwise the exercise belongs to
// exactly one user.
//
// Weight, Reps and Time declare which measurement axes a performed set of this
// exercise must populate. At least one of them has to be true.
type Exercise struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Username         *string  `json:"username,omitempty"`
	Description      *string  `json:"description,omitempty"`
	Weight           bool     `json:"weight"`
	Reps             bool     `json:"reps"`
	Time             bool     `json:"time"`
	PrimaryMuscles   []string `json:"primary_muscles"`
	SecondaryMuscles []string `json:"secondary_muscles,omitempty"`

	// MediaKey is the object key of an uploaded demonstration clip, if any.
	// Never serialized; clients go through the presigned URL endpoints.
	MediaKey *string `json:"-"`
}

// IsDefault reports whether the exercise is part of the global catalog.
func (e *Exercise) IsDefault() bool {
	return e.Username == nil
}

// HasAxis reports whether any measurement axis is declared at all.
func (e *Exercise) HasAxis() bool {
	return e.Weight || e.Reps || e.Time
}
