package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// WorkoutStats holds the derived summary for one or more workouts.
type WorkoutStats struct {
	ExerciseCount int           `json:"exercise_count"`
	Sets          int           `json:"sets"`
	Reps          int           `json:"reps"`
	Volume        float64       `json:"volume"`
	Distributions Distributions `json:"distributions"`
}

// Distributions breaks total weighted set counts down per muscle group.
type Distributions struct {
	SetDistribution    map[string]MuscleSets `json:"set_distribution"`
	MuscleDistribution MuscleDistribution    `json:"muscle_distribution"`
}

// MuscleSets counts weighted sets for one muscle: a set contributes 1.0 when
// the muscle is a primary mover of the exercise and 0.5 when secondary.
type MuscleSets struct {
	Primary   float64 `json:"primary"`
	Secondary float64 `json:"secondary"`
}

// MusclePercentage is one muscle's share of the total weighted sets,
// truncated toward zero.
type MusclePercentage struct {
	Muscle     string
	Percentage int
}

// MuscleDistribution is ordered descending by percentage. It marshals as a
// JSON object so the wire format stays a muscle-to-percentage mapping while
// the ordering survives.
type MuscleDistribution []MusclePercentage

// Percentage returns the share recorded for a muscle.
func (d MuscleDistribution) Percentage(muscle string) (int, bool) {
	for _, mp := range d {
		if mp.Muscle == muscle {
			return mp.Percentage, true
		}
	}
	return 0, false
}

func (d MuscleDistribution) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, mp := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(mp.Muscle)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		fmt.Fprintf(&buf, ":%d", mp.Percentage)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (d *MuscleDistribution) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("muscle distribution: expected object, got %v", tok)
	}
	out := MuscleDistribution{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		muscle, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("muscle distribution: non-string key %v", keyTok)
		}
		var pct int
		if err := dec.Decode(&pct); err != nil {
			return err
		}
		out = append(out, MusclePercentage{Muscle: muscle, Percentage: pct})
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return err
	}
	*d = out
	return nil
}
