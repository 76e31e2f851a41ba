package report

import (
	"time"

	"gym_schedule_bot/internal/domain/schedule"
)

// DateLayout is the date key used in documents and history rows.
const DateLayout = "2006-01-02"

// Metrics are post-workout numbers delivered by an external device
// payload. Unlike roster counts these arrive as numbers, not scraped
// text, so they are typed as such.
type Metrics struct {
	DurationMinutes int
	Calories        int
	AvgHeartRate    int
	MaxHeartRate    int
}

// PostWorkout is the analysis sub-record merged into a run document after
// a completed session.
type PostWorkout struct {
	Completed       bool   `json:"completed"`
	DurationMinutes int    `json:"duration_minutes"`
	Calories        int    `json:"calories"`
	AvgHeartRate    int    `json:"avg_hr"`
	MaxHeartRate    int    `json:"max_hr"`
	Recap           string `json:"recap,omitempty"`
}

// Document is the structured record written once per daily run.
type Document struct {
	Date     string                     `json:"date"`
	Day      string                     `json:"day"`
	Workout  string                     `json:"workout"`
	Advice   string                     `json:"advice,omitempty"`
	Today    schedule.EnrollmentStatus  `json:"today"`
	Tomorrow schedule.EnrollmentStatus  `json:"tomorrow"`
	Roster   []schedule.CalendarEntry   `json:"roster,omitempty"`
	// PostWorkout is written by the analyze flow. A daily run finding an
	// existing same-dated record carries it forward untouched.
	PostWorkout *PostWorkout `json:"post_workout,omitempty"`
}

// RunRecord is one row in the optional relational run log.
type RunRecord struct {
	ID        int64
	RunDate   time.Time
	Day       string
	Workout   string
	Advice    string
	Outcome   string
	CreatedAt time.Time
}
