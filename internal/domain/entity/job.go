package entity

import "time"

// Job posting types.
const (
	JobTypeJob        = "job"
	JobTypeInternship = "internship"
)

// Job is a job or internship posting on the board.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"jobOrInternship"`
	PostedBy    string    `json:"postedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}
