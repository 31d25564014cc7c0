package entity

import "time"

// Course status values.
const (
	CourseActive = "active"
	CourseClosed = "closed"
)

// Categories the storefront navigates by. The SPA filters on these
// exact strings, so they are part of the API contract.
var CourseCategories = []string{
	"Social Media Marketing",
	"Digital Marketing",
	"Web Development",
	"App Development",
	"Graphic Designing",
}

// Course is a purchasable course listing. Charges is the price in USD.
type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Duration    string    `json:"duration"`
	Charges     float64   `json:"charges"`
	ImageURL    string    `json:"image"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ValidCategory reports whether c is one of the fixed course categories.
func ValidCategory(c string) bool {
	for _, cat := range CourseCategories {
		if cat == c {
			return true
		}
	}
	return false
}
