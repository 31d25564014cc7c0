package entity

import "time"

// CartItem references a course from a user's cart. Course is populated
// when the cart is read; it stays nil if the course has since been
// deleted (the reference is tolerated, not cascaded).
type CartItem struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	CourseID string    `json:"courseId"`
	Course   *Course   `json:"course,omitempty"`
	AddedAt  time.Time `json:"addedAt"`
}

// CartAggregate is the admin earnings report derived by scanning every
// user's cart. It is computed on demand, never stored.
type CartAggregate struct {
	TotalCoursesSold int     `json:"totalCoursesSold"`
	TotalEarnings    float64 `json:"totalEarnings"`
}
