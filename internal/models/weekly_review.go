package models

import "time"

type WeeklyReview struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	WeekStart     string    `json:"weekStart"`
	WentWell      string    `json:"wentWell"`
	NotWell       string    `json:"notWell"`
	Gratitude     string    `json:"gratitude"`
	Goal          string    `json:"goal"`
	FocusProjects string    `json:"focusProjects"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CreateWeeklyReviewRequest struct {
	UserID        string `json:"userId"`
	WeekStart     string `json:"weekStart"`
	WentWell      string `json:"wentWell"`
	NotWell       string `json:"notWell"`
	Gratitude     string `json:"gratitude"`
	Goal          string `json:"goal"`
	FocusProjects string `json:"focusProjects"`
}

type UpdateWeeklyReviewRequest struct {
	ID            string  `json:"id"`
	WentWell      *string `json:"wentWell,omitempty"`
	NotWell       *string `json:"notWell,omitempty"`
	Gratitude     *string `json:"gratitude,omitempty"`
	Goal          *string `json:"goal,omitempty"`
	FocusProjects *string `json:"focusProjects,omitempty"`
}
