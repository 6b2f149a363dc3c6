package models

import "time"

// Goal is a snapshot of the user's goals at three horizons. The most recent
// snapshot is the current one.
type Goal struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	TenYearGoal    string    `json:"tenYearGoal"`
	OneYearGoal    string    `json:"oneYearGoal"`
	ThreeMonthGoal string    `json:"threeMonthGoal"`
	CreatedAt      time.Time `json:"createdAt"`
}

type CreateGoalRequest struct {
	UserID         string `json:"userId"`
	TenYearGoal    string `json:"tenYearGoal"`
	OneYearGoal    string `json:"oneYearGoal"`
	ThreeMonthGoal string `json:"threeMonthGoal"`
}

type UpdateGoalRequest struct {
	ID             string  `json:"id"`
	TenYearGoal    *string `json:"tenYearGoal,omitempty"`
	OneYearGoal    *string `json:"oneYearGoal,omitempty"`
	ThreeMonthGoal *string `json:"threeMonthGoal,omitempty"`
}
