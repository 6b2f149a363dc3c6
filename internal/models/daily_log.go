package models

import "time"

// DailyLog is one day's reflection: activities by part of day, feelings and
// the coaching suggestions the user chose to keep.
type DailyLog struct {
	ID                  string     `json:"id"`
	UserID              string     `json:"userId"`
	Date                string     `json:"date"`
	MorningActivities   StringList `json:"morningActivities"`
	AfternoonActivities StringList `json:"afternoonActivities"`
	NightActivities     StringList `json:"nightActivities"`
	Feelings            string     `json:"feelings"`
	AIRecommendations   StringList `json:"aiRecommendations"`
	CreatedAt           time.Time  `json:"createdAt"`
}

type CreateDailyLogRequest struct {
	UserID              string     `json:"userId"`
	Date                string     `json:"date"`
	MorningActivities   StringList `json:"morningActivities"`
	AfternoonActivities StringList `json:"afternoonActivities"`
	NightActivities     StringList `json:"nightActivities"`
	Feelings            string     `json:"feelings"`
	AIRecommendations   StringList `json:"aiRecommendations"`
}

// UpdateDailyLogRequest only applies the fields that are non-nil.
type UpdateDailyLogRequest struct {
	ID                  string      `json:"id"`
	MorningActivities   *StringList `json:"morningActivities,omitempty"`
	AfternoonActivities *StringList `json:"afternoonActivities,omitempty"`
	NightActivities     *StringList `json:"nightActivities,omitempty"`
	Feelings            *string     `json:"feelings,omitempty"`
	AIRecommendations   *StringList `json:"aiRecommendations,omitempty"`
}
