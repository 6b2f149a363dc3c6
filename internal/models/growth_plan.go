package models

import "time"

// GrowthPlan lists skills to build and distractions to cut.
type GrowthPlan struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	SkillsNeeded StringList `json:"skillsNeeded"`
	Distractions StringList `json:"distractions"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type CreateGrowthPlanRequest struct {
	UserID       string     `json:"userId"`
	SkillsNeeded StringList `json:"skillsNeeded"`
	Distractions StringList `json:"distractions"`
}

type UpdateGrowthPlanRequest struct {
	ID           string      `json:"id"`
	SkillsNeeded *StringList `json:"skillsNeeded,omitempty"`
	Distractions *StringList `json:"distractions,omitempty"`
}
