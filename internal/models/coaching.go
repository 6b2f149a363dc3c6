package models

// InsightsRequest is the structured coaching input. Goals and MindReframe are
// optional snapshots.
type InsightsRequest struct {
	DailyLog    *DailyLog    `json:"dailyLog"`
	Goals       *Goal        `json:"goals,omitempty"`
	MindReframe *MindReframe `json:"mindReframe,omitempty"`
}

type SuggestionResponse struct {
	Suggestion string `json:"suggestion"`
}

type InsightsResponse struct {
	Insights string `json:"insights"`
}
