package models

import "time"

// MindReframe pairs the things a user wants to leave behind with what they
// want instead.
type MindReframe struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	DontWant  StringList `json:"dontWant"`
	Want      StringList `json:"want"`
	CreatedAt time.Time  `json:"createdAt"`
}

type CreateMindReframeRequest struct {
	UserID   string     `json:"userId"`
	DontWant StringList `json:"dontWant"`
	Want     StringList `json:"want"`
}

type UpdateMindReframeRequest struct {
	ID       string      `json:"id"`
	DontWant *StringList `json:"dontWant,omitempty"`
	Want     *StringList `json:"want,omitempty"`
}
