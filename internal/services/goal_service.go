package services

import (
	"context"

	"github.com/AnshRaj112/life-reset-backend/internal/models"
)

const goalColumns = `id, user_id, ten_year_goal, one_year_goal, three_month_goal, created_at`

func scanGoal(row rowScanner) (models.Goal, error) {
	var g models.Goal
	err := row.Scan(&g.ID, &g.UserID, &g.TenYearGoal, &g.OneYearGoal, &g.ThreeMonthGoal, scanTime{&g.CreatedAt})
	return g, err
}

// ListGoals returns every goal snapshot for the user, most recent first.
func (s *RecordStore) ListGoals(ctx context.Context, userID string) ([]models.Goal, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	return queryAll(ctx, s, "list goals", scanGoal,
		`SELECT `+goalColumns+` FROM goals WHERE user_id = ? ORDER BY created_at DESC`, userID)
}

func (s *RecordStore) CreateGoal(ctx context.Context, req models.CreateGoalRequest) (models.Goal, error) {
	if err := requireUserID(req.UserID); err != nil {
		return models.Goal{}, err
	}

	g := models.Goal{
		ID:             s.newID(),
		UserID:         req.UserID,
		TenYearGoal:    req.TenYearGoal,
		OneYearGoal:    req.OneYearGoal,
		ThreeMonthGoal: req.ThreeMonthGoal,
		CreatedAt:      s.timestamp(),
	}
	err := s.exec(ctx, "create goal", `
		INSERT INTO goals (`+goalColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)`,
		g.ID, g.UserID, g.TenYearGoal, g.OneYearGoal, g.ThreeMonthGoal, g.CreatedAt)
	if err != nil {
		return models.Goal{}, err
	}
	return g, nil
}

func (s *RecordStore) UpdateGoal(ctx context.Context, req models.UpdateGoalRequest) (models.Goal, error) {
	var set assignments
	if req.TenYearGoal != nil {
		set.set("ten_year_goal", *req.TenYearGoal)
	}
	if req.OneYearGoal != nil {
		set.set("one_year_goal", *req.OneYearGoal)
	}
	if req.ThreeMonthGoal != nil {
		set.set("three_month_goal", *req.ThreeMonthGoal)
	}
	return updateOne(ctx, s, "update goal", "goals", goalColumns, req.ID, set, "Goal not found", scanGoal)
}
