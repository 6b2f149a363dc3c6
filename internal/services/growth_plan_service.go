package services

import (
	"context"

	"github.com/AnshRaj112/life-reset-backend/internal/models"
)

const growthPlanColumns = `id, user_id, skills_needed, distractions, created_at`

func scanGrowthPlan(row rowScanner) (models.GrowthPlan, error) {
	var g models.GrowthPlan
	err := row.Scan(&g.ID, &g.UserID, &g.SkillsNeeded, &g.Distractions, scanTime{&g.CreatedAt})
	return g, err
}

func (s *RecordStore) ListGrowthPlans(ctx context.Context, userID string) ([]models.GrowthPlan, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	return queryAll(ctx, s, "list growth plans", scanGrowthPlan,
		`SELECT `+growthPlanColumns+` FROM growth_plans WHERE user_id = ? ORDER BY created_at DESC`, userID)
}

func (s *RecordStore) CreateGrowthPlan(ctx context.Context, req models.CreateGrowthPlanRequest) (models.GrowthPlan, error) {
	if err := requireUserID(req.UserID); err != nil {
		return models.GrowthPlan{}, err
	}

	g := models.GrowthPlan{
		ID:           s.newID(),
		UserID:       req.UserID,
		SkillsNeeded: req.SkillsNeeded.OrEmpty(),
		Distractions: req.Distractions.OrEmpty(),
		CreatedAt:    s.timestamp(),
	}
	err := s.exec(ctx, "create growth plan", `
		INSERT INTO growth_plans (`+growthPlanColumns+`)
		VALUES (?, ?, ?, ?, ?)`,
		g.ID, g.UserID, g.SkillsNeeded, g.Distractions, g.CreatedAt)
	if err != nil {
		return models.GrowthPlan{}, err
	}
	return g, nil
}

func (s *RecordStore) UpdateGrowthPlan(ctx context.Context, req models.UpdateGrowthPlanRequest) (models.GrowthPlan, error) {
	var set assignments
	if req.SkillsNeeded != nil {
		set.set("skills_needed", req.SkillsNeeded.OrEmpty())
	}
	if req.Distractions != nil {
		set.set("distractions", req.Distractions.OrEmpty())
	}
	return updateOne(ctx, s, "update growth plan", "growth_plans", growthPlanColumns,
		req.ID, set, "Growth plan not found", scanGrowthPlan)
}
