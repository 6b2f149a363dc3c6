package services

import (
	"context"

	"github.com/AnshRaj112/life-reset-backend/internal/models"
)

const mindReframeColumns = `id, user_id, dont_want, want, created_at`

func scanMindReframe(row rowScanner) (models.MindReframe, error) {
	var m models.MindReframe
	err := row.Scan(&m.ID, &m.UserID, &m.DontWant, &m.Want, scanTime{&m.CreatedAt})
	return m, err
}

func (s *RecordStore) ListMindReframes(ctx context.Context, userID string) ([]models.MindReframe, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	return queryAll(ctx, s, "list mind reframes", scanMindReframe,
		`SELECT `+mindReframeColumns+` FROM mind_reframes WHERE user_id = ? ORDER BY created_at DESC`, userID)
}

func (s *RecordStore) CreateMindReframe(ctx context.Context, req models.CreateMindReframeRequest) (models.MindReframe, error) {
	if err := requireUserID(req.UserID); err != nil {
		return models.MindReframe{}, err
	}

	m := models.MindReframe{
		ID:        s.newID(),
		UserID:    req.UserID,
		DontWant:  req.DontWant.OrEmpty(),
		Want:      req.Want.OrEmpty(),
		CreatedAt: s.timestamp(),
	}
	err := s.exec(ctx, "create mind reframe", `
		INSERT INTO mind_reframes (`+mindReframeColumns+`)
		VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.UserID, m.DontWant, m.Want, m.CreatedAt)
	if err != nil {
		return models.MindReframe{}, err
	}
	return m, nil
}

func (s *RecordStore) UpdateMindReframe(ctx context.Context, req models.UpdateMindReframeRequest) (models.MindReframe, error) {
	var set assignments
	if req.DontWant != nil {
		set.set("dont_want", req.DontWant.OrEmpty())
	}
	if req.Want != nil {
		set.set("want", req.Want.OrEmpty())
	}
	return updateOne(ctx, s, "update mind reframe", "mind_reframes", mindReframeColumns,
		req.ID, set, "Mind reframe not found", scanMindReframe)
}
