package services

import (
	"context"

	"github.com/AnshRaj112/life-reset-backend/internal/models"
)

const weeklyReviewColumns = `id, user_id, week_start, went_well, not_well, gratitude, goal, focus_projects, created_at`

func scanWeeklyReview(row rowScanner) (models.WeeklyReview, error) {
	var w models.WeeklyReview
	err := row.Scan(&w.ID, &w.UserID, &w.WeekStart, &w.WentWell, &w.NotWell,
		&w.Gratitude, &w.Goal, &w.FocusProjects, scanTime{&w.CreatedAt})
	return w, err
}

// ListWeeklyReviews returns the user's reviews, latest week first.
func (s *RecordStore) ListWeeklyReviews(ctx context.Context, userID string) ([]models.WeeklyReview, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	return queryAll(ctx, s, "list weekly reviews", scanWeeklyReview,
		`SELECT `+weeklyReviewColumns+` FROM weekly_reviews WHERE user_id = ?
		ORDER BY week_start DESC, created_at DESC`, userID)
}

func (s *RecordStore) CreateWeeklyReview(ctx context.Context, req models.CreateWeeklyReviewRequest) (models.WeeklyReview, error) {
	if err := requireUserID(req.UserID); err != nil {
		return models.WeeklyReview{}, err
	}
	weekStart, err := normalizeDate("Week start", req.WeekStart)
	if err != nil {
		return models.WeeklyReview{}, err
	}

	w := models.WeeklyReview{
		ID:            s.newID(),
		UserID:        req.UserID,
		WeekStart:     weekStart,
		WentWell:      req.WentWell,
		NotWell:       req.NotWell,
		Gratitude:     req.Gratitude,
		Goal:          req.Goal,
		FocusProjects: req.FocusProjects,
		CreatedAt:     s.timestamp(),
	}
	err = s.exec(ctx, "create weekly review", `
		INSERT INTO weekly_reviews (`+weeklyReviewColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID, w.UserID, w.WeekStart, w.WentWell, w.NotWell, w.Gratitude, w.Goal, w.FocusProjects, w.CreatedAt)
	if err != nil {
		return models.WeeklyReview{}, err
	}
	return w, nil
}

func (s *RecordStore) UpdateWeeklyReview(ctx context.Context, req models.UpdateWeeklyReviewRequest) (models.WeeklyReview, error) {
	var set assignments
	if req.WentWell != nil {
		set.set("went_well", *req.WentWell)
	}
	if req.NotWell != nil {
		set.set("not_well", *req.NotWell)
	}
	if req.Gratitude != nil {
		set.set("gratitude", *req.Gratitude)
	}
	if req.Goal != nil {
		set.set("goal", *req.Goal)
	}
	if req.FocusProjects != nil {
		set.set("focus_projects", *req.FocusProjects)
	}
	return updateOne(ctx, s, "update weekly review", "weekly_reviews", weeklyReviewColumns,
		req.ID, set, "Weekly review not found", scanWeeklyReview)
}
