package services

import (
	"context"
	"strings"

	"github.com/AnshRaj112/life-reset-backend/internal/models"
)

const dailyLogColumns = `id, user_id, date, morning_activities, afternoon_activities, night_activities, feelings, ai_recommendations, created_at`

func scanDailyLog(row rowScanner) (models.DailyLog, error) {
	var l models.DailyLog
	err := row.Scan(&l.ID, &l.UserID, &l.Date,
		&l.MorningActivities, &l.AfternoonActivities, &l.NightActivities,
		&l.Feelings, &l.AIRecommendations, scanTime{&l.CreatedAt})
	return l, err
}

// ListDailyLogs returns up to DailyLogListLimit logs for the user, newest date
// first. A non-empty date restricts the result to that exact day.
func (s *RecordStore) ListDailyLogs(ctx context.Context, userID, date string) ([]models.DailyLog, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}

	query := `SELECT ` + dailyLogColumns + ` FROM daily_logs WHERE user_id = ?`
	args := []interface{}{userID}
	if strings.TrimSpace(date) != "" {
		day, err := normalizeDate("Date", date)
		if err != nil {
			return nil, err
		}
		query += ` AND date = ?`
		args = append(args, day)
	}
	query += ` ORDER BY date DESC, created_at DESC LIMIT ?`
	args = append(args, DailyLogListLimit)

	return queryAll(ctx, s, "list daily logs", scanDailyLog, query, args...)
}

// CreateDailyLog stores a new log. Several logs for the same day are allowed.
func (s *RecordStore) CreateDailyLog(ctx context.Context, req models.CreateDailyLogRequest) (models.DailyLog, error) {
	if err := requireUserID(req.UserID); err != nil {
		return models.DailyLog{}, err
	}
	day, err := normalizeDate("Date", req.Date)
	if err != nil {
		return models.DailyLog{}, err
	}

	l := models.DailyLog{
		ID:                  s.newID(),
		UserID:              req.UserID,
		Date:                day,
		MorningActivities:   req.MorningActivities.OrEmpty(),
		AfternoonActivities: req.AfternoonActivities.OrEmpty(),
		NightActivities:     req.NightActivities.OrEmpty(),
		Feelings:            req.Feelings,
		AIRecommendations:   req.AIRecommendations.OrEmpty(),
		CreatedAt:           s.timestamp(),
	}

	err = s.exec(ctx, "create daily log", `
		INSERT INTO daily_logs (`+dailyLogColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.UserID, l.Date, l.MorningActivities, l.AfternoonActivities,
		l.NightActivities, l.Feelings, l.AIRecommendations, l.CreatedAt)
	if err != nil {
		return models.DailyLog{}, err
	}
	return l, nil
}

// UpdateDailyLog overwrites only the fields present in req.
func (s *RecordStore) UpdateDailyLog(ctx context.Context, req models.UpdateDailyLogRequest) (models.DailyLog, error) {
	var set assignments
	if req.MorningActivities != nil {
		set.set("morning_activities", req.MorningActivities.OrEmpty())
	}
	if req.AfternoonActivities != nil {
		set.set("afternoon_activities", req.AfternoonActivities.OrEmpty())
	}
	if req.NightActivities != nil {
		set.set("night_activities", req.NightActivities.OrEmpty())
	}
	if req.Feelings != nil {
		set.set("feelings", *req.Feelings)
	}
	if req.AIRecommendations != nil {
		set.set("ai_recommendations", req.AIRecommendations.OrEmpty())
	}

	return updateOne(ctx, s, "update daily log", "daily_logs", dailyLogColumns,
		req.ID, set, "Daily log not found", scanDailyLog)
}
