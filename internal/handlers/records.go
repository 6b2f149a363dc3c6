package handlers

import (
	"context"
	"net/http"
)

// createRecord decodes a create request, stores it and responds 201 with the
// stored record.
func createRecord[Req, Rec any](h *Handler, create func(context.Context, Req) (Rec, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		if err := decodeJSON(w, r, &req); err != nil {
			h.writeError(w, r, err)
			return
		}
		rec, err := create(r.Context(), req)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, rec)
	}
}

// updateRecord decodes a partial update and responds with the stored record.
func updateRecord[Req, Rec any](h *Handler, update func(context.Context, Req) (Rec, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		if err := decodeJSON(w, r, &req); err != nil {
			h.writeError(w, r, err)
			return
		}
		rec, err := update(r.Context(), req)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// listRecords responds with every record of one user, as a JSON array.
func listRecords[Rec any](h *Handler, list func(ctx context.Context, userID string) ([]Rec, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := list(r.Context(), r.URL.Query().Get("userId"))
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, recs)
	}
}

// GetDailyLogs handles GET /api/daily-logs?userId=&date=
func (h *Handler) GetDailyLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	logs, err := h.store.ListDailyLogs(r.Context(), q.Get("userId"), q.Get("date"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

// CreateDailyLog handles POST /api/daily-logs
func (h *Handler) CreateDailyLog(w http.ResponseWriter, r *http.Request) {
	createRecord(h, h.store.CreateDailyLog)(w, r)
}

// UpdateDailyLog handles PUT /api/daily-logs
func (h *Handler) UpdateDailyLog(w http.ResponseWriter, r *http.Request) {
	updateRecord(h, h.store.UpdateDailyLog)(w, r)
}

func (h *Handler) GetGoals(w http.ResponseWriter, r *http.Request) {
	listRecords(h, h.store.ListGoals)(w, r)
}

func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	createRecord(h, h.store.CreateGoal)(w, r)
}

func (h *Handler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	updateRecord(h, h.store.UpdateGoal)(w, r)
}

func (h *Handler) GetMindReframes(w http.ResponseWriter, r *http.Request) {
	listRecords(h, h.store.ListMindReframes)(w, r)
}

func (h *Handler) CreateMindReframe(w http.ResponseWriter, r *http.Request) {
	createRecord(h, h.store.CreateMindReframe)(w, r)
}

func (h *Handler) UpdateMindReframe(w http.ResponseWriter, r *http.Request) {
	updateRecord(h, h.store.UpdateMindReframe)(w, r)
}

// GetWeeklyReviews lists reviews newest week first.
func (h *Handler) GetWeeklyReviews(w http.ResponseWriter, r *http.Request) {
	listRecords(h, h.store.ListWeeklyReviews)(w, r)
}

func (h *Handler) CreateWeeklyReview(w http.ResponseWriter, r *http.Request) {
	createRecord(h, h.store.CreateWeeklyReview)(w, r)
}

func (h *Handler) UpdateWeeklyReview(w http.ResponseWriter, r *http.Request) {
	updateRecord(h, h.store.UpdateWeeklyReview)(w, r)
}

func (h *Handler) GetGrowthPlans(w http.ResponseWriter, r *http.Request) {
	listRecords(h, h.store.ListGrowthPlans)(w, r)
}

func (h *Handler) CreateGrowthPlan(w http.ResponseWriter, r *http.Request) {
	createRecord(h, h.store.CreateGrowthPlan)(w, r)
}

func (h *Handler) UpdateGrowthPlan(w http.ResponseWriter, r *http.Request) {
	updateRecord(h, h.store.UpdateGrowthPlan)(w, r)
}
