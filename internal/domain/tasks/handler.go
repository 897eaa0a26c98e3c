package tasks

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/owners/{ownerID}/tasks", createTaskHandler(svc))
	r.Get("/owners/{ownerID}/tasks", listTasksHandler(svc))

	// Registro directo (sin subrouter): el módulo de scheduling también
	// cuelga rutas bajo /tasks/{taskID}.
	r.Get("/tasks/{taskID}", getTaskHandler(svc))
	r.Delete("/tasks/{taskID}", deleteTaskHandler(svc))
}

type createTaskRequest struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	Priority        int    `json:"priority"`
	Category        string `json:"category"`
	PetID           string `json:"pet_id"`
	ScheduledTime   string `json:"scheduled_time"` // HH:MM opcional
	Frequency       string `json:"frequency"`      // default once
	DueDate         string `json:"due_date"`       // YYYY-MM-DD opcional
}

// TaskResponse es el render JSON de una tarea. Exportado porque el módulo
// de scheduling devuelve tareas en sus propias respuestas.
type TaskResponse struct {
	ID              string     `json:"id"`
	OwnerID         string     `json:"owner_id"`
	PetID           string     `json:"pet_id"`
	Name            string     `json:"name"`
	DurationMinutes int        `json:"duration_minutes"`
	Priority        int        `json:"priority"`
	Category        string     `json:"category"`
	Completed       bool       `json:"completed"`
	ScheduledTime   string     `json:"scheduled_time,omitempty"`
	EndTime         string     `json:"end_time,omitempty"`
	Frequency       string     `json:"frequency"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func ToTaskResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:              t.ID,
		OwnerID:         t.OwnerID,
		PetID:           t.PetID,
		Name:            t.Name,
		DurationMinutes: t.DurationMinutes,
		Priority:        t.Priority,
		Category:        string(t.Category),
		Completed:       t.Completed,
		Frequency:       string(t.Frequency),
		DueDate:         t.DueDate,
		CreatedAt:       t.CreatedAt,
	}
	if t.ScheduledTime != nil {
		resp.ScheduledTime = t.ScheduledTime.String()
		if end, ok := t.EndTime(); ok {
			resp.EndTime = end.String()
		}
	}
	return resp
}

func createTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var due *time.Time
		if strings.TrimSpace(req.DueDate) != "" {
			d, err := time.Parse("2006-01-02", req.DueDate)
			if err != nil {
				http.Error(w, "due_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			due = &d
		}

		t, err := svc.Create(r.Context(), chi.URLParam(r, "ownerID"), CreateInput{
			Name:            req.Name,
			DurationMinutes: req.DurationMinutes,
			Priority:        req.Priority,
			Category:        Category(strings.TrimSpace(req.Category)),
			PetID:           req.PetID,
			ScheduledTime:   req.ScheduledTime,
			Frequency:       Frequency(strings.TrimSpace(req.Frequency)),
			DueDate:         due,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, ToTaskResponse(t))
	}
}

func listTasksHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		f := ListFilter{
			PetID:      q.Get("pet_id"),
			Incomplete: q.Get("incomplete") == "true",
		}
		if c := strings.TrimSpace(q.Get("category")); c != "" {
			cat := Category(c)
			if !cat.Valid() {
				http.Error(w, ErrInvalidCategory.Error(), http.StatusBadRequest)
				return
			}
			f.Category = cat
		}

		items, err := svc.ListByOwner(r.Context(), chi.URLParam(r, "ownerID"), f)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]TaskResponse, 0, len(items))
		for _, t := range items {
			out = append(out, ToTaskResponse(t))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.GetByID(r.Context(), chi.URLParam(r, "taskID"))
		if err != nil {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, ToTaskResponse(t))
	}
}

func deleteTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Remove(r.Context(), chi.URLParam(r, "taskID")); err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// writeJSON duplicado adrede por módulo (ver nota en owners/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
