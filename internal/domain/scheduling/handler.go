package scheduling

import (
	"encoding/json"
	"net/http"

	"pet-care-planner/internal/domain/tasks"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, sched *Scheduler) {
	r.Post("/owners/{ownerID}/plan", generatePlanHandler(sched))
	r.Get("/owners/{ownerID}/plan", getPlanHandler(sched))
	r.Get("/owners/{ownerID}/plan/explanation", explainHandler(sched))

	r.Get("/owners/{ownerID}/tasks/prioritized", prioritizedHandler(sched))
	r.Get("/owners/{ownerID}/tasks/by-time", byTimeHandler(sched))

	r.Get("/owners/{ownerID}/conflicts", conflictsHandler(sched))
	r.Get("/owners/{ownerID}/conflicts/warnings", conflictWarningsHandler(sched))

	r.Post("/tasks/{taskID}/complete", completeTaskHandler(sched))
}

type planResponse struct {
	Generated        bool                 `json:"generated"`
	Tasks            []tasks.TaskResponse `json:"tasks"`
	TotalMinutes     int                  `json:"total_minutes"`
	AvailableMinutes int                  `json:"available_minutes"`
}

type conflictResponse struct {
	Task1       tasks.TaskResponse `json:"task1"`
	Task2       tasks.TaskResponse `json:"task2"`
	Description string             `json:"description"`
}

type completeResponse struct {
	Task      tasks.TaskResponse  `json:"task"`
	Successor *tasks.TaskResponse `json:"successor"`
}

func toPlanResponse(p Plan, generated bool) planResponse {
	return planResponse{
		Generated:        generated,
		Tasks:            toTaskResponses(p.Tasks),
		TotalMinutes:     p.TotalMinutes,
		AvailableMinutes: p.AvailableMinutes,
	}
}

func toTaskResponses(ts []tasks.Task) []tasks.TaskResponse {
	out := make([]tasks.TaskResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, tasks.ToTaskResponse(t))
	}
	return out
}

func generatePlanHandler(sched *Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan, err := sched.GeneratePlan(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			http.Error(w, "owner not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toPlanResponse(plan, true))
	}
}

func getPlanHandler(sched *Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan, ok := sched.Schedule(chi.URLParam(r, "ownerID"))
		writeJSON(w, http.StatusOK, toPlanResponse(plan, ok))
	}
}

func explainHandler(sched *Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, err := sched.ExplainReasoning(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			http.Error(w, "owner not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"explanation": text})
	}
}

func prioritizedHandler(sched *Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ts, err := sched.PrioritizeTasks(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toTaskResponses(ts))
	}
}

func byTimeHandler(sched *Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ts, err := sched.SortByTime(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toTaskResponses(ts))
	}
}

func conflictsHandler(sched *Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conflicts, err := sched.DetectConflicts(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]conflictResponse, 0, len(conflicts))
		for _, c := range conflicts {
			out = append(out, conflictResponse{
				Task1:       tasks.ToTaskResponse(c.First),
				Task2:       tasks.ToTaskResponse(c.Second),
				Description: c.Description(),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func conflictWarningsHandler(sched *Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		warnings, err := sched.ConflictWarnings(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"warnings": warnings})
	}
}

func completeTaskHandler(sched *Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, succ, err := sched.MarkComplete(r.Context(), chi.URLParam(r, "taskID"))
		if err != nil {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}

		resp := completeResponse{Task: tasks.ToTaskResponse(t)}
		if succ != nil {
			sr := tasks.ToTaskResponse(*succ)
			resp.Successor = &sr
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// writeJSON duplicado adrede por módulo (ver nota en owners/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
