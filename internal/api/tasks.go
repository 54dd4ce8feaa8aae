package api

import (
	"net/http"

	"github.com/gorilla/mux"
	models "github.com/webdev-zad/laundry-system-be/internal/models"
)

type StatusRequest struct {
	Status string `json:"status"`
}

// Фильтр: status, priority, customerId, assignedToId
func (h *LaundryHandler) ListTasksHandler(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	filter := models.TaskFilter{
		Status:       models.Status(q.Get("status")),
		Priority:     models.Priority(q.Get("priority")),
		CustomerID:   q.Get("customerId"),
		AssignedToID: q.Get("assignedToId"),
	}
	tasks, err := h.Tasks.List(req.Context(), filter)
	if err != nil {
		h.writeError(w, "ListTasksHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *LaundryHandler) GetTaskHandler(w http.ResponseWriter, req *http.Request) {
	task, err := h.Tasks.Get(req.Context(), mux.Vars(req)["id"])
	if err != nil {
		h.writeError(w, "GetTaskHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *LaundryHandler) CreateTaskHandler(w http.ResponseWriter, req *http.Request) {
	var in models.TaskUpdate
	err := readJSON(req, &in)
	if err != nil {
		h.writeError(w, "CreateTaskHandler", err)
		return
	}
	task, err := h.Tasks.Create(req.Context(), in)
	if err != nil {
		h.writeError(w, "CreateTaskHandler", err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (h *LaundryHandler) UpdateTaskHandler(w http.ResponseWriter, req *http.Request) {
	var in models.TaskUpdate
	err := readJSON(req, &in)
	if err != nil {
		h.writeError(w, "UpdateTaskHandler", err)
		return
	}
	task, err := h.Tasks.Update(req.Context(), mux.Vars(req)["id"], in)
	if err != nil {
		h.writeError(w, "UpdateTaskHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *LaundryHandler) DeleteTaskHandler(w http.ResponseWriter, req *http.Request) {
	err := h.Tasks.Delete(req.Context(), mux.Vars(req)["id"])
	if err != nil {
		h.writeError(w, "DeleteTaskHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Task removed"})
}

func (h *LaundryHandler) TaskStatusHandler(w http.ResponseWriter, req *http.Request) {
	var in StatusRequest
	err := readJSON(req, &in)
	if err != nil {
		h.writeError(w, "TaskStatusHandler", err)
		return
	}
	task, err := h.Tasks.UpdateStatus(req.Context(), mux.Vars(req)["id"], in.Status)
	if err != nil {
		h.writeError(w, "TaskStatusHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}
