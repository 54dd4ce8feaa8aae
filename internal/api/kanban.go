package api

import (
	"net/http"

	models "github.com/webdev-zad/laundry-system-be/internal/models"
)

type MoveRequest struct {
	TaskID    string `json:"taskId"`
	NewStatus string `json:"newStatus"`
}

// Доска по колонкам
func (h *LaundryHandler) BoardHandler(w http.ResponseWriter, req *http.Request) {
	board, err := h.Board.Board(req.Context())
	if err != nil {
		h.writeError(w, "BoardHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func (h *LaundryHandler) MoveTaskHandler(w http.ResponseWriter, req *http.Request) {
	var in MoveRequest
	err := readJSON(req, &in)
	if err != nil {
		h.writeError(w, "MoveTaskHandler", err)
		return
	}
	if in.TaskID == "" || in.NewStatus == "" {
		h.writeError(w, "MoveTaskHandler", &models.ValidationError{Errors: []string{"Task ID and new status are required"}})
		return
	}
	task, err := h.Board.MoveTask(req.Context(), in.TaskID, in.NewStatus)
	if err != nil {
		h.writeError(w, "MoveTaskHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}
