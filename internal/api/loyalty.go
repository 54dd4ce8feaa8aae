package api

import (
	"net/http"
	"slices"

	"github.com/gorilla/mux"
	models "github.com/webdev-zad/laundry-system-be/internal/models"
)

type AddPointsRequest struct {
	Points int64 `json:"points"`
}

type RedeemRequest struct {
	RewardID string `json:"rewardId"`
}

// Активные награды
func (h *LaundryHandler) RewardsHandler(w http.ResponseWriter, req *http.Request) {
	seq, err := h.Catalog.ListActive(req.Context())
	if err != nil {
		h.writeError(w, "RewardsHandler", err)
		return
	}
	rewards := slices.Collect(seq)
	if rewards == nil {
		rewards = []models.Reward{}
	}
	writeJSON(w, http.StatusOK, rewards)
}

// Сводка, счет создается при первом обращении
func (h *LaundryHandler) SummaryHandler(w http.ResponseWriter, req *http.Request) {
	summary, err := h.Loyalty.SummaryOrCreate(req.Context(), mux.Vars(req)["customerId"])
	if err != nil {
		h.writeError(w, "SummaryHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *LaundryHandler) HistoryHandler(w http.ResponseWriter, req *http.Request) {
	history, err := h.Loyalty.History(req.Context(), mux.Vars(req)["customerId"])
	if err != nil {
		h.writeError(w, "HistoryHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

func (h *LaundryHandler) AddPointsHandler(w http.ResponseWriter, req *http.Request) {
	var in AddPointsRequest
	err := readJSON(req, &in)
	if err != nil {
		h.writeError(w, "AddPointsHandler", err)
		return
	}
	account, err := h.Loyalty.AddPoints(req.Context(), mux.Vars(req)["customerId"], in.Points)
	if err != nil {
		h.writeError(w, "AddPointsHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (h *LaundryHandler) RedeemHandler(w http.ResponseWriter, req *http.Request) {
	var in RedeemRequest
	err := readJSON(req, &in)
	if err != nil {
		h.writeError(w, "RedeemHandler", err)
		return
	}
	if in.RewardID == "" {
		h.writeError(w, "RedeemHandler", &models.ValidationError{Errors: []string{"Reward ID is required"}})
		return
	}
	redeemed, err := h.Loyalty.Redeem(req.Context(), mux.Vars(req)["customerId"], in.RewardID)
	if err != nil {
		h.writeError(w, "RedeemHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, redeemed)
}
