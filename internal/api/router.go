package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	models "github.com/webdev-zad/laundry-system-be/internal/models"
	services "github.com/webdev-zad/laundry-system-be/internal/services"
	"go.uber.org/zap"
)

// Сервисы, доступные обработчикам. Nil сервис отключает свои маршруты.
type Services struct {
	Users     *services.UserService
	Customers *services.CustomerService
	Tasks     *services.TaskService
	Board     *services.BoardService
	Loyalty   *services.LoyaltyService
	Catalog   *services.RewardCatalog
	Tokens    *services.TokenIssuer
	Events    http.Handler // websocket
}

type LaundryHandler struct {
	router *mux.Router
	logger *zap.Logger
	Services
}

type MessageResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func NewHandler(s Services, logger *zap.Logger, clientURL string) *LaundryHandler {
	router := mux.NewRouter()
	handler := &LaundryHandler{router, logger, s}
	router.Use(MiddlewareLog(), MiddlewareCORS(clientURL))

	router.HandleFunc("/", handler.HealthHandler).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	if s.Events != nil {
		router.Handle("/ws", s.Events)
	}

	api := router.PathPrefix("/api").Subrouter()
	api.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	if s.Users != nil {
		api.HandleFunc("/users/login", handler.LoginHandler).Methods(http.MethodPost)
	}

	private := api.NewRoute().Subrouter()
	private.Use(handler.Protect)

	if s.Users != nil {
		private.HandleFunc("/users/profile", handler.ProfileHandler).Methods(http.MethodGet)
		private.HandleFunc("/users/profile", handler.UpdateProfileHandler).Methods(http.MethodPut)
		private.HandleFunc("/users", Admin(handler.RegisterHandler)).Methods(http.MethodPost)
		private.HandleFunc("/users", Admin(handler.ListUsersHandler)).Methods(http.MethodGet)
		private.HandleFunc("/users/{id}", Admin(handler.DeleteUserHandler)).Methods(http.MethodDelete)
	}
	if s.Customers != nil {
		private.HandleFunc("/customers", handler.ListCustomersHandler).Methods(http.MethodGet)
		private.HandleFunc("/customers", handler.CreateCustomerHandler).Methods(http.MethodPost)
		private.HandleFunc("/customers/{id}", handler.GetCustomerHandler).Methods(http.MethodGet)
		private.HandleFunc("/customers/{id}", handler.UpdateCustomerHandler).Methods(http.MethodPut)
		private.HandleFunc("/customers/{id}", Admin(handler.DeleteCustomerHandler)).Methods(http.MethodDelete)
	}
	if s.Tasks != nil {
		private.HandleFunc("/tasks", handler.ListTasksHandler).Methods(http.MethodGet)
		private.HandleFunc("/tasks", handler.CreateTaskHandler).Methods(http.MethodPost)
		private.HandleFunc("/tasks/{id}", handler.GetTaskHandler).Methods(http.MethodGet)
		private.HandleFunc("/tasks/{id}", handler.UpdateTaskHandler).Methods(http.MethodPut)
		private.HandleFunc("/tasks/{id}", handler.DeleteTaskHandler).Methods(http.MethodDelete)
		private.HandleFunc("/tasks/{id}/status", handler.TaskStatusHandler).Methods(http.MethodPatch)
	}
	if s.Board != nil {
		private.HandleFunc("/kanban", handler.BoardHandler).Methods(http.MethodGet)
		private.HandleFunc("/kanban/move", handler.MoveTaskHandler).Methods(http.MethodPatch)
	}
	// rewards раньше /{customerId}
	if s.Catalog != nil {
		private.HandleFunc("/loyalty/rewards", handler.RewardsHandler).Methods(http.MethodGet)
	}
	if s.Loyalty != nil {
		private.HandleFunc("/loyalty/{customerId}", handler.SummaryHandler).Methods(http.MethodGet)
		private.HandleFunc("/loyalty/{customerId}/history", handler.HistoryHandler).Methods(http.MethodGet)
		private.HandleFunc("/loyalty/{customerId}/add-points", handler.AddPointsHandler).Methods(http.MethodPost)
		private.HandleFunc("/loyalty/{customerId}/redeem", handler.RedeemHandler).Methods(http.MethodPost)
	}

	return handler
}

func (h *LaundryHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h.router.ServeHTTP(w, req)
}

func (h *LaundryHandler) Log(msg string, service string, err error) {
	h.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

func (h *LaundryHandler) HealthHandler(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Laundry Management API is running"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func readJSON(req *http.Request, v any) error {
	defer req.Body.Close()
	err := json.NewDecoder(req.Body).Decode(v)
	if err != nil {
		return fmt.Errorf("%w: body is not correct", models.ErrInvalidInput)
	}
	return nil
}

// Код ответа по виду ошибки
func StatusCode(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrVersionConflict):
		return http.StatusConflict
	case errors.Is(err, models.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (h *LaundryHandler) writeError(w http.ResponseWriter, service string, err error) {
	code := StatusCode(err)
	resp := MessageResponse{Message: err.Error()}
	switch code {
	case http.StatusInternalServerError:
		h.Log("Request failed", service, err)
		resp.Message = "Server error"
	case http.StatusServiceUnavailable:
		h.Log("Store unavailable", service, err)
		resp.Message = "Service unavailable"
	}
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		resp.Message = strings.Join(verr.Errors, "; ")
		resp.Errors = verr.Errors
	}
	writeJSON(w, code, resp)
}
