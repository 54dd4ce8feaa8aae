package api

import (
	"net/http"

	"github.com/gorilla/mux"
	models "github.com/webdev-zad/laundry-system-be/internal/models"
)

type CustomerRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	RoomNumber string `json:"roomNumber"`
}

func (c CustomerRequest) customer() models.Customer {
	return models.Customer{Name: c.Name, Email: c.Email, Phone: c.Phone, RoomNumber: c.RoomNumber}
}

// Клиенты с количеством задач
func (h *LaundryHandler) ListCustomersHandler(w http.ResponseWriter, req *http.Request) {
	customers, err := h.Customers.List(req.Context())
	if err != nil {
		h.writeError(w, "ListCustomersHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func (h *LaundryHandler) GetCustomerHandler(w http.ResponseWriter, req *http.Request) {
	customer, err := h.Customers.Get(req.Context(), mux.Vars(req)["id"])
	if err != nil {
		h.writeError(w, "GetCustomerHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *LaundryHandler) CreateCustomerHandler(w http.ResponseWriter, req *http.Request) {
	var in CustomerRequest
	err := readJSON(req, &in)
	if err != nil {
		h.writeError(w, "CreateCustomerHandler", err)
		return
	}
	customer, err := h.Customers.Create(req.Context(), in.customer())
	if err != nil {
		h.writeError(w, "CreateCustomerHandler", err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *LaundryHandler) UpdateCustomerHandler(w http.ResponseWriter, req *http.Request) {
	var in CustomerRequest
	err := readJSON(req, &in)
	if err != nil {
		h.writeError(w, "UpdateCustomerHandler", err)
		return
	}
	customer, err := h.Customers.Update(req.Context(), mux.Vars(req)["id"], in.customer())
	if err != nil {
		h.writeError(w, "UpdateCustomerHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *LaundryHandler) DeleteCustomerHandler(w http.ResponseWriter, req *http.Request) {
	err := h.Customers.Delete(req.Context(), mux.Vars(req)["id"])
	if err != nil {
		h.writeError(w, "DeleteCustomerHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Customer removed"})
}
