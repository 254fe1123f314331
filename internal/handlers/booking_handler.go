package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"dj-backend/internal/metrics"
	"dj-backend/internal/middleware"
	"dj-backend/internal/models"
	"dj-backend/internal/services"
)

type BookingHandler struct {
	Service *services.BookingService
}

func NewBookingHandler(s *services.BookingService) *BookingHandler {
	return &BookingHandler{Service: s}
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

// List returns bookings scoped to the caller: admins see everything, crew
// see assigned events, customers see their own.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetRoleFromContext(r.Context())
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var bookings []*models.Booking
	var err error
	switch role {
	case models.RoleAdmin:
		bookings, err = h.Service.ListBookings(r.Context(), nil)
	case models.RoleCrew:
		bookings, err = h.Service.ListForCrew(r.Context(), userID)
	default:
		bookings, err = h.Service.ListBookings(r.Context(), &userID)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if bookings == nil {
		bookings = []*models.Booking{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bookings)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid booking id", http.StatusBadRequest)
		return
	}

	booking, err := h.Service.GetBooking(r.Context(), id)
	if err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	// Customers can only read their own bookings
	role, _ := middleware.GetRoleFromContext(r.Context())
	if role == models.RoleCustomer {
		userID, _ := middleware.GetUserIDFromContext(r.Context())
		if booking.CustomerID == nil || *booking.CustomerID != userID {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(booking)
}

// Create accepts both admin manual entry and customer booking requests.
// Customer requests are pinned to the caller's account.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	role, _ := middleware.GetRoleFromContext(r.Context())
	if role == models.RoleCustomer {
		userID, _ := middleware.GetUserIDFromContext(r.Context())
		req.CustomerID = &userID
	}

	booking, err := h.Service.CreateBooking(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	metrics.BookingsCreatedTotal.Inc()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(booking)
}

func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid booking id", http.StatusBadRequest)
		return
	}

	var req models.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	booking, err := h.Service.UpdateBooking(r.Context(), id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(booking)
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid booking id", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteBooking(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Booking deleted"})
}

// PendingCount serves the admin dashboard's new-request badge
func (h *BookingHandler) PendingCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.Service.PendingCount(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"pending_count": count})
}

// MarkPaid clears the outstanding balance and writes the matching income
// record atomically
func (h *BookingHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid booking id", http.StatusBadRequest)
		return
	}

	result, err := h.Service.MarkAsPaid(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	metrics.PaymentsMarkedTotal.Inc()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// RequestPayment flags the booking and returns payment + WhatsApp links
func (h *BookingHandler) RequestPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid booking id", http.StatusBadRequest)
		return
	}

	result, err := h.Service.RequestPayment(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// ChangeStatus moves a booking through its lifecycle. Admins historically
// set any status directly, so the transition guard only runs when the
// request asks for it.
func (h *BookingHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid booking id", http.StatusBadRequest)
		return
	}

	var req models.ChangeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	booking, err := h.Service.ChangeStatus(r.Context(), id, models.BookingStatus(req.Status), req.Strict)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(booking)
}

// AssignCrew replaces the crew list on a booking
func (h *BookingHandler) AssignCrew(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid booking id", http.StatusBadRequest)
		return
	}

	var req models.AssignCrewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	booking, err := h.Service.AssignCrew(r.Context(), id, req.CrewIDs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(booking)
}

// CheckIn records the calling crew member's arrival at an event
func (h *BookingHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid booking id", http.StatusBadRequest)
		return
	}

	crewID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	booking, err := h.Service.CheckIn(r.Context(), id, crewID, req.ArrivalTime)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(booking)
}
