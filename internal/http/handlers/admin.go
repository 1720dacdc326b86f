package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
)

type adminLoginRequest struct {
	Password string `json:"password"`
}

// AdminLogin checks the shared dashboard password.
func (a *App) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid payload.")
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(a.AdminPassword)) != 1 {
		a.error(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Login successful",
	})
}

// AdminListOrders returns every order, newest first.
func (a *App) AdminListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := a.Orders.ListNewestFirst(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("order listing failed")
		a.error(w, http.StatusInternalServerError, "Failed to fetch orders.")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"orders":  orders,
	})
}

// AdminUpdateOrder applies status and delivery changes to one order.
func (a *App) AdminUpdateOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var update domain.OrderUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid payload.")
		return
	}

	order, err := a.Orders.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "Order not found")
			return
		}
		a.Logger.Error().Err(err).Str("order_id", id).Msg("order lookup failed")
		a.error(w, http.StatusInternalServerError, "Failed to update order.")
		return
	}

	order.ApplyUpdate(update)

	if err := a.Orders.Update(r.Context(), order); err != nil {
		a.Logger.Error().Err(err).Str("order_id", id).Msg("order update failed")
		a.error(w, http.StatusInternalServerError, "Failed to update order.")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"order":   order,
	})
}
