package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"tableside-orders/internal/domain"
	"tableside-orders/internal/service"
)

type Handler struct {
	Menu     service.MenuServiceInterface
	Carts    service.CartServiceInterface
	Checkout service.CheckoutServiceInterface
	Orders   service.OrderServiceInterface
}

func NewHandler(menu service.MenuServiceInterface, carts service.CartServiceInterface, checkout service.CheckoutServiceInterface, orders service.OrderServiceInterface) *Handler {
	return &Handler{
		Menu:     menu,
		Carts:    carts,
		Checkout: checkout,
		Orders:   orders,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants/{restaurantId}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu/{productId}", h.getProductDetail).Methods("GET")

	r.HandleFunc("/api/restaurants/{restaurantId}/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/cart/items", h.setCartQuantity).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}/cart/items", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{restaurantId}/cart", h.clearCart).Methods("DELETE")

	r.HandleFunc("/api/restaurants/{restaurantId}/checkout", h.openCheckout).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/checkout", h.closeCheckout).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{restaurantId}/checkout/details", h.proceedCheckout).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/checkout/review", h.backCheckout).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/checkout/draft", h.updateDraft).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}/checkout/submit", h.submitOrder).Methods("POST")

	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

// CartView is the read-only cart projection exposed to the UI layer.
type CartView struct {
	RestaurantID int                   `json:"restaurant_id"`
	Items        []domain.CartLineItem `json:"items"`
	Subtotal     string                `json:"subtotal"`
	Units        int                   `json:"units"`
}

func cartView(cart *domain.Cart) CartView {
	return CartView{
		RestaurantID: cart.RestaurantID,
		Items:        cart.Items,
		Subtotal:     service.CartSubtotal(cart).StringFixed(2),
		Units:        cart.Units(),
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "tableside-orders",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	menu, err := h.Menu.Menu(restaurantID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, menu)
}

func (h *Handler) getProductDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, _ := strconv.Atoi(vars["restaurantId"])
	productID, _ := strconv.Atoi(vars["productId"])
	product, err := h.Menu.ProductDetail(restaurantID, productID)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	writeJSON(w, product)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	cart := h.Carts.Load(r.Context(), restaurantID)
	writeJSON(w, cartView(cart))
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	var req service.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cart, err := h.Carts.Add(r.Context(), restaurantID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, cartView(cart))
}

func (h *Handler) setCartQuantity(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	var req service.QuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cart, err := h.Carts.SetQuantity(r.Context(), restaurantID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, cartView(cart))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	var req service.LineRef
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cart, err := h.Carts.Remove(r.Context(), restaurantID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, cartView(cart))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	if err := h.Carts.Clear(r.Context(), restaurantID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	// Clearing the cart also discards the checkout draft.
	h.Checkout.Discard(restaurantID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) openCheckout(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	view, err := h.Checkout.Open(r.Context(), restaurantID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) closeCheckout(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	h.Checkout.Close(restaurantID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) proceedCheckout(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	view, err := h.Checkout.Proceed(r.Context(), restaurantID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) backCheckout(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	view, err := h.Checkout.Back(r.Context(), restaurantID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) updateDraft(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	var update service.DraftUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	view, err := h.Checkout.UpdateDraft(r.Context(), restaurantID, update)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) submitOrder(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	order, err := h.Checkout.Submit(r.Context(), restaurantID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(orderID)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	qr, err := h.Orders.GetQRCode(orderID)
	if err != nil || len(qr) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(qr)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrNotesTooLong),
		errors.Is(err, service.ErrCombinationUnavailable),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrNoRoomSelected),
		errors.Is(err, service.ErrNoTableSelected),
		errors.Is(err, service.ErrUnknownRoom),
		errors.Is(err, service.ErrUnknownTable),
		errors.Is(err, service.ErrWrongStep):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrOrderingDisabled):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrCheckoutNotOpen), errors.Is(err, service.ErrSubmitInFlight):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
