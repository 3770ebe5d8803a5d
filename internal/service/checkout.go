package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"tableside-orders/internal/domain"
)

type CheckoutStep string

const (
	StepReview    CheckoutStep = "review"
	StepDetails   CheckoutStep = "details"
	StepSubmitted CheckoutStep = "submitted"
)

var (
	ErrOrderingDisabled = errors.New("ordering is disabled for this restaurant")
	ErrCheckoutNotOpen  = errors.New("checkout is not open")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrNoRoomSelected   = errors.New("a room must be selected")
	ErrNoTableSelected  = errors.New("a table must be selected")
	ErrUnknownRoom      = errors.New("room does not belong to this restaurant")
	ErrUnknownTable     = errors.New("table does not belong to the selected room")
	ErrSubmitInFlight   = errors.New("submission already in progress")
	ErrWrongStep        = errors.New("submission is only allowed from the details step")
)

type DraftUpdate struct {
	RoomID          *int    `json:"room_id,omitempty"`
	TableNumber     *int    `json:"table_number,omitempty"`
	CustomerName    *string `json:"customer_name,omitempty"`
	CustomerNotes   *string `json:"customer_notes,omitempty"`
	IsPriorityOrder *bool   `json:"is_priority_order,omitempty"`
}

// CheckoutView is the read-only projection handed to the UI layer: the
// current step, the draft, the selectable rooms/tables and the running totals.
type CheckoutView struct {
	Step              CheckoutStep          `json:"step"`
	Draft             domain.CheckoutDraft  `json:"draft"`
	ShowRoomSelector  bool                  `json:"show_room_selector"`
	Rooms             []domain.Room         `json:"rooms"`
	Tables            []domain.Table        `json:"tables"`
	Settings          domain.OrderSettings  `json:"settings"`
	Items             []domain.CartLineItem `json:"items"`
	Subtotal          string                `json:"subtotal"`
	PrioritySurcharge string                `json:"priority_surcharge"`
	Total             string                `json:"total"`
}

type checkoutSession struct {
	step       CheckoutStep
	draft      domain.CheckoutDraft
	rooms      []domain.Room
	tables     []domain.Table
	settings   domain.OrderSettings
	submitting bool
}

// CheckoutService drives the two-step checkout flow. One session per
// restaurant, mirroring the one-cart-per-restaurant scope; the engine
// assumes a single active mutator, the mutex only serializes handler access.
type CheckoutService struct {
	orders    OrderRepository
	carts     CartServiceInterface
	submitter *Submitter

	mu       sync.Mutex
	sessions map[int]*checkoutSession
}

func NewCheckoutService(orders OrderRepository, carts CartServiceInterface, submitter *Submitter) *CheckoutService {
	return &CheckoutService{
		orders:    orders,
		carts:     carts,
		submitter: submitter,
		sessions:  make(map[int]*checkoutSession),
	}
}

// Open starts (or reopens) the checkout surface. The step always resets to
// review; settings and the room/table list are fetched fresh each time.
func (s *CheckoutService) Open(ctx context.Context, restaurantID int) (*CheckoutView, error) {
	settings, err := s.orders.GetOrderSettings(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("load order settings: %w", err)
	}
	if !settings.OrdersEnabled {
		return nil, ErrOrderingDisabled
	}

	rooms, tables, err := s.orders.GetRoomsAndTables(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("load rooms and tables: %w", err)
	}

	s.mu.Lock()
	sess, ok := s.sessions[restaurantID]
	if !ok {
		sess = &checkoutSession{}
		s.sessions[restaurantID] = sess
	}
	sess.step = StepReview
	sess.rooms = rooms
	sess.tables = tables
	sess.settings = *settings
	if len(rooms) == 1 {
		roomID := rooms[0].ID
		sess.draft.RoomID = &roomID
	}
	view := s.viewLocked(ctx, restaurantID, sess)
	s.mu.Unlock()

	return view, nil
}

// Proceed moves review -> details. It refuses to advance with an empty cart.
func (s *CheckoutService) Proceed(ctx context.Context, restaurantID int) (*CheckoutView, error) {
	if s.carts.Load(ctx, restaurantID).IsEmpty() {
		return nil, ErrEmptyCart
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[restaurantID]
	if !ok {
		return nil, ErrCheckoutNotOpen
	}
	sess.step = StepDetails
	return s.viewLocked(ctx, restaurantID, sess), nil
}

// Back returns to the review step without touching the draft.
func (s *CheckoutService) Back(ctx context.Context, restaurantID int) (*CheckoutView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[restaurantID]
	if !ok {
		return nil, ErrCheckoutNotOpen
	}
	if sess.step == StepDetails {
		sess.step = StepReview
	}
	return s.viewLocked(ctx, restaurantID, sess), nil
}

func (s *CheckoutService) UpdateDraft(ctx context.Context, restaurantID int, update DraftUpdate) (*CheckoutView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[restaurantID]
	if !ok {
		return nil, ErrCheckoutNotOpen
	}

	if update.RoomID != nil {
		if findRoom(sess.rooms, *update.RoomID) == nil {
			return nil, ErrUnknownRoom
		}
		// Changing the room invalidates any previously chosen table.
		if sess.draft.RoomID == nil || *sess.draft.RoomID != *update.RoomID {
			sess.draft.TableNumber = nil
		}
		sess.draft.RoomID = update.RoomID
	}
	if update.TableNumber != nil {
		if len(sess.rooms) > 1 && sess.draft.RoomID == nil {
			return nil, ErrNoRoomSelected
		}
		if !tableInRoom(sess.tables, sess.draft.RoomID, *update.TableNumber) {
			return nil, ErrUnknownTable
		}
		sess.draft.TableNumber = update.TableNumber
	}
	if update.CustomerName != nil {
		sess.draft.CustomerName = *update.CustomerName
	}
	if update.CustomerNotes != nil {
		sess.draft.CustomerNotes = *update.CustomerNotes
	}
	if update.IsPriorityOrder != nil {
		sess.draft.IsPriorityOrder = *update.IsPriorityOrder
	}
	return s.viewLocked(ctx, restaurantID, sess), nil
}

// Submit runs the submission pipeline. Validation failures perform no I/O
// and leave the step at details; only a fully successful critical sequence
// clears the cart and moves to submitted.
func (s *CheckoutService) Submit(ctx context.Context, restaurantID int) (*domain.Order, error) {
	s.mu.Lock()
	sess, ok := s.sessions[restaurantID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrCheckoutNotOpen
	}
	if sess.submitting {
		s.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	if sess.step != StepDetails {
		s.mu.Unlock()
		return nil, ErrWrongStep
	}
	if len(sess.rooms) > 1 && sess.draft.RoomID == nil {
		s.mu.Unlock()
		return nil, ErrNoRoomSelected
	}
	if sess.draft.TableNumber == nil {
		s.mu.Unlock()
		return nil, ErrNoTableSelected
	}
	draft := sess.draft
	settings := sess.settings
	sess.submitting = true
	s.mu.Unlock()

	finish := func() {
		s.mu.Lock()
		sess.submitting = false
		s.mu.Unlock()
	}

	cart := s.carts.Load(ctx, restaurantID)
	if cart.IsEmpty() {
		finish()
		return nil, ErrEmptyCart
	}

	order, err := s.submitter.Run(ctx, restaurantID, cart, draft, settings)
	if err != nil {
		// Critical failure: the cart is untouched so the guest can retry.
		finish()
		return nil, err
	}

	if err := s.carts.Clear(ctx, restaurantID); err != nil {
		log.Printf("clearing cart after order %d failed: %v", order.ID, err)
	}

	s.mu.Lock()
	sess.submitting = false
	sess.step = StepSubmitted
	sess.draft = domain.CheckoutDraft{}
	s.mu.Unlock()
	return order, nil
}

// Close hides the surface. The cart and draft survive; only the step resets
// the next time the surface opens. An in-flight submission is not cancelled.
func (s *CheckoutService) Close(restaurantID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[restaurantID]; ok {
		sess.step = StepReview
	}
}

// Discard drops the session entirely, used when the cart itself is cleared.
func (s *CheckoutService) Discard(restaurantID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, restaurantID)
}

func (s *CheckoutService) viewLocked(ctx context.Context, restaurantID int, sess *checkoutSession) *CheckoutView {
	cart := s.carts.Load(ctx, restaurantID)
	subtotal := CartSubtotal(cart)
	surcharge := PrioritySurcharge(sess.draft, sess.settings.Priority)

	view := &CheckoutView{
		Step:              sess.step,
		Draft:             sess.draft,
		ShowRoomSelector:  len(sess.rooms) > 1,
		Rooms:             sess.rooms,
		Tables:            selectableTables(sess.tables, sess.rooms, sess.draft.RoomID),
		Settings:          sess.settings,
		Items:             cart.Items,
		Subtotal:          subtotal.StringFixed(2),
		PrioritySurcharge: surcharge.StringFixed(2),
		Total:             subtotal.Add(surcharge).Round(2).StringFixed(2),
	}
	return view
}

func findRoom(rooms []domain.Room, id int) *domain.Room {
	for i := range rooms {
		if rooms[i].ID == id {
			return &rooms[i]
		}
	}
	return nil
}

func tableInRoom(tables []domain.Table, roomID *int, number int) bool {
	for _, t := range tables {
		if t.Number != number {
			continue
		}
		if roomID == nil || t.RoomID == *roomID {
			return true
		}
	}
	return false
}

// selectableTables filters the table list to the chosen room. With several
// rooms and none chosen yet, no table is selectable.
func selectableTables(tables []domain.Table, rooms []domain.Room, roomID *int) []domain.Table {
	if roomID == nil {
		if len(rooms) > 1 {
			return []domain.Table{}
		}
		return tables
	}
	filtered := []domain.Table{}
	for _, t := range tables {
		if t.RoomID == *roomID {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

var _ CheckoutServiceInterface = (*CheckoutService)(nil)
