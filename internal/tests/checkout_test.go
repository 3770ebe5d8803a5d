package tests

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tableside-orders/internal/domain"
	"tableside-orders/internal/mocks"
	"tableside-orders/internal/service"
)

type checkoutEnv struct {
	orders *mocks.OrderRepository
	stash  *memStash
	carts  *service.CartService
	svc    *service.CheckoutService
}

func newCheckoutEnv() *checkoutEnv {
	orders := new(mocks.OrderRepository)
	stash := newMemStash()
	carts := service.NewCartService(new(mocks.CatalogRepository), stash)
	submitter := service.NewSubmitter(orders, nil, nil)
	return &checkoutEnv{
		orders: orders,
		stash:  stash,
		carts:  carts,
		svc:    service.NewCheckoutService(orders, carts, submitter),
	}
}

func (e *checkoutEnv) seedCart(t *testing.T, restaurantID int) {
	cart := domain.NewCart(restaurantID)
	cart.Add(domain.CartLineItem{ProductID: 1, ProductName: "Flat White", UnitPrice: decimal.RequireFromString("8.50"), Quantity: 2})
	cart.Add(domain.CartLineItem{ProductID: 2, ProductName: "Croissant", UnitPrice: decimal.RequireFromString("5.00"), Quantity: 1})
	raw, err := service.EncodeCartSnapshot(cart)
	assert.NoError(t, err)
	e.stash.data[e.stash.CartKey(restaurantID)] = raw
}

func enabledSettings(surcharge string) *domain.OrderSettings {
	return &domain.OrderSettings{
		OrdersEnabled: true,
		Priority:      domain.PriorityServiceConfig{Enabled: true, SurchargeAmount: decimal.RequireFromString(surcharge)},
	}
}

func twoRooms() ([]domain.Room, []domain.Table) {
	rooms := []domain.Room{
		{ID: 1, RestaurantID: 1, Name: "Main"},
		{ID: 2, RestaurantID: 1, Name: "Terrace"},
	}
	tables := []domain.Table{
		{ID: 10, RoomID: 1, Number: 5},
		{ID: 11, RoomID: 2, Number: 7},
	}
	return rooms, tables
}

func TestCheckout_OpenRefusedWhenOrderingDisabled(t *testing.T) {
	env := newCheckoutEnv()
	env.orders.On("GetOrderSettings", 1).Return(&domain.OrderSettings{OrdersEnabled: false}, nil).Once()

	_, err := env.svc.Open(context.Background(), 1)

	assert.ErrorIs(t, err, service.ErrOrderingDisabled)
	env.orders.AssertNotCalled(t, "GetRoomsAndTables", 1)
}

func TestCheckout_SingleRoomAutoSelected(t *testing.T) {
	env := newCheckoutEnv()
	rooms := []domain.Room{{ID: 3, RestaurantID: 1, Name: "Main"}}
	tables := []domain.Table{{ID: 1, RoomID: 3, Number: 4}}
	env.orders.On("GetOrderSettings", 1).Return(enabledSettings("2.00"), nil)
	env.orders.On("GetRoomsAndTables", 1).Return(rooms, tables, nil)

	view, err := env.svc.Open(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, service.StepReview, view.Step)
	assert.False(t, view.ShowRoomSelector)
	assert.NotNil(t, view.Draft.RoomID)
	assert.Equal(t, 3, *view.Draft.RoomID)
	assert.Len(t, view.Tables, 1)
}

func TestCheckout_TablesNotSelectableUntilRoomChosen(t *testing.T) {
	env := newCheckoutEnv()
	rooms, tables := twoRooms()
	env.orders.On("GetOrderSettings", 1).Return(enabledSettings("2.00"), nil)
	env.orders.On("GetRoomsAndTables", 1).Return(rooms, tables, nil)

	view, err := env.svc.Open(context.Background(), 1)

	assert.NoError(t, err)
	assert.True(t, view.ShowRoomSelector)
	assert.Empty(t, view.Tables)

	roomID := 2
	view, err = env.svc.UpdateDraft(context.Background(), 1, service.DraftUpdate{RoomID: &roomID})
	assert.NoError(t, err)
	assert.Len(t, view.Tables, 1)
	assert.Equal(t, 7, view.Tables[0].Number)
}

func TestCheckout_ProceedRequiresNonEmptyCart(t *testing.T) {
	env := newCheckoutEnv()
	rooms, tables := twoRooms()
	env.orders.On("GetOrderSettings", 1).Return(enabledSettings("2.00"), nil)
	env.orders.On("GetRoomsAndTables", 1).Return(rooms, tables, nil)

	_, err := env.svc.Open(context.Background(), 1)
	assert.NoError(t, err)

	_, err = env.svc.Proceed(context.Background(), 1)
	assert.ErrorIs(t, err, service.ErrEmptyCart)
}

func TestCheckout_SubmitWithoutTableFailsValidation(t *testing.T) {
	ctx := context.Background()
	env := newCheckoutEnv()
	env.seedCart(t, 1)
	rooms, tables := twoRooms()
	env.orders.On("GetOrderSettings", 1).Return(enabledSettings("2.00"), nil)
	env.orders.On("GetRoomsAndTables", 1).Return(rooms, tables, nil)

	_, err := env.svc.Open(ctx, 1)
	assert.NoError(t, err)
	_, err = env.svc.Proceed(ctx, 1)
	assert.NoError(t, err)
	roomID := 1
	_, err = env.svc.UpdateDraft(ctx, 1, service.DraftUpdate{RoomID: &roomID})
	assert.NoError(t, err)

	_, err = env.svc.Submit(ctx, 1)

	assert.ErrorIs(t, err, service.ErrNoTableSelected)
	// Validation failures never reach the order store.
	env.orders.AssertNotCalled(t, "InsertOrder", mock.Anything)
}

func TestCheckout_SubmitWithoutRoomFailsValidation(t *testing.T) {
	ctx := context.Background()
	env := newCheckoutEnv()
	env.seedCart(t, 1)
	rooms, tables := twoRooms()
	env.orders.On("GetOrderSettings", 1).Return(enabledSettings("2.00"), nil)
	env.orders.On("GetRoomsAndTables", 1).Return(rooms, tables, nil)

	_, err := env.svc.Open(ctx, 1)
	assert.NoError(t, err)
	_, err = env.svc.Proceed(ctx, 1)
	assert.NoError(t, err)

	_, err = env.svc.Submit(ctx, 1)

	assert.ErrorIs(t, err, service.ErrNoRoomSelected)
	env.orders.AssertNotCalled(t, "InsertOrder", mock.Anything)
}

func TestCheckout_SubmitOnlyFromDetails(t *testing.T) {
	ctx := context.Background()
	env := newCheckoutEnv()
	env.seedCart(t, 1)
	rooms := []domain.Room{{ID: 1, RestaurantID: 1, Name: "Main"}}
	tables := []domain.Table{{ID: 10, RoomID: 1, Number: 5}}
	env.orders.On("GetOrderSettings", 1).Return(enabledSettings("2.00"), nil)
	env.orders.On("GetRoomsAndTables", 1).Return(rooms, tables, nil)

	_, err := env.svc.Open(ctx, 1)
	assert.NoError(t, err)
	tableNumber := 5
	_, err = env.svc.UpdateDraft(ctx, 1, service.DraftUpdate{TableNumber: &tableNumber})
	assert.NoError(t, err)

	_, err = env.svc.Submit(ctx, 1)

	assert.ErrorIs(t, err, service.ErrWrongStep)
	env.orders.AssertNotCalled(t, "InsertOrder", mock.Anything)
}

func TestCheckout_RoomChangeResetsTable(t *testing.T) {
	ctx := context.Background()
	env := newCheckoutEnv()
	rooms, tables := twoRooms()
	env.orders.On("GetOrderSettings", 1).Return(enabledSettings("2.00"), nil)
	env.orders.On("GetRoomsAndTables", 1).Return(rooms, tables, nil)

	_, err := env.svc.Open(ctx, 1)
	assert.NoError(t, err)

	roomID := 1
	tableNumber := 5
	_, err = env.svc.UpdateDraft(ctx, 1, service.DraftUpdate{RoomID: &roomID})
	assert.NoError(t, err)
	view, err := env.svc.UpdateDraft(ctx, 1, service.DraftUpdate{TableNumber: &tableNumber})
	assert.NoError(t, err)
	assert.NotNil(t, view.Draft.TableNumber)

	otherRoom := 2
	view, err = env.svc.UpdateDraft(ctx, 1, service.DraftUpdate{RoomID: &otherRoom})
	assert.NoError(t, err)
	assert.Nil(t, view.Draft.TableNumber)
}

func TestCheckout_TableMustBelongToRoom(t *testing.T) {
	ctx := context.Background()
	env := newCheckoutEnv()
	rooms, tables := twoRooms()
	env.orders.On("GetOrderSettings", 1).Return(enabledSettings("2.00"), nil)
	env.orders.On("GetRoomsAndTables", 1).Return(rooms, tables, nil)

	_, err := env.svc.Open(ctx, 1)
	assert.NoError(t, err)

	// No room chosen yet: a table may not be selected at all.
	tableNumber := 5
	_, err = env.svc.UpdateDraft(ctx, 1, service.DraftUpdate{TableNumber: &tableNumber})
	assert.ErrorIs(t, err, service.ErrNoRoomSelected)

	// Table 7 belongs to the terrace, not to the main room.
	roomID := 1
	_, err = env.svc.UpdateDraft(ctx, 1, service.DraftUpdate{RoomID: &roomID})
	assert.NoError(t, err)
	wrongTable := 7
	_, err = env.svc.UpdateDraft(ctx, 1, service.DraftUpdate{TableNumber: &wrongTable})
	assert.ErrorIs(t, err, service.ErrUnknownTable)
}

func TestCheckout_BackKeepsDraft(t *testing.T) {
	ctx := context.Background()
	env := newCheckoutEnv()
	env.seedCart(t, 1)
	rooms, tables := twoRooms()
	env.orders.On("GetOrderSettings", 1).Return(enabledSettings("2.00"), nil)
	env.orders.On("GetRoomsAndTables", 1).Return(rooms, tables, nil)

	_, err := env.svc.Open(ctx, 1)
	assert.NoError(t, err)
	_, err = env.svc.Proceed(ctx, 1)
	assert.NoError(t, err)

	roomID := 1
	tableNumber := 5
	name := "Dana"
	_, err = env.svc.UpdateDraft(ctx, 1, service.DraftUpdate{RoomID: &roomID})
	assert.NoError(t, err)
	_, err = env.svc.UpdateDraft(ctx, 1, service.DraftUpdate{TableNumber: &tableNumber, CustomerName: &name})
	assert.NoError(t, err)

	view, err := env.svc.Back(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, service.StepReview, view.Step)
	assert.NotNil(t, view.Draft.TableNumber)
	assert.Equal(t, "Dana", view.Draft.CustomerName)
}

func TestCheckout_ReopenResetsStepKeepsCart(t *testing.T) {
	ctx := context.Background()
	env := newCheckoutEnv()
	env.seedCart(t, 1)
	rooms, tables := twoRooms()
	env.orders.On("GetOrderSettings", 1).Return(enabledSettings("2.00"), nil)
	env.orders.On("GetRoomsAndTables", 1).Return(rooms, tables, nil)

	_, err := env.svc.Open(ctx, 1)
	assert.NoError(t, err)
	_, err = env.svc.Proceed(ctx, 1)
	assert.NoError(t, err)

	env.svc.Close(1)
	view, err := env.svc.Open(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, service.StepReview, view.Step)
	assert.Len(t, view.Items, 2)
}
