package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tableside-orders/internal/domain"
)

const OrderCompletedEvent = "order_completed"

// Criticality separates writes that must succeed from writes whose failure
// is logged and swallowed. The guest already agreed to the full total, so
// losing the surcharge itemization is preferable to losing the order.
type Criticality string

const (
	Critical   Criticality = "critical"
	BestEffort Criticality = "best_effort"
)

type StepResult struct {
	Name        string
	Criticality Criticality
	Err         error
}

func (r StepResult) Failed() bool {
	return r.Err != nil
}

// Submitter turns a validated cart + draft into a durable order record.
//
// Step order: the order row insert must complete before the item inserts,
// and those before the surcharge item; surcharge itemization and the
// analytics event then run concurrently as best-effort steps.
type Submitter struct {
	orders OrderRepository
	events EventPublisher
	qr     QRGenerator
}

func NewSubmitter(orders OrderRepository, events EventPublisher, qr QRGenerator) *Submitter {
	return &Submitter{orders: orders, events: events, qr: qr}
}

// Run returns the persisted order, or an error when either critical write
// failed. A failed item insert leaves the pending order row without items;
// the order store exposes no multi-table transaction to roll it back, so the
// inconsistency stays visible for manual reconciliation.
func (s *Submitter) Run(ctx context.Context, restaurantID int, cart *domain.Cart, draft domain.CheckoutDraft, settings domain.OrderSettings) (*domain.Order, error) {
	surcharge := PrioritySurcharge(draft, settings.Priority)

	order := &domain.Order{
		RestaurantID:    restaurantID,
		TableNumber:     *draft.TableNumber,
		RoomID:          draft.RoomID,
		CustomerName:    draft.CustomerName,
		CustomerNotes:   draft.CustomerNotes,
		Status:          domain.OrderStatusPending,
		TotalAmount:     OrderTotal(cart, draft, settings.Priority),
		IsPriorityOrder: draft.IsPriorityOrder,
		PriorityAmount:  surcharge,
	}

	if err := s.orders.InsertOrder(order); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	items := make([]domain.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, domain.OrderItem{
			OrderID:      order.ID,
			ProductID:    line.ProductID,
			ProductName:  line.ProductName,
			VariantTitle: line.VariantTitle,
			UnitPrice:    line.UnitPrice,
			Quantity:     line.Quantity,
			Subtotal:     LineSubtotal(line),
			Notes:        line.Notes,
		})
	}
	if err := s.orders.InsertOrderItems(order.ID, items); err != nil {
		return nil, fmt.Errorf("insert order items: %w", err)
	}
	order.Items = items

	for _, result := range s.runBestEffort(ctx, order, cart, surcharge) {
		if result.Failed() {
			log.Printf("best-effort step %q for order %d failed: %v", result.Name, order.ID, result.Err)
		}
	}

	return order, nil
}

// runBestEffort runs the non-critical tail of the pipeline. The surcharge
// item and the analytics event are independent and run concurrently.
func (s *Submitter) runBestEffort(ctx context.Context, order *domain.Order, cart *domain.Cart, surcharge decimal.Decimal) []StepResult {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []StepResult
	)
	record := func(name string, err error) {
		mu.Lock()
		results = append(results, StepResult{Name: name, Criticality: BestEffort, Err: err})
		mu.Unlock()
	}

	if surcharge.IsPositive() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			record("surcharge_item", s.insertSurchargeItem(order, surcharge))
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		record(OrderCompletedEvent, s.publishOrderCompleted(ctx, order, cart))
	}()

	wg.Wait()

	record("confirmation_qr", s.attachQRCode(order.ID))
	return results
}

// insertSurchargeItem looks up, lazily creating, the synthetic priority
// product and itemizes the surcharge against it.
func (s *Submitter) insertSurchargeItem(order *domain.Order, surcharge decimal.Decimal) error {
	product, err := s.orders.FindProductByName(order.RestaurantID, domain.PriorityProductName)
	if err != nil || product == nil {
		product = &domain.Product{
			RestaurantID: order.RestaurantID,
			Name:         domain.PriorityProductName,
			BasePrice:    surcharge,
		}
		if err := s.orders.InsertProduct(product); err != nil {
			return fmt.Errorf("create priority product: %w", err)
		}
	}

	item := domain.OrderItem{
		OrderID:     order.ID,
		ProductID:   product.ID,
		ProductName: domain.PriorityProductName,
		UnitPrice:   surcharge,
		Quantity:    1,
		Subtotal:    surcharge,
	}
	if err := s.orders.InsertOrderItems(order.ID, []domain.OrderItem{item}); err != nil {
		return fmt.Errorf("insert surcharge item: %w", err)
	}
	return nil
}

func (s *Submitter) publishOrderCompleted(ctx context.Context, order *domain.Order, cart *domain.Cart) error {
	if s.events == nil {
		return nil
	}
	return s.events.Publish(ctx, domain.OrderEvent{
		EventID:      uuid.NewString(),
		Type:         OrderCompletedEvent,
		RestaurantID: order.RestaurantID,
		OrderID:      order.ID,
		TableNumber:  order.TableNumber,
		Total:        order.TotalAmount.StringFixed(2),
		ItemCount:    cart.Units(),
		Timestamp:    time.Now(),
	})
}

func (s *Submitter) attachQRCode(orderID int) error {
	if s.qr == nil {
		return nil
	}
	qr, err := s.qr.Generate(orderID)
	if err != nil {
		return fmt.Errorf("generate confirmation qr: %w", err)
	}
	return s.orders.SaveQRCode(orderID, qr)
}
