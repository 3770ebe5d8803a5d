package service

import "tableside-orders/internal/domain"

// OrderService serves the order confirmation view and its QR code.
type OrderService struct {
	repo OrderRepository
	qr   QRGenerator
}

func NewOrderService(repo OrderRepository, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, qr: qr}
}

func (s *OrderService) Get(orderID int) (*domain.Order, error) {
	return s.repo.GetOrder(orderID)
}

func (s *OrderService) GetQRCode(orderID int) ([]byte, error) {
	qr, err := s.repo.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qr != nil {
		if regenerated, err := s.qr.Generate(orderID); err == nil {
			_ = s.repo.SaveQRCode(orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

var _ OrderServiceInterface = (*OrderService)(nil)
