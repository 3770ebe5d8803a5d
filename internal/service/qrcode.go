package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type ConfirmationQRGenerator struct {
	BaseURL string
}

func (g ConfirmationQRGenerator) Generate(orderID int) ([]byte, error) {
	qrData := fmt.Sprintf("%s/confirmation.html?order_id=%d", g.BaseURL, orderID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}

var _ QRGenerator = ConfirmationQRGenerator{}
