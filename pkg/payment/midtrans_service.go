package payment

import (
	"Gardener-Assistant-Backend/internal/utils"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type (
	PaymentService interface {
		CreateSnapTransaction(orderID string, grossAmount int64, customerName string, customerEmail string) (string, string, error)
	}

	paymentService struct {
		client snap.Client
	}
)

func NewPaymentService() PaymentService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)

	return &paymentService{client: client}
}

func (s *paymentService) CreateSnapTransaction(orderID string, grossAmount int64, customerName string, customerEmail string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: grossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customerName,
			Email: customerEmail,
		},
	}

	resp, err := s.client.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
