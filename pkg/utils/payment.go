package utils

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// ErrPaymentDisabled is returned when no Midtrans server key is configured.
var ErrPaymentDisabled = errors.New("payment gateway is not configured")

// SnapGateway is the part of snap.Client the handlers need.
type SnapGateway interface {
	CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error)
}

var (
	snapGateway       SnapGateway
	midtransServerKey string
)

// InitPayment configures the Midtrans Snap client. env is "production" or
// anything else for sandbox. An empty key leaves payments disabled.
func InitPayment(serverKey, env string) {
	if serverKey == "" {
		Log.Warn("MIDTRANS_SERVER_KEY not set, payments disabled")
		return
	}

	envType := midtrans.Sandbox
	if env == "production" {
		envType = midtrans.Production
	}

	var client snap.Client
	client.New(serverKey, envType)
	SetPaymentGateway(&client, serverKey)
}

// SetPaymentGateway replaces the gateway and the key used to check webhook
// signatures.
func SetPaymentGateway(gw SnapGateway, serverKey string) {
	snapGateway = gw
	midtransServerKey = serverKey
}

// PaymentCustomer is who the gateway shows on the payment page.
type PaymentCustomer struct {
	Name  string
	Email string
	Phone string
}

// CreatePayment opens a Snap transaction for orderCode and returns the
// payment token and redirect URL.
func CreatePayment(orderCode string, amount int64, itemName string, customer PaymentCustomer) (*snap.Response, error) {
	if snapGateway == nil {
		return nil, ErrPaymentDisabled
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderCode,
			GrossAmt: amount,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customer.Name,
			Email: customer.Email,
			Phone: customer.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    orderCode,
				Name:  itemName,
				Price: amount,
				Qty:   1,
			},
		},
	}

	resp, merr := snapGateway.CreateTransaction(req)
	if merr != nil {
		return nil, merr
	}
	return resp, nil
}

// VerifyNotificationSignature checks the signature_key Midtrans puts on
// every webhook: SHA-512 of order_id + status_code + gross_amount + server key.
func VerifyNotificationSignature(orderID, statusCode, grossAmount, signature string) bool {
	if midtransServerKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare(
		[]byte(NotificationSignature(orderID, statusCode, grossAmount)),
		[]byte(signature),
	) == 1
}

// NotificationSignature computes the expected signature_key.
func NotificationSignature(orderID, statusCode, grossAmount string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + midtransServerKey))
	return hex.EncodeToString(sum[:])
}
