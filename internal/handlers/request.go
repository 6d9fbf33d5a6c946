package handlers

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type listSupportersRequest struct {
	Limit  int
	Offset int
}

func (r listSupportersRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Limit, validation.Min(0), validation.Max(100)),
		validation.Field(&r.Offset, validation.Min(0)),
	)
}

// webhookPayload is the payment provider's event envelope.
type webhookPayload struct {
	BusinessID string      `json:"business_id"`
	Timestamp  string      `json:"timestamp"`
	Type       string      `json:"type"`
	Data       paymentData `json:"data"`
}

type paymentData struct {
	PaymentID   string            `json:"payment_id"`
	Status      string            `json:"status"`
	Customer    *paymentCustomer  `json:"customer"`
	ProductCart []productCartItem `json:"product_cart"`
	TotalAmount int64             `json:"total_amount"`
	Currency    string            `json:"currency"`
	CreatedAt   string            `json:"created_at"`
}

type paymentCustomer struct {
	CustomerID string `json:"customer_id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
}

type productCartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Validate checks the fields a successful payment needs before it reaches the ledger.
func (r webhookPayload) Validate() error {
	return validation.ValidateStruct(&r.Data,
		validation.Field(&r.Data.PaymentID, validation.Required),
	)
}
