package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment purposes
const (
	PaymentPurposeBooking = "BOOKING"
	PaymentPurposeDeposit = "DEPOSIT"
	PaymentPurposeOther   = "OTHER"
)

// Payment providers
const (
	PaymentProviderRazorpay = "RAZORPAY"
	PaymentProviderStripe   = "STRIPE"
	PaymentProviderManual   = "MANUAL"
)

// Payment statuses
const (
	PaymentStatusInitiated = "INITIATED"
	PaymentStatusSuccess   = "SUCCESS"
	PaymentStatusFailed    = "FAILED"
	PaymentStatusRefunded  = "REFUNDED"
)

// Payment is a document in the "payment" collection.
type Payment struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BuyerID           string             `bson:"buyer_id" json:"buyer_id"`
	PropertyID        string             `bson:"property_id" json:"property_id"`
	Amount            float64            `bson:"amount" json:"amount"`
	Currency          string             `bson:"currency" json:"currency"`
	Purpose           string             `bson:"purpose" json:"purpose"`
	Provider          string             `bson:"provider" json:"provider"`
	ProviderPaymentID string             `bson:"provider_payment_id,omitempty" json:"provider_payment_id,omitempty"`
	Status            string             `bson:"status" json:"status"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
}

// PaymentCreateRequest is the payment-create payload
type PaymentCreateRequest struct {
	BuyerID           string  `json:"buyer_id" binding:"required"`
	PropertyID        string  `json:"property_id" binding:"required"`
	Amount            float64 `json:"amount" binding:"required"`
	Currency          string  `json:"currency"`
	Purpose           string  `json:"purpose"`
	Provider          string  `json:"provider"`
	ProviderPaymentID string  `json:"provider_payment_id"`
}

// PaymentStatusRequest is the status-update payload
type PaymentStatusRequest struct {
	Status            string `json:"status" binding:"required" example:"SUCCESS"`
	ProviderPaymentID string `json:"provider_payment_id"`
}
