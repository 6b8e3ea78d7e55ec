package models

import "time"

type TransactionType string

const (
	TransactionDeposit   TransactionType = "deposit"
	TransactionPayment   TransactionType = "payment"
	TransactionNoShowFee TransactionType = "no_show_fee"
	TransactionRefund    TransactionType = "refund"
	TransactionTip       TransactionType = "tip"
)

type Transaction struct {
	ID            string          `json:"id"`
	Type          TransactionType `json:"type"`
	ClientName    string          `json:"client_name"`
	Service       string          `json:"service"`
	AmountCents   int             `json:"amount_cents"`
	Date          time.Time       `json:"date"`
	Status        string          `json:"status"`
	AppointmentID string          `json:"appointment_id"`
}

type PayoutSummary struct {
	TotalRevenueCents      int `json:"total_revenue_cents"`
	DepositsCollectedCents int `json:"deposits_collected_cents"`
	NoShowFeesCents        int `json:"no_show_fees_cents"`
	RefundedAmountCents    int `json:"refunded_amount_cents"`
	PlatformFeeCents       int `json:"platform_fee_cents"`
	NetPayoutCents         int `json:"net_payout_cents"`

	ChairRentCents  int `json:"chair_rent_cents,omitempty"`
	CommissionCents int `json:"commission_cents,omitempty"`
}

type DailyRevenue struct {
	Date         time.Time `json:"date"`
	RevenueCents int       `json:"revenue_cents"`
	Appointments int       `json:"appointments"`
}
