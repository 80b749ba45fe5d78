package model

import "time"

type PostingStatus string

const (
	StatusAwaitingPackaging PostingStatus = "awaiting_packaging"
	StatusAwaitingDeliver   PostingStatus = "awaiting_deliver"
	StatusDelivering        PostingStatus = "delivering"
	StatusDelivered         PostingStatus = "delivered"
	StatusCancelled         PostingStatus = "cancelled"
)

// Posting — одно отправление FBS из Ozon Seller API.
type Posting struct {
	PostingNumber string         `json:"posting_number"`
	Status        PostingStatus  `json:"status"`
	InProcessAt   time.Time      `json:"in_process_at"`
	Products      []Product      `json:"products"`
	FinancialData *FinancialData `json:"financial_data,omitempty"`
}

type Product struct {
	SKU          int64  `json:"sku"`
	OfferID      string `json:"offer_id"`
	Name         string `json:"name"`
	Price        string `json:"price"`
	Quantity     int    `json:"quantity"`
	PrimaryImage string `json:"primary_image,omitempty"`
}

// FinancialData при наличии авторитетнее наивной суммы цен позиций.
type FinancialData struct {
	Products []FinancialProduct `json:"products"`
}

type FinancialProduct struct {
	ProductID int64   `json:"product_id"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Override — локальные флаги отправления. Отсутствие записи = оба false.
type Override struct {
	Packed    bool
	Processed bool
}

type User struct {
	ID    int
	Login string
}

// OzonCredentials — непрозрачные токены продавца, передаются как есть.
type OzonCredentials struct {
	ClientID string `json:"client_id"`
	APIKey   string `json:"api_key"`
}
