package model

import "time"

type Tool struct {
	ID               string    `gorm:"primaryKey;size:64;not null" json:"_id"`
	Name             string    `gorm:"size:255;not null" json:"name"`
	Description      string    `gorm:"type:text" json:"description"`
	Image            string    `gorm:"size:512" json:"img"`
	Price            float64   `gorm:"not null" json:"price"`
	Quantity         int32     `gorm:"not null" json:"quantity"`
	MinOrderQuantity int32     `json:"minOrderQuantity"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

type Order struct {
	ID            string    `gorm:"primaryKey;size:64;not null" json:"_id"`
	ToolID        string    `gorm:"size:64;index" json:"toolId"`
	ToolName      string    `gorm:"size:255" json:"toolName"`
	UserEmail     string    `gorm:"size:255;index;not null" json:"userEmail"`
	UserName      string    `gorm:"size:255" json:"userName"`
	Phone         string    `gorm:"size:64" json:"phone"`
	Address       string    `gorm:"size:512" json:"address"`
	Quantity      int32     `gorm:"not null" json:"quantity"`
	Price         float64   `gorm:"not null" json:"price"`
	Status        string    `gorm:"size:32;index;not null" json:"status"` // pending, SHIPPED
	Paid          bool      `gorm:"not null" json:"paid"`
	TransactionID string    `gorm:"size:128" json:"transactionId"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

type User struct {
	Email     string    `gorm:"primaryKey;size:255;not null" json:"email"`
	Name      string    `gorm:"size:255" json:"name"`
	Photo     string    `gorm:"size:512" json:"photo"`
	Role      string    `gorm:"size:32" json:"role"` // empty or "admin"
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Review carries a unique index on email: one review per user, enforced
// by the store rather than a read-then-write check.
type Review struct {
	ID        string    `gorm:"primaryKey;size:64;not null" json:"_id"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"size:255" json:"name"`
	Text      string    `gorm:"type:text" json:"text"`
	Rating    int32     `json:"rating"`
	CreatedAt time.Time `json:"-"`
}

// Payment is an append-only record of a completed charge.
type Payment struct {
	ID            string    `gorm:"primaryKey;size:64;not null" json:"_id"`
	OrderID       string    `gorm:"size:64;index;not null" json:"orderId"`
	TransactionID string    `gorm:"size:128;not null" json:"transactionId"`
	UserEmail     string    `gorm:"size:255" json:"userEmail"`
	Amount        float64   `json:"amount"`
	CreatedAt     time.Time `json:"-"`
}

type News struct {
	ID          string    `gorm:"primaryKey;size:64;not null" json:"_id"`
	Title       string    `gorm:"size:512" json:"title"`
	Body        string    `gorm:"type:text" json:"body"`
	Image       string    `gorm:"size:512" json:"img"`
	PublishedAt time.Time `json:"publishedAt"`
}
