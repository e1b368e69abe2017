package model

import "time"

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID        string `gorm:"primaryKey;size:64;not null"`
	Email     string `gorm:"size:128;uniqueIndex;not null"`
	Name      string `gorm:"size:128"`
	Role      Role   `gorm:"size:16;index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type MenuItem struct {
	ID       string `gorm:"primaryKey;size:64;not null"`
	Name     string `gorm:"size:128;not null"`
	Category string `gorm:"size:64;index"` // salad, pizza, soup, dessert, drinks
	Recipe   string `gorm:"size:1024"`
	Image    string `gorm:"size:512"`
	// Price in major units; menu display only, settlement converts separately.
	Price     float64 `gorm:"not null"`
	CreatedAt time.Time
}

type Review struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"size:128;not null"`
	Details   string  `gorm:"size:2048"`
	Rating    float64 `gorm:"not null"`
	CreatedAt time.Time
}

type CartItem struct {
	ID string `gorm:"primaryKey;size:64;not null"`
	// Owner of the cart line, the email claim of the buyer.
	Email string `gorm:"size:128;index;not null"`
	// FK → menu_items.id
	MenuItemID string  `gorm:"size:64;index;not null"`
	Name       string  `gorm:"size:128"`
	Image      string  `gorm:"size:512"`
	Price      float64 `gorm:"not null"`
	CreatedAt  time.Time
}

type Payment struct {
	// Deterministic settlement key derived from payer, cart ids and amount.
	// Acts as the idempotency key for retried settlements.
	ID       string `gorm:"primaryKey;size:64;not null"`
	Email    string `gorm:"size:128;index;not null"`
	Amount   int64  `gorm:"not null"` // minor units
	Currency string `gorm:"size:8;not null"`
	// Processor-side reference, e.g. the payment intent id.
	TransactionID string `gorm:"size:128;index"`
	Status        string `gorm:"size:32;not null"` // PAID
	CreatedAt     time.Time
}

type PaymentItem struct {
	ID uint `gorm:"primaryKey"`
	// FK → payments.id
	PaymentID string `gorm:"size:64;index;not null"`
	// Cart line that was settled. After settlement it no longer resolves
	// in cart_items; this row is the durable record of what was paid for.
	CartItemID string `gorm:"size:64;index;not null"`
	MenuItemID string `gorm:"size:64"`
	CreatedAt  time.Time
}
