package entity

import "time"

// Category groups products; categories can nest through ParentID.
type Category struct {
	ID          string    `gorm:"size:64;primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	ParentID    *string   `gorm:"size:64" json:"parent_id,omitempty"`
	Color       string    `gorm:"size:20;default:#6B7280" json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

// Supplier is a product source.
type Supplier struct {
	ID         string    `gorm:"size:64;primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Email      *string   `gorm:"size:255" json:"email,omitempty"`
	Phone      *string   `gorm:"size:50" json:"phone,omitempty"`
	Address    *string   `gorm:"size:255" json:"address,omitempty"`
	City       *string   `gorm:"size:100" json:"city,omitempty"`
	PostalCode *string   `gorm:"size:20" json:"postal_code,omitempty"`
	Country    string    `gorm:"size:100;default:France" json:"country"`
	Notes      *string   `gorm:"type:text" json:"notes,omitempty"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Supplier) TableName() string {
	return "suppliers"
}

// Tax is a named tax rate applied to products.
type Tax struct {
	ID        string    `gorm:"size:64;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Rate      float64   `gorm:"not null" json:"rate"`
	IsDefault bool      `gorm:"default:false" json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Tax) TableName() string {
	return "taxes"
}

// Settings is the inventory-store configuration singleton; its row always
// has ID 1.
type Settings struct {
	ID               int       `gorm:"primaryKey" json:"id"`
	BusinessName     string    `gorm:"size:255;default:OpenStock Inc." json:"business_name"`
	Currency         string    `gorm:"size:10;default:EUR" json:"currency"`
	DefaultMargin    float64   `gorm:"default:30" json:"default_margin"`
	LowStockAlert    bool      `gorm:"default:true" json:"low_stock_alert"`
	OutOfStockAlert  bool      `gorm:"default:true" json:"out_of_stock_alert"`
	EmailDailyReport bool      `gorm:"default:false" json:"email_daily_report"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Settings) TableName() string {
	return "settings"
}
