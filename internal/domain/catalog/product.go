package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/student-store/backend/internal/domain/shared"
)

// Product represents an item offered in the store catalog
// It is the aggregate root for product-related operations
type Product struct {
	shared.BaseAggregateRoot
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Unit price in store currency
	ImageURL    string          `gorm:"type:text"`
	Category    string          `gorm:"type:varchar(100);not null;index"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, description string, price decimal.Decimal, imageURL, category string) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       description,
		Price:             price,
		ImageURL:          imageURL,
		Category:          strings.TrimSpace(category),
	}, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.Touch()
	p.IncrementVersion()

	return nil
}

// UpdatePrice updates the product's unit price
func (p *Product) UpdatePrice(price decimal.Decimal) error {
	if err := validatePrice(price); err != nil {
		return err
	}

	p.Price = price
	p.Touch()
	p.IncrementVersion()

	return nil
}

// UpdateCategory moves the product into a different category
func (p *Product) UpdateCategory(category string) error {
	if err := validateCategory(category); err != nil {
		return err
	}

	p.Category = strings.TrimSpace(category)
	p.Touch()
	p.IncrementVersion()

	return nil
}

// SetImageURL sets the product image URL
func (p *Product) SetImageURL(imageURL string) {
	p.ImageURL = imageURL
	p.Touch()
	p.IncrementVersion()
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

// validatePrice validates the unit price
func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	return nil
}

// validateCategory validates the category name
func validateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot be empty")
	}
	if len(category) > 100 {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot exceed 100 characters")
	}
	return nil
}
