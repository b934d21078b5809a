// api/util/validation_util.go

package util

import (
	"fmt"

	"github.com/shopora/api/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func (v *ValidationUtil) ValidateOrder(order model.Order) error {
	if order.UserID == "" {
		return fmt.Errorf("order user cannot be empty")
	}
	if len(order.Items) == 0 {
		return fmt.Errorf("order must have at least one item")
	}
	for _, item := range order.Items {
		if item.ProductID == "" {
			return fmt.Errorf("order item product ID cannot be empty")
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("order item quantity must be positive")
		}
	}
	if order.Total < 0 {
		return fmt.Errorf("order total cannot be negative")
	}
	return nil
}

func (v *ValidationUtil) ValidateProduct(product model.Product) error {
	if product.Name == "" {
		return fmt.Errorf("product name cannot be empty")
	}
	if product.Category == "" {
		return fmt.Errorf("product category cannot be empty")
	}
	if product.Price < 0 {
		return fmt.Errorf("product price cannot be negative")
	}
	if product.Stock < 0 {
		return fmt.Errorf("product stock cannot be negative")
	}
	return nil
}

func (v *ValidationUtil) ValidateUser(user model.User) error {
	if user.ID == "" {
		return fmt.Errorf("user ID cannot be empty")
	}
	if user.Name == "" {
		return fmt.Errorf("user name cannot be empty")
	}
	if user.Email == "" {
		return fmt.Errorf("user email cannot be empty")
	}
	if user.Gender != model.GenderMale && user.Gender != model.GenderFemale {
		return fmt.Errorf("user gender must be either 'male' or 'female'")
	}
	if user.DOB.IsZero() {
		return fmt.Errorf("user date of birth cannot be empty")
	}
	return nil
}

func (v *ValidationUtil) ValidateCoupon(coupon model.Coupon) error {
	if coupon.Code == "" {
		return fmt.Errorf("coupon code cannot be empty")
	}
	if coupon.Amount <= 0 {
		return fmt.Errorf("coupon amount must be positive")
	}
	return nil
}
