package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"receipt-insights/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("receipt_category", validateReceiptCategory)
	_ = v.RegisterValidation("sort_key", validateSortKey)
	_ = v.RegisterValidation("receipt_amount", validateReceiptAmount)
	_ = v.RegisterValidation("receipt_filename", validateReceiptFilename)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateReceiptCategory validates that a category is a member of the
// closed taxonomy
func validateReceiptCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(fl.Field().String())
}

// validateSortKey validates that a sort key is one of the supported orders
func validateSortKey(fl validator.FieldLevel) bool {
	return models.IsValidSortKey(fl.Field().String())
}

// validateReceiptAmount validates that an amount is non-negative and has at most 2 decimal places
func validateReceiptAmount(fl validator.FieldLevel) bool {
	amount := fl.Field().Float()

	if amount < 0 {
		return false
	}

	// Check decimal places (at most 2)
	amountStr := fmt.Sprintf("%.10f", amount)
	parts := strings.Split(amountStr, ".")
	if len(parts) > 1 {
		decimal := strings.TrimRight(parts[1], "0")
		if len(decimal) > 2 {
			return false
		}
	}

	return true
}

// validateReceiptFilename validates that a filename looks like an uploaded
// receipt image or document
func validateReceiptFilename(fl validator.FieldLevel) bool {
	filename := fl.Field().String()
	if filename == "" {
		return false
	}

	matched, _ := regexp.MatchString(`(?i)\.(jpe?g|png|heic|pdf)$`, filename)
	return matched
}
