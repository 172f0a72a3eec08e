// Package domain contains the core entities and rules of the rental search flow.
// These types are transport-agnostic and shared by the calculator, the use case,
// and every adapter.
package domain

import (
	"net/url"
	"strings"
)

// PickupMode selects how the customer receives the vehicle.
type PickupMode string

// Available pickup modes.
const (
	PickupModeNone     PickupMode = ""
	PickupModeStore    PickupMode = "store"
	PickupModeDelivery PickupMode = "delivery"
)

// IsValid reports whether m is a known, non-empty pickup mode.
func (m PickupMode) IsValid() bool {
	switch m {
	case PickupModeStore, PickupModeDelivery:
		return true
	default:
		return false
	}
}

// Query parameter keys handed to the listing view, in serialization order.
const (
	KeyCity            = "city"
	KeyPickupMode      = "pickupMode"
	KeyStore           = "store"
	KeyDeliveryAddress = "deliveryAddress"
	KeyPickupDate      = "pickupDate"
	KeyPickupTime      = "pickupTime"
	KeyDropoffDate     = "dropoffDate"
	KeyDropoffTime     = "dropoffTime"
)

// QueryKeys lists every key of the listing contract.
var QueryKeys = []string{
	KeyCity,
	KeyPickupMode,
	KeyStore,
	KeyDeliveryAddress,
	KeyPickupDate,
	KeyPickupTime,
	KeyDropoffDate,
	KeyDropoffTime,
}

// SearchCriteria is the transient rental search held for the length of a session.
// Empty strings mean "not chosen yet".
type SearchCriteria struct {
	// City is the directory ID of the rental city (e.g., "pune")
	City string `json:"city"`

	// PickupMode is "store" or "delivery"
	PickupMode PickupMode `json:"pickupMode"`

	// Store is the pickup store ID, required when PickupMode is store
	Store string `json:"store"`

	// DeliveryAddress is required when PickupMode is delivery
	DeliveryAddress string `json:"deliveryAddress"`

	// PickupDate is YYYY-MM-DD in the booking timezone
	PickupDate string `json:"pickupDate"`

	// PickupTime is HH:MM on a 30-minute grid
	PickupTime string `json:"pickupTime"`

	// DropoffDate is YYYY-MM-DD in the booking timezone
	DropoffDate string `json:"dropoffDate"`

	// DropoffTime is HH:MM on a 30-minute grid
	DropoffTime string `json:"dropoffTime"`
}

// Get returns the value stored under a listing query key.
func (c SearchCriteria) Get(key string) string {
	switch key {
	case KeyCity:
		return c.City
	case KeyPickupMode:
		return string(c.PickupMode)
	case KeyStore:
		return c.Store
	case KeyDeliveryAddress:
		return c.DeliveryAddress
	case KeyPickupDate:
		return c.PickupDate
	case KeyPickupTime:
		return c.PickupTime
	case KeyDropoffDate:
		return c.DropoffDate
	case KeyDropoffTime:
		return c.DropoffTime
	default:
		return ""
	}
}

// Values serializes the criteria into query parameters.
// All eight keys are always present; unset fields are empty strings.
func (c SearchCriteria) Values() url.Values {
	v := make(url.Values, len(QueryKeys))
	for _, key := range QueryKeys {
		v.Set(key, c.Get(key))
	}
	return v
}

// ListingURL appends the encoded criteria to the listing view base URL.
func (c SearchCriteria) ListingURL(base string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + c.Values().Encode()
}

// ParseSearchCriteria rebuilds criteria from query parameters.
// Unknown keys are ignored and values are trimmed.
func ParseSearchCriteria(v url.Values) SearchCriteria {
	get := func(key string) string {
		return strings.TrimSpace(v.Get(key))
	}
	return SearchCriteria{
		City:            get(KeyCity),
		PickupMode:      PickupMode(get(KeyPickupMode)),
		Store:           get(KeyStore),
		DeliveryAddress: get(KeyDeliveryAddress),
		PickupDate:      get(KeyPickupDate),
		PickupTime:      get(KeyPickupTime),
		DropoffDate:     get(KeyDropoffDate),
		DropoffTime:     get(KeyDropoffTime),
	}
}

// MissingFields returns the required fields that are still empty, in form order.
func (c SearchCriteria) MissingFields() []string {
	var missing []string
	for _, rule := range FieldRules {
		if rule.RequiredWhen(c) && c.Get(rule.Field) == "" {
			missing = append(missing, rule.Field)
		}
	}
	return missing
}

// Ready reports whether every required field is filled in.
func (c SearchCriteria) Ready() bool {
	return len(c.MissingFields()) == 0
}

// HasPickup reports whether both pickup date and time are set.
func (c SearchCriteria) HasPickup() bool {
	return c.PickupDate != "" && c.PickupTime != ""
}
