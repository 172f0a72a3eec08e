package domain

import "github.com/vehicle-marketplace/rental-search/internal/infrastructure/timeutil"

// FieldRule configures one form field of the rental search.
type FieldRule struct {
	// Field is the listing query key of the field
	Field string

	// RequiredWhen reports whether the field must be filled for the given criteria
	RequiredWhen func(c SearchCriteria) bool

	// Format reports whether a non-empty value is well formed
	Format func(value string) bool
}

func always(SearchCriteria) bool { return true }

func anyValue(v string) bool { return v != "" }

// FieldRules enumerates every SearchCriteria field in form order.
var FieldRules = []FieldRule{
	{Field: KeyCity, RequiredWhen: always, Format: anyValue},
	{Field: KeyPickupMode, RequiredWhen: always, Format: func(v string) bool { return PickupMode(v).IsValid() }},
	{
		Field:        KeyStore,
		RequiredWhen: func(c SearchCriteria) bool { return c.PickupMode == PickupModeStore },
		Format:       anyValue,
	},
	{
		Field:        KeyDeliveryAddress,
		RequiredWhen: func(c SearchCriteria) bool { return c.PickupMode == PickupModeDelivery },
		Format:       anyValue,
	},
	{Field: KeyPickupDate, RequiredWhen: always, Format: timeutil.IsValidDate},
	{Field: KeyPickupTime, RequiredWhen: always, Format: timeutil.IsValidClock},
	{Field: KeyDropoffDate, RequiredWhen: always, Format: timeutil.IsValidDate},
	{Field: KeyDropoffTime, RequiredWhen: always, Format: timeutil.IsValidClock},
}

// FieldRuleFor looks up the rule of a field by its query key.
func FieldRuleFor(field string) (FieldRule, bool) {
	for _, r := range FieldRules {
		if r.Field == field {
			return r, true
		}
	}
	return FieldRule{}, false
}

// MalformedFields returns the non-empty fields whose value fails its format check.
func (c SearchCriteria) MalformedFields() []string {
	var bad []string
	for _, rule := range FieldRules {
		if v := c.Get(rule.Field); v != "" && !rule.Format(v) {
			bad = append(bad, rule.Field)
		}
	}
	return bad
}
