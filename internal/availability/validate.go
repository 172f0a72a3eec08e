package availability

import "github.com/vehicle-marketplace/rental-search/internal/domain"

// ValidateDate reports whether candidate may be chosen for the given role.
// Dates compare as YYYY-MM-DD strings.
func ValidateDate(candidate, today string, role domain.Role, pickupDate string) bool {
	if candidate < today {
		return false
	}
	if role == domain.RoleDropoff && pickupDate != "" && candidate < pickupDate {
		return false
	}
	return true
}

// ValidateTime reports whether candidateTime on candidateDate may be chosen.
// A dropoff on the pickup date must be strictly later than the pickup time.
func ValidateTime(candidateTime, candidateDate, today, nowWithBuffer string, role domain.Role, pickupDate, pickupTime string) bool {
	if candidateDate == today && candidateTime < nowWithBuffer {
		return false
	}
	if role == domain.RoleDropoff && candidateDate == pickupDate && pickupTime != "" && candidateTime <= pickupTime {
		return false
	}
	return true
}
