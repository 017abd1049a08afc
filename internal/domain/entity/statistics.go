package entity

import "time"

// CustomerStatistics is an aggregate view derived from the customer base.
// Nothing here is stored.
type CustomerStatistics struct {
	TotalCustomers           int            `json:"totalCustomers"`
	CustomersByCountry       map[string]int `json:"customersByCountry"`
	AverageAge               float64        `json:"averageAge"`
	PassportsExpiringSoon    int            `json:"passportsExpiringSoon"`
	CustomersWithoutPassport int            `json:"customersWithoutPassport"`
}

// ComputeCustomerStatistics aggregates customers at instant now. Passports
// expiring in [now, now+horizon) count as expiring soon; already expired ones do not.
// Customers without a birth date or country are left out of the age mean and
// the country breakdown.
func ComputeCustomerStatistics(customers []*Customer, now time.Time, horizon time.Duration) *CustomerStatistics {
	stats := &CustomerStatistics{
		TotalCustomers:     len(customers),
		CustomersByCountry: make(map[string]int),
	}
	if len(customers) == 0 {
		return stats
	}

	limit := now.Add(horizon)
	totalAge, withBirthDate := 0, 0
	for _, c := range customers {
		if c.Country != "" {
			stats.CustomersByCountry[c.Country]++
		}
		if !c.DateOfBirth.IsZero() {
			totalAge += c.Age(now)
			withBirthDate++
		}

		if !c.HasPassport() {
			stats.CustomersWithoutPassport++

			continue
		}
		if c.PassportExpiry != nil && !c.PassportExpiry.Before(now) && c.PassportExpiry.Before(limit) {
			stats.PassportsExpiringSoon++
		}
	}
	if withBirthDate > 0 {
		stats.AverageAge = float64(totalAge) / float64(withBirthDate)
	}

	return stats
}
