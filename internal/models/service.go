package models

// DefaultCategory groups services that carry no category
const DefaultCategory = "Other"

// Service represents a bookable appointment type
type Service struct {
	ID              string  `json:"id" validate:"required"`
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description"`
	Category        string  `json:"category,omitempty"`
	DurationMinutes int     `json:"durationMinutes" validate:"gt=0"`
	Price           float64 `json:"price" validate:"gte=0"`
}

// CategoryOrDefault returns the grouping key of the service
func (s Service) CategoryOrDefault() string {
	if s.Category == "" {
		return DefaultCategory
	}
	return s.Category
}

// ShopSettings holds the shop configuration
type ShopSettings struct {
	ShopName    string `json:"shopName" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required,digits"` // international format without +
	OpeningTime string `json:"openingTime" validate:"required,hhmm"`
	ClosingTime string `json:"closingTime" validate:"required,hhmm"`
	Currency    string `json:"currency"`
}

// CategoryGroup is a category and its services in catalog order
type CategoryGroup struct {
	Category string
	Services []Service
}

// GroupByCategory buckets services by category key, keeping categories in
// the order they are first seen and services in catalog order.
func GroupByCategory(services []Service) []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[string]int)

	for _, s := range services {
		key := s.CategoryOrDefault()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, CategoryGroup{Category: key})
		}
		groups[i].Services = append(groups[i].Services, s)
	}
	return groups
}

// FindService returns the service with the given id
func FindService(services []Service, id string) (Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}
