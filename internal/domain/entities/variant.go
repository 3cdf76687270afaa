package entities

// Variant is the read model of a product variant from the external catalog.
//
// Only the fields the timer needs are kept: which workstations may produce it
// and which services (operations) can be timed against it.
type Variant struct {
	ID             string           `json:"id" toml:"id"`
	Name           string           `json:"name" toml:"name"`
	ProductName    string           `json:"product_name" toml:"product_name"`
	WorkstationIDs []string         `json:"workstation_ids" toml:"workstation_ids"`
	Services       []VariantService `json:"services" toml:"services"`
}

type VariantService struct {
	ServiceID          string  `json:"service_id" toml:"service_id"`
	Name               string  `json:"name" toml:"name"`
	EstimatedTimeHours float64 `json:"estimated_time_hours" toml:"estimated_time_hours"`
}

// Service returns the variant service with the given id.
func (v Variant) Service(serviceID string) (VariantService, bool) {
	for _, s := range v.Services {
		if s.ServiceID == serviceID {
			return s, true
		}
	}
	return VariantService{}, false
}

// AvailableAt reports whether the variant may be produced at the workstation.
// A variant without workstations is unrestricted.
func (v Variant) AvailableAt(workstationID string) bool {
	if len(v.WorkstationIDs) == 0 {
		return true
	}
	for _, id := range v.WorkstationIDs {
		if id == workstationID {
			return true
		}
	}
	return false
}
