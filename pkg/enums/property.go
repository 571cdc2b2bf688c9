package enums

import "fmt"

// PropertyType classifies a rentable unit.
type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "APARTMENT"
	PropertyTypeHouse      PropertyType = "HOUSE"
	PropertyTypeStudio     PropertyType = "STUDIO"
	PropertyTypeCommercial PropertyType = "COMMERCIAL"
)

var validPropertyTypes = []PropertyType{
	PropertyTypeApartment,
	PropertyTypeHouse,
	PropertyTypeStudio,
	PropertyTypeCommercial,
}

func (p PropertyType) String() string {
	return string(p)
}

func (p PropertyType) IsValid() bool {
	for _, candidate := range validPropertyTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

func ParsePropertyType(value string) (PropertyType, error) {
	for _, candidate := range validPropertyTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid property type %q", value)
}

// PropertyStatus tracks occupancy of a unit.
type PropertyStatus string

const (
	PropertyStatusVacant      PropertyStatus = "VACANT"
	PropertyStatusOccupied    PropertyStatus = "OCCUPIED"
	PropertyStatusMaintenance PropertyStatus = "MAINTENANCE"
)

var validPropertyStatuses = []PropertyStatus{
	PropertyStatusVacant,
	PropertyStatusOccupied,
	PropertyStatusMaintenance,
}

func (p PropertyStatus) String() string {
	return string(p)
}

func (p PropertyStatus) IsValid() bool {
	for _, candidate := range validPropertyStatuses {
		if candidate == p {
			return true
		}
	}
	return false
}

func ParsePropertyStatus(value string) (PropertyStatus, error) {
	for _, candidate := range validPropertyStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid property status %q", value)
}
