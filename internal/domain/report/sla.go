package report

import "time"

const (
	DefaultSLAHours       = 96
	DefaultDepartmentName = "General Services"
)

var slaHours = map[Category]int{
	CategoryPothole:     72,
	CategoryGarbage:     24,
	CategoryStreetlight: 48,
	CategoryDrainage:    48,
	CategoryOther:       96,
}

var departmentNames = map[Category]string{
	CategoryPothole:     "Road Maintenance",
	CategoryGarbage:     "Sanitation",
	CategoryStreetlight: "Electrical",
	CategoryDrainage:    "Water & Sewer",
	CategoryOther:       "General Services",
}

// SLAHours returns the resolution commitment for a category.
// Unrecognised categories get DefaultSLAHours.
func SLAHours(c Category) int {
	if h, ok := slaHours[c]; ok {
		return h
	}
	return DefaultSLAHours
}

// SLADeadline returns now plus the category's SLA offset.
func SLADeadline(c Category, now time.Time) time.Time {
	return now.UTC().Add(time.Duration(SLAHours(c)) * time.Hour)
}

// DepartmentName returns the name of the department that owns a category.
func DepartmentName(c Category) string {
	if name, ok := departmentNames[c]; ok {
		return name
	}
	return DefaultDepartmentName
}
