package department

import "gorm.io/datatypes"

// Department is the organisational unit responsible for one or more
// report categories.
type Department struct {
	ID                  uint                        `json:"id" gorm:"primaryKey"`
	Name                string                      `json:"name" gorm:"size:200;not null;uniqueIndex"`
	ContactEmail        *string                     `json:"contact_email" gorm:"size:200"`
	Ward                *string                     `json:"ward" gorm:"size:100"`
	SupportedCategories datatypes.JSONSlice[string] `json:"supported_issue_types" gorm:"column:supported_issue_types"`
}

func (Department) TableName() string {
	return "departments"
}

// Seed describes one department created by the bootstrap seeding.
type Seed struct {
	Name         string
	ContactEmail string
	Categories   []string
}

// Defaults is the fixed department set, one per report category.
var Defaults = []Seed{
	{Name: "Road Maintenance", ContactEmail: "roads@letsfix.gov", Categories: []string{"pothole"}},
	{Name: "Sanitation", ContactEmail: "sanitation@letsfix.gov", Categories: []string{"garbage"}},
	{Name: "Electrical", ContactEmail: "electrical@letsfix.gov", Categories: []string{"streetlight"}},
	{Name: "Water & Sewer", ContactEmail: "water@letsfix.gov", Categories: []string{"drainage"}},
	{Name: "General Services", ContactEmail: "general@letsfix.gov", Categories: []string{"other"}},
}

// Model builds the row for a seed entry.
func (s Seed) Model() Department {
	email := s.ContactEmail
	return Department{
		Name:                s.Name,
		ContactEmail:        &email,
		SupportedCategories: datatypes.NewJSONSlice(s.Categories),
	}
}
