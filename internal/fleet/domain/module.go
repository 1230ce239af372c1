package domain

import "time"

// Module is a licensable equipment product line. Equipment and subscription
// lines reference modules by ID.
type Module struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

// DefaultModules are seeded on first boot.
var DefaultModules = []Module{
	{Name: "Patient Monitor", Description: "Multi-parameter patient monitors"},
	{Name: "Fetal Monitor", Description: "Fetal heart rate and contraction monitors"},
	{Name: "ECG", Description: "Electrocardiograph machines"},
}
