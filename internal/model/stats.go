package model

// Stats reports collection sizes for health checks.
type Stats struct {
	Users int
	Meals int
	Foods int
}
