package domain

// User is the signed-in technician.
type User struct {
	ID     string
	Name   string
	Email  string
	Phone  string
	Avatar string
}
