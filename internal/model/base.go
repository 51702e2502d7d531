package model

// Date and time layouts used across the domain. Appointment dates,
// bill dates and dates of birth are calendar days; appointment times
// are wall-clock slots.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Role determines which menu and screens a session identity may use.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RolePatient:
		return true
	}
	return false
}
