// Package view maps (role, requested view name) to the screen a client
// should render. It is a dispatch table, not a state machine: Resolve is
// a pure function and every outcome is an explicit Decision rather than
// a silent default branch.
package view

import (
	"github.com/medcenter/portal-api/internal/model"
)

// Screen is the closed set of renderable screens.
type Screen string

const (
	ScreenLogin             Screen = "Login"
	ScreenAdminDashboard    Screen = "AdminDashboard"
	ScreenDoctorDashboard   Screen = "DoctorDashboard"
	ScreenPatientDashboard  Screen = "PatientDashboard"
	ScreenDoctorManagement  Screen = "DoctorManagement"
	ScreenPatientManagement Screen = "PatientManagement"
	ScreenAppointments      Screen = "AppointmentManagement"
	ScreenBilling           Screen = "BillingManagement"
	ScreenMedicalRecords    Screen = "MedicalRecords"
	ScreenPrescriptions     Screen = "Prescriptions"
	ScreenBookAppointment   Screen = "BookAppointment"
	ScreenHealthRecords     Screen = "HealthRecords"
	ScreenSettings          Screen = "Settings"
)

// Decision explains how a resolution was reached.
type Decision string

const (
	// DecisionLogin: unauthenticated, everything resolves to the login
	// screen.
	DecisionLogin Decision = "login"
	// DecisionGranted: the requested view maps to a screen the role may
	// use.
	DecisionGranted Decision = "granted"
	// DecisionFallback: the view name is unknown; the caller gets the
	// fallback screen.
	DecisionFallback Decision = "fallback"
	// DecisionDenied: strict mode only; the view is known but not on
	// the role's menu, so the caller gets its dashboard instead.
	DecisionDenied Decision = "denied"
)

// Resolution is the outcome of a view request.
type Resolution struct {
	Screen   Screen   `json:"screen"`
	Decision Decision `json:"decision"`
}

// MenuItem is one entry of a role's ordered navigation menu.
type MenuItem struct {
	View  string `json:"view"`
	Label string `json:"label"`
}

// View names accepted from navigation.
const (
	ViewDashboard       = "dashboard"
	ViewDoctors         = "doctors"
	ViewPatients        = "patients"
	ViewAppointments    = "appointments"
	ViewBilling         = "billing"
	ViewRecords         = "records"
	ViewSettings        = "settings"
	ViewPrescriptions   = "prescriptions"
	ViewBookAppointment = "book-appointment"
	ViewHealth          = "health"
)

var screens = map[string]Screen{
	ViewDoctors:         ScreenDoctorManagement,
	ViewPatients:        ScreenPatientManagement,
	ViewAppointments:    ScreenAppointments,
	ViewBilling:         ScreenBilling,
	ViewRecords:         ScreenMedicalRecords,
	ViewSettings:        ScreenSettings,
	ViewPrescriptions:   ScreenPrescriptions,
	ViewBookAppointment: ScreenBookAppointment,
	ViewHealth:          ScreenHealthRecords,
}

var menus = map[model.Role][]MenuItem{
	model.RoleAdmin: {
		{View: ViewDashboard, Label: "Dashboard"},
		{View: ViewDoctors, Label: "Doctors"},
		{View: ViewPatients, Label: "Patients"},
		{View: ViewAppointments, Label: "Appointments"},
		{View: ViewBilling, Label: "Billing"},
		{View: ViewRecords, Label: "Medical Records"},
		{View: ViewSettings, Label: "Settings"},
	},
	model.RoleDoctor: {
		{View: ViewDashboard, Label: "Dashboard"},
		{View: ViewAppointments, Label: "My Appointments"},
		{View: ViewPatients, Label: "My Patients"},
		{View: ViewPrescriptions, Label: "Prescriptions"},
		{View: ViewRecords, Label: "Medical Records"},
	},
	model.RolePatient: {
		{View: ViewDashboard, Label: "Dashboard"},
		{View: ViewAppointments, Label: "My Appointments"},
		{View: ViewBookAppointment, Label: "Book Appointment"},
		{View: ViewPrescriptions, Label: "Prescriptions"},
		{View: ViewBilling, Label: "My Bills"},
		{View: ViewHealth, Label: "Health Records"},
	},
}

var dashboards = map[model.Role]Screen{
	model.RoleAdmin:   ScreenAdminDashboard,
	model.RoleDoctor:  ScreenDoctorDashboard,
	model.RolePatient: ScreenPatientDashboard,
}

// Router resolves view requests. With strict disabled any authenticated
// role may reach any known view, matching the original navigation; with
// strict enabled off-menu views are denied and resolve to the role's
// dashboard.
type Router struct {
	strict bool
}

func NewRouter(strict bool) *Router {
	return &Router{strict: strict}
}

// Menu returns the role's ordered menu.
func (r *Router) Menu(role model.Role) []MenuItem {
	items := menus[role]
	out := make([]MenuItem, len(items))
	copy(out, items)
	return out
}

// Resolve maps the session and a requested view name to a screen. A nil
// user always resolves to the login screen.
func (r *Router) Resolve(user *model.User, requested string) Resolution {
	if user == nil {
		return Resolution{Screen: ScreenLogin, Decision: DecisionLogin}
	}

	if requested == ViewDashboard {
		return Resolution{Screen: dashboards[user.Role], Decision: DecisionGranted}
	}

	screen, known := screens[requested]
	if !known {
		fallback := ScreenAdminDashboard
		if r.strict {
			fallback = dashboards[user.Role]
		}
		return Resolution{Screen: fallback, Decision: DecisionFallback}
	}

	if r.strict && !r.onMenu(user.Role, requested) {
		return Resolution{Screen: dashboards[user.Role], Decision: DecisionDenied}
	}

	return Resolution{Screen: screen, Decision: DecisionGranted}
}

func (r *Router) onMenu(role model.Role, view string) bool {
	for _, item := range menus[role] {
		if item.View == view {
			return true
		}
	}
	return false
}
