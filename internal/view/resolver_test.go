package view

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/medcenter/portal-api/internal/model"
)

func userWithRole(role model.Role) *model.User {
	return &model.User{ID: uuid.New(), Email: "test@example.com", Role: role}
}

func TestResolveUnauthenticated(t *testing.T) {
	r := NewRouter(false)

	for _, requested := range []string{ViewDashboard, ViewBilling, "garbage", ""} {
		res := r.Resolve(nil, requested)
		assert.Equal(t, ScreenLogin, res.Screen, "view %q", requested)
		assert.Equal(t, DecisionLogin, res.Decision)
	}
}

func TestResolveDashboardPerRole(t *testing.T) {
	r := NewRouter(false)

	tests := []struct {
		role model.Role
		want Screen
	}{
		{model.RoleAdmin, ScreenAdminDashboard},
		{model.RoleDoctor, ScreenDoctorDashboard},
		{model.RolePatient, ScreenPatientDashboard},
	}
	for _, tt := range tests {
		res := r.Resolve(userWithRole(tt.role), ViewDashboard)
		assert.Equal(t, tt.want, res.Screen, "role %s", tt.role)
		assert.Equal(t, DecisionGranted, res.Decision)
	}
}

func TestResolveKnownViews(t *testing.T) {
	r := NewRouter(false)
	admin := userWithRole(model.RoleAdmin)

	tests := []struct {
		requested string
		want      Screen
	}{
		{ViewDoctors, ScreenDoctorManagement},
		{ViewPatients, ScreenPatientManagement},
		{ViewAppointments, ScreenAppointments},
		{ViewBilling, ScreenBilling},
		{ViewRecords, ScreenMedicalRecords},
		{ViewSettings, ScreenSettings},
		{ViewPrescriptions, ScreenPrescriptions},
		{ViewBookAppointment, ScreenBookAppointment},
		{ViewHealth, ScreenHealthRecords},
	}
	for _, tt := range tests {
		res := r.Resolve(admin, tt.requested)
		assert.Equal(t, tt.want, res.Screen, "view %q", tt.requested)
		assert.Equal(t, DecisionGranted, res.Decision)
	}
}

func TestResolveUnknownViewFallsBack(t *testing.T) {
	r := NewRouter(false)

	res := r.Resolve(userWithRole(model.RolePatient), "no-such-view")
	assert.Equal(t, ScreenAdminDashboard, res.Screen)
	assert.Equal(t, DecisionFallback, res.Decision)
}

func TestResolveUnknownViewStrictFallsBackToOwnDashboard(t *testing.T) {
	r := NewRouter(true)

	res := r.Resolve(userWithRole(model.RolePatient), "no-such-view")
	assert.Equal(t, ScreenPatientDashboard, res.Screen)
	assert.Equal(t, DecisionFallback, res.Decision)
}

func TestResolveStrictDeniesOffMenuViews(t *testing.T) {
	r := NewRouter(true)

	// Patients have no doctor management on their menu.
	res := r.Resolve(userWithRole(model.RolePatient), ViewDoctors)
	assert.Equal(t, ScreenPatientDashboard, res.Screen)
	assert.Equal(t, DecisionDenied, res.Decision)

	// On-menu views still resolve.
	res = r.Resolve(userWithRole(model.RolePatient), ViewBilling)
	assert.Equal(t, ScreenBilling, res.Screen)
	assert.Equal(t, DecisionGranted, res.Decision)
}

func TestResolveNonStrictAllowsCrossRoleViews(t *testing.T) {
	r := NewRouter(false)

	res := r.Resolve(userWithRole(model.RolePatient), ViewDoctors)
	assert.Equal(t, ScreenDoctorManagement, res.Screen)
	assert.Equal(t, DecisionGranted, res.Decision)
}

func TestMenuOrderPerRole(t *testing.T) {
	r := NewRouter(false)

	admin := r.Menu(model.RoleAdmin)
	adminViews := make([]string, len(admin))
	for i, item := range admin {
		adminViews[i] = item.View
	}
	assert.Equal(t, []string{
		ViewDashboard, ViewDoctors, ViewPatients, ViewAppointments,
		ViewBilling, ViewRecords, ViewSettings,
	}, adminViews)

	doctor := r.Menu(model.RoleDoctor)
	assert.Len(t, doctor, 5)
	assert.Equal(t, "My Appointments", doctor[1].Label)

	patient := r.Menu(model.RolePatient)
	assert.Len(t, patient, 6)
	assert.Equal(t, ViewBookAppointment, patient[2].View)
	assert.Equal(t, "My Bills", patient[4].Label)
}

func TestMenuReturnsCopy(t *testing.T) {
	r := NewRouter(false)

	menu := r.Menu(model.RoleAdmin)
	menu[0].Label = "mutated"

	assert.Equal(t, "Dashboard", r.Menu(model.RoleAdmin)[0].Label)
}
