package constants

// Role names carried in token claims
const (
	RoleCustomer   = "customer"
	RoleStaff      = "staff"
	RoleSuperadmin = "superadmin"
)

// Frontend panel routes used for role-based redirects after login
const (
	RedirectClientDashboard = "/panel-cliente"
	RedirectStaffPanel      = "/staff_panel"
	RedirectSuperadminPanel = "/superadmin_panel"
)

// Claim keys used in access tokens
const (
	ClaimUserID      = "user_id"
	ClaimUsername    = "username"
	ClaimIsStaff     = "is_staff"
	ClaimIsSuperuser = "is_superuser"
	ClaimSessionID   = "session_id"
)
