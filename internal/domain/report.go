package domain

// Roles carried in identity tokens and stored on users.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ReportType selects which admin report to build.
type ReportType string

const (
	ReportUsers ReportType = "users"
	ReportPOIs  ReportType = "pois"
)

// UserSummary is the admin-visible projection of a user account.
type UserSummary struct {
	ID       int64
	Username string
	Email    string
	Role     string
}

// UserFilter narrows the users report. Zero values mean "no filter".
// Username and Email are substring matches; ID and Role are exact.
type UserFilter struct {
	ID       int64
	Username string
	Email    string
	Role     string
}

// POIFilter narrows the POI report. Zero values mean "no filter".
// Name is a substring match; MinVisitors is inclusive.
type POIFilter struct {
	ID          int64
	Name        string
	MinVisitors int
}

// UserReport is the result of the users report.
// TotalUsers counts only non-admin accounts in Users.
type UserReport struct {
	TotalUsers int
	Users      []UserSummary
}

// POIReport is the result of the POI report.
type POIReport struct {
	TotalPOIs int
	POIs      []POI
}
