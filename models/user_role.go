package models

type UserRole string

const (
	SpaceAdminRole UserRole = "SPACE_ADMIN_ROLE"
	RecruiterRole  UserRole = "RECRUITER_ROLE"
	SpaceUserRole  UserRole = "SPACE_USER_ROLE"
)
