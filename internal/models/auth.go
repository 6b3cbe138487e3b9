package models

import "github.com/golang-jwt/jwt/v5"

// UserRole identifies the caller's permission set.
type UserRole string

// Roles recognised by the report endpoints.
const (
	RoleAdmin   UserRole = "ADMIN"
	RoleFinance UserRole = "FINANCE"
	RoleViewer  UserRole = "VIEWER"
)

// JWTClaims represents the access token payload issued by the identity service.
type JWTClaims struct {
	UserID   string   `json:"user_id"`
	Role     UserRole `json:"role"`
	Email    string   `json:"email"`
	FullName string   `json:"full_name"`
	jwt.RegisteredClaims
}
