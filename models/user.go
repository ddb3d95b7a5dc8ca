// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the account kind stored in users.role.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCustomer, RoleSeller:
		return true
	default:
		return false
	}
}

// User is a persisted account of the user service.
// PasswordHash is never serialised.
type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"fullName"`
	Phone        *string    `json:"phone,omitempty"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"isActive"`
	IsVerified   bool       `json:"isVerified"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"-"`
	LastLogin    *time.Time `json:"lastLogin"`
}

// UserResponse is the public view of a User returned by the HTTP API.
type UserResponse struct {
	ID         int64      `json:"id"`
	Email      string     `json:"email"`
	FullName   string     `json:"fullName"`
	Phone      *string    `json:"phone,omitempty"`
	Role       Role       `json:"role"`
	IsActive   bool       `json:"isActive"`
	IsVerified bool       `json:"isVerified"`
	CreatedAt  time.Time  `json:"createdAt"`
	LastLogin  *time.Time `json:"lastLogin"`
}

// ToResponse strips storage-only fields from u.
func (u User) ToResponse() UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		Phone:      u.Phone,
		Role:       u.Role,
		IsActive:   u.IsActive,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
		LastLogin:  u.LastLogin,
	}
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email,max=255"`
	FullName string  `json:"fullName" validate:"required,min=2,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=10,max=20"`
	Password string  `json:"password" validate:"required,min=8,bcryptmax"`
	Role     Role    `json:"role,omitempty" validate:"omitempty,oneof=admin customer seller"`
}

// Credentials are the login form fields. Username carries the email.
type Credentials struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// ProfileUpdate is the body of PATCH /me. Nil fields are left unchanged.
type ProfileUpdate struct {
	FullName *string `json:"fullName,omitempty" validate:"omitempty,min=2,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=10,max=20"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8,bcryptmax"`
}

// Empty reports whether the update carries no changes.
func (p ProfileUpdate) Empty() bool {
	return p.FullName == nil && p.Phone == nil && p.Password == nil
}

// UserUpdate is the storage-level partial update of a user row.
type UserUpdate struct {
	ID           int64
	FullName     *string
	Phone        *string
	PasswordHash *string
	UpdatedAt    time.Time
}

// AuthResult is returned by a successful login.
type AuthResult struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	User        UserResponse `json:"user"`
}

// TokenTypeBearer is the only token type issued.
const TokenTypeBearer = "bearer"
