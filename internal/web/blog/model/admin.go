// Package model contains all the models used in the application.
package model

import (
	"time"

	gutils "github.com/Laisky/go-utils/v6"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminRole admin role
type AdminRole string

const (
	// RoleMaster may manage other admin accounts
	RoleMaster AdminRole = "master"
	// RoleEditor may only manage articles
	RoleEditor AdminRole = "editor"
)

// Admin panel accounts
type Admin struct {
	// ID unique identifier for the admin
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// Email login account, matched exactly as stored
	Email string `bson:"email" json:"email"`
	// PasswordHash salted one-way hash, never serialized to clients
	//
	//  `gcrypto.VerifyHashedPassword`
	PasswordHash string `bson:"passwordHash,omitempty" json:"-"`
	// Role either master or editor
	Role AdminRole `bson:"role" json:"role"`
	// IsSeeded marks the account maintained by the seed-repair process,
	// immune to deletion through the API
	IsSeeded bool `bson:"isSeeded" json:"isSeeded"`
	// CreatedAt time when the admin was created
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	// UpdatedAt time when the admin was last modified
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// GetID get id
func (a *Admin) GetID() string {
	return a.ID.Hex()
}

// IsMaster reports whether the admin may manage other accounts.
func (a *Admin) IsMaster() bool {
	return a.Role == RoleMaster
}

// NewAdmin create a new admin with the default editor role
func NewAdmin() *Admin {
	now := gutils.Clock.GetUTCNow()
	return &Admin{
		ID:        primitive.NewObjectID(),
		Role:      RoleEditor,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ParseAdminRole normalizes a requested role, falling back to editor for
// anything that is not explicitly master.
func ParseAdminRole(raw string) AdminRole {
	if AdminRole(raw) == RoleMaster {
		return RoleMaster
	}

	return RoleEditor
}
