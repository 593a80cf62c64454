package model

import "github.com/Laisky/errors/v2"

// Sentinel errors surfaced to API clients. The messages are part of the wire
// contract, so they keep the exact casing the admin frontend matches on.
var (
	// ErrInvalidCredentials indicates the login credentials are invalid.
	// The same error covers unknown email and wrong password.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrNotFound indicates a missing id or slug.
	ErrNotFound = errors.New("Not found")
	// ErrEmailPasswordRequired indicates a blank credential field.
	ErrEmailPasswordRequired = errors.New("Email and password required")
	// ErrTitleRequired indicates an article submitted without a title.
	ErrTitleRequired = errors.New("Title is required")
	// ErrNotAllowed indicates a missing or mismatched setup secret.
	ErrNotAllowed = errors.New("Not allowed")
	// ErrForbidden indicates a role violation.
	ErrForbidden = errors.New("Forbidden")
	// ErrSeededAdminDelete protects seeded accounts from deletion.
	ErrSeededAdminDelete = errors.New("Cannot delete seeded admin")
	// ErrSeededAdminRegister blocks the public bootstrap endpoint from
	// touching the seeded identity.
	ErrSeededAdminRegister = errors.New("Cannot register the seeded admin via this endpoint")
	// ErrSeededAdminCreate blocks master admins from overriding the seeded
	// identity through the admin-creation endpoint.
	ErrSeededAdminCreate = errors.New("Cannot create or override the seeded admin via this endpoint")
	// ErrEmailTaken indicates the admin email unique index rejected a write.
	ErrEmailTaken = errors.New("Email already registered")
	// ErrSlugTaken indicates a caller-supplied slug collided with an
	// existing article.
	ErrSlugTaken = errors.New("Slug already in use")
)
