// Package sec provides authentication and authorization primitives for the
// course API.
//
// # Authentication
//
// Authentication uses HTTP Basic Auth with the user's email address as the
// identifier. Credentials are validated against bcrypt password hashes stored
// in the database.
//
// IMPORTANT: Basic Auth transmits credentials in base64 encoding (not
// encrypted). TLS must be used in production to protect credentials in
// transit.
//
// # Components
//
//   - [Authenticate]: Validates Basic Auth credentials against the user store
//   - [RequireUser]: Echo middleware gating routes that need an identity
//   - [GetAuthenticatedUser], [SetAuthenticatedUser]: Context accessors for user info
//   - [HashPassword], [ComparePassword]: bcrypt password hashing utilities
package sec
