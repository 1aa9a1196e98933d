// Package store defines the persistence interfaces used by the service
// layer, along with the shared error values and pagination types.
// Implementations live in internal/platform/postgres.
package store
