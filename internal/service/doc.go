// Package service contains the business logic between the HTTP handlers
// and the stores: cross-record validation, password hashing, and order
// repricing. Rule failures come back as domain.ValidationError values so
// handlers can render the uniform violation envelope.
package service
