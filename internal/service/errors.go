package service

import "errors"

// ErrNoChanges signals an update whose payload carried no fields to
// apply. Handlers answer it with a success envelope and no write.
var ErrNoChanges = errors.New("no changes")

// Violation messages for rules checked against the database. Tag-level
// messages live with the request validator.
const (
	msgIDInvalid   = "The selected id is invalid."
	msgPhoneTaken  = "The phone has already been taken."
	msgBadRelation = "The selected %s is invalid."
)
