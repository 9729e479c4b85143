package utils

import "github.com/google/uuid"

// ToUUID parses a string into a UUID, returning the nil UUID on failure.
func ToUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}
