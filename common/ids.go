package common

import "github.com/gofrs/uuid"

// UniqueId returns a newly created short unique id, usable as a DOM element
// id or a subscriber key. It is the tail of a time-ordered UUID, so ids
// created in sequence sort in creation order.
func UniqueId() string {
	uuidTmp, _ := uuid.NewV7()
	uuidStr := uuidTmp.String()
	return uuidStr[len(uuidStr)-8:]
}
