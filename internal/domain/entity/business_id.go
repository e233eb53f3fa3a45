package entity

import "fmt"

// SequenceName identifies a business identifier counter.
type SequenceName string

const (
	SequenceEmployee SequenceName = "employee"
	SequenceProduct  SequenceName = "product"
	SequenceOrder    SequenceName = "order"
	SequenceVisit    SequenceName = "visit"
)

var sequencePrefixes = map[SequenceName]string{
	SequenceEmployee: "EMP",
	SequenceProduct:  "PRD",
	SequenceOrder:    "ORD",
	SequenceVisit:    "VIS",
}

// FormatBusinessID renders a counter value as a zero-padded, prefixed identifier (e.g. ORD000042).
func FormatBusinessID(name SequenceName, value int64) string {
	return fmt.Sprintf("%s%06d", sequencePrefixes[name], value)
}
