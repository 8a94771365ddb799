package models

import "errors"

var ErrIndexOutOfRange = errors.New("recipient index out of range")

// RecipientList is the ordered, user-edited list of recipients for the next
// batch send. It always holds at least one row (possibly blank) so there is
// always something to edit; validity is only checked at submission time.
//
// The list is owned by a single interactive flow and is not safe for
// concurrent use.
type RecipientList struct {
	rows []Recipient
}

// NewRecipientList returns a list seeded with one blank row.
func NewRecipientList() *RecipientList {
	return &RecipientList{rows: []Recipient{{}}}
}

// Add appends a blank row for editing.
func (l *RecipientList) Add() {
	l.rows = append(l.rows, Recipient{})
}

// Append adds a filled-in row. If the list still consists of the single blank
// seed row, that row is reused instead.
func (l *RecipientList) Append(r Recipient) {
	if len(l.rows) == 1 && l.rows[0] == (Recipient{}) {
		l.rows[0] = r
		return
	}
	l.rows = append(l.rows, r)
}

// Set replaces the row at index i.
func (l *RecipientList) Set(i int, r Recipient) error {
	if i < 0 || i >= len(l.rows) {
		return ErrIndexOutOfRange
	}
	l.rows[i] = r
	return nil
}

// Remove deletes the row at index i, preserving the order of the remaining
// rows. Removing the last row re-seeds the list with one blank row.
func (l *RecipientList) Remove(i int) error {
	if i < 0 || i >= len(l.rows) {
		return ErrIndexOutOfRange
	}
	l.rows = append(l.rows[:i], l.rows[i+1:]...)
	if len(l.rows) == 0 {
		l.rows = []Recipient{{}}
	}
	return nil
}

// Rows returns a copy of all rows in display order.
func (l *RecipientList) Rows() []Recipient {
	out := make([]Recipient, len(l.rows))
	copy(out, l.rows)
	return out
}

// Valid returns the rows that have both email and company name filled in,
// in order. Invalid rows are skipped, not removed.
func (l *RecipientList) Valid() []Recipient {
	out := make([]Recipient, 0, len(l.rows))
	for _, r := range l.rows {
		if r.Valid() {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of rows, valid or not.
func (l *RecipientList) Len() int {
	return len(l.rows)
}

// Reset restores the single-blank-row default.
func (l *RecipientList) Reset() {
	l.rows = []Recipient{{}}
}
