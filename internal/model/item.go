package model

import "strconv"

// ID identifies an Entry for the lifetime of the list that created it.
type ID uint64

func (id ID) String() string { return strconv.FormatUint(uint64(id), 10) }

// Quantity bounds offered by the add form.
const (
	MinQuantity = 1
	MaxQuantity = 20
)

// Entry is one packing-list line item.
// Description and Quantity never change after creation; only Packed is toggled.
type Entry struct {
	ID          ID     `json:"id"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Packed      bool   `json:"packed"`
}
