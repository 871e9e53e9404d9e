package model

import "strings"

// BlockID identifies a block (pages are blocks too) in its canonical
// 8-4-4-4-12 dashed form.
type BlockID string

const compactBlockIDLength = 32

var blockIDGroups = []int{8, 4, 4, 4, 12}

// NormalizeBlockID canonicalizes a loosely formatted identifier, as found
// in page URLs ("My-Page-a2449a4a48884c49bd5225828d29b2ed?pvs=4") or in
// already dashed form.
//
// The query string is dropped, dashes are removed and the last 32
// characters are regrouped. Inputs shorter than 32 characters do not
// panic but produce an identifier that the store will not know about.
func NormalizeBlockID(raw string) BlockID {
	if idx := strings.Index(raw, "?"); idx != -1 {
		raw = raw[:idx]
	}

	compact := strings.ReplaceAll(raw, "-", "")
	if len(compact) > compactBlockIDLength {
		compact = compact[len(compact)-compactBlockIDLength:]
	}

	groups := make([]string, 0, len(blockIDGroups))
	offset := 0
	for _, size := range blockIDGroups {
		if offset >= len(compact) {
			break
		}

		end := min(offset+size, len(compact))
		groups = append(groups, compact[offset:end])
		offset = end
	}

	return BlockID(strings.Join(groups, "-"))
}

// Compact returns the identifier without dashes, as used in page URLs.
func (id BlockID) Compact() string {
	return strings.ReplaceAll(string(id), "-", "")
}

func (id BlockID) String() string {
	return string(id)
}
