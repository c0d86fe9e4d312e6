// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wiki

// MockStats is the Stats of MockItem.
var MockStats = Stats{Articles: 3, Pages: 5, Videos: 10}

// MockItem is a canned Item.
var MockItem = Item{
	Desc:   "description",
	Name:   "name",
	Stats:  MockStats,
	URL:    "https://www.google.com",
	Image:  "https://www.google.com",
	Domain: "https://www.google.com",
	ID:     1,
	Title:  "title",
}

// MockListResponse returns the canned ListResponse delivered by Mock:
// the first of two batches, holding 25 copies of MockItem with IDs 1
// through 25.
func MockListResponse() ListResponse {
	items := make([]Item, 25)
	for i := range items {
		items[i] = MockItem.With(WithID(i + 1))
	}
	return ListResponse{
		Batches:      2,
		Items:        items,
		Total:        50,
		CurrentBatch: 1,
		Next:         0,
	}
}
