// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wiki

// A ListResponse is one batch of the wiki list.
type ListResponse struct {
	Batches      int    `json:"batches"`
	Items        []Item `json:"items"`
	Total        int    `json:"total"`
	CurrentBatch int    `json:"currentBatch"`
	Next         int    `json:"next"`
}

// An Item is one wiki.
type Item struct {
	Desc   string `json:"desc"`
	Name   string `json:"name"`
	Stats  Stats  `json:"stats"`
	URL    string `json:"url"`
	Image  string `json:"image"`
	Domain string `json:"domain"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
}

// Stats counts the content of a wiki.
type Stats struct {
	Articles int `json:"articles"`
	Pages    int `json:"pages"`
	Videos   int `json:"videos"`
}

// An ItemOption changes one field of an Item.
type ItemOption func(*Item)

// With returns a copy of it with the options applied in order.
func (it Item) With(opts ...ItemOption) Item {
	for _, opt := range opts {
		opt(&it)
	}
	return it
}

func WithDesc(desc string) ItemOption     { return func(it *Item) { it.Desc = desc } }
func WithName(name string) ItemOption     { return func(it *Item) { it.Name = name } }
func WithStats(stats Stats) ItemOption    { return func(it *Item) { it.Stats = stats } }
func WithURL(url string) ItemOption       { return func(it *Item) { it.URL = url } }
func WithImage(image string) ItemOption   { return func(it *Item) { it.Image = image } }
func WithDomain(domain string) ItemOption { return func(it *Item) { it.Domain = domain } }
func WithID(id int) ItemOption            { return func(it *Item) { it.ID = id } }
func WithTitle(title string) ItemOption   { return func(it *Item) { it.Title = title } }
