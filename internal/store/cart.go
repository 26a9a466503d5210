package store

import (
	"strings"

	"tillpoint/internal/model"

	"github.com/shopspring/decimal"
)

// cartNode is a node in the singly linked cart list.
type cartNode struct {
	line *model.CartLine
	next *cartNode
}

// cartStore implements CartStore over a singly linked list with head
// insertion, so lines iterate most-recently-added first.
type cartStore struct {
	head *cartNode
	size int
}

// NewCartStore creates an empty in-memory cart.
func NewCartStore() CartStore {
	return &cartStore{}
}

// Push inserts a new line at the head of the list.
func (s *cartStore) Push(line *model.CartLine) {
	s.head = &cartNode{line: line, next: s.head}
	s.size++
}

// Find returns the line for a product name, or nil.
func (s *cartStore) Find(productName string) *model.CartLine {
	for cur := s.head; cur != nil; cur = cur.next {
		if strings.EqualFold(cur.line.Product.Name, productName) {
			return cur.line
		}
	}
	return nil
}

// Items returns a snapshot of the current lines, head first.
func (s *cartStore) Items() []*model.CartLine {
	var items []*model.CartLine
	for cur := s.head; cur != nil; cur = cur.next {
		items = append(items, cur.line)
	}
	return items
}

// Total sums the cached subtotals of all lines.
func (s *cartStore) Total() decimal.Decimal {
	total := decimal.Zero
	for cur := s.head; cur != nil; cur = cur.next {
		total = total.Add(cur.line.Subtotal)
	}
	return total
}

// Len reports the number of lines.
func (s *cartStore) Len() int {
	return s.size
}

// Clear resets the cart to empty.
func (s *cartStore) Clear() {
	s.head = nil
	s.size = 0
}
