package store

import (
	"strings"

	"tillpoint/internal/model"
)

// productNode is a node in the singly linked product list.
type productNode struct {
	product *model.Product
	next    *productNode
}

// catalogStore implements CatalogStore over a singly linked list.
type catalogStore struct {
	head *productNode
}

// NewCatalogStore creates an empty in-memory catalog.
func NewCatalogStore() CatalogStore {
	return &catalogStore{}
}

// Append adds a product at the tail of the list.
func (s *catalogStore) Append(p *model.Product) {
	node := &productNode{product: p}
	if s.head == nil {
		s.head = node
		return
	}
	cur := s.head
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = node
}

// FindExact returns the first case-insensitive exact name match, or nil.
func (s *catalogStore) FindExact(name string) *model.Product {
	for cur := s.head; cur != nil; cur = cur.next {
		if strings.EqualFold(cur.product.Name, name) {
			return cur.product
		}
	}
	return nil
}

// FindContains returns all case-insensitive substring matches in list order.
func (s *catalogStore) FindContains(substring string) []*model.Product {
	needle := strings.ToLower(substring)
	var results []*model.Product
	for cur := s.head; cur != nil; cur = cur.next {
		if strings.Contains(strings.ToLower(cur.product.Name), needle) {
			results = append(results, cur.product)
		}
	}
	return results
}

// All returns the full catalog in insertion order.
func (s *catalogStore) All() []*model.Product {
	var products []*model.Product
	for cur := s.head; cur != nil; cur = cur.next {
		products = append(products, cur.product)
	}
	return products
}

// LowStock returns all products with quantity at or below threshold.
func (s *catalogStore) LowStock(threshold int) []*model.Product {
	var low []*model.Product
	for cur := s.head; cur != nil; cur = cur.next {
		if cur.product.Quantity <= threshold {
			low = append(low, cur.product)
		}
	}
	return low
}
