package store

import "tillpoint/internal/model"

// saleNode is a node in the singly linked sales history list.
type saleNode struct {
	record *model.SaleRecord
	next   *saleNode
}

// ledgerStore implements LedgerStore over a singly linked list kept
// newest-first by head insertion.
type ledgerStore struct {
	head *saleNode
}

// NewLedgerStore creates an empty in-memory sales ledger.
func NewLedgerStore() LedgerStore {
	return &ledgerStore{}
}

// Prepend inserts a record at the head of the list.
func (s *ledgerStore) Prepend(rec *model.SaleRecord) {
	s.head = &saleNode{record: rec, next: s.head}
}

// All returns the full history, newest first.
func (s *ledgerStore) All() []*model.SaleRecord {
	var records []*model.SaleRecord
	for cur := s.head; cur != nil; cur = cur.next {
		records = append(records, cur.record)
	}
	return records
}
