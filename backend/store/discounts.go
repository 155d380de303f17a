package store

import (
	"strings"

	"eduplatform/backend/models"
)

// DiscountValidation distinguishes the failure reasons the view renders
// inline: unknown code, expired code, exhausted code.
type DiscountValidation struct {
	Valid    bool                 `json:"valid"`
	Discount *models.DiscountCode `json:"discount,omitempty"`
	Error    string               `json:"error,omitempty"`
}

// DiscountCodes returns all codes, for the teacher/admin dashboard.
func (s *Store) DiscountCodes() []models.DiscountCode {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.DiscountCode, len(s.discountCodes))
	copy(out, s.discountCodes)
	return out
}

// AddDiscountCode registers a code at zero uses. Duplicate codes are rejected
// case-insensitively.
func (s *Store) AddDiscountCode(code models.DiscountCode) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.discountCodes {
		if strings.EqualFold(s.discountCodes[i].Code, code.Code) {
			return fail("Discount code already exists.")
		}
	}
	code.Uses = 0
	s.discountCodes = append(s.discountCodes, code)
	s.persist()
	return ok()
}

// ValidateDiscount looks a code up case-insensitively and reports whether it
// is redeemable: active and under its usage cap.
func (s *Store) ValidateDiscount(code string) DiscountValidation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.discountCodes {
		d := s.discountCodes[i]
		if !strings.EqualFold(d.Code, code) {
			continue
		}
		if !d.Active {
			return DiscountValidation{Valid: false, Error: "This code has expired."}
		}
		if d.Uses >= d.MaxUses {
			return DiscountValidation{Valid: false, Error: "This code has reached maximum usage."}
		}
		return DiscountValidation{Valid: true, Discount: &d}
	}
	return DiscountValidation{Valid: false, Error: "Invalid discount code."}
}

// RedeemDiscount increments the usage counter. This copy is a display cache:
// the relational store owns the authoritative count, and concurrent
// redemptions from other sessions are not deduplicated here.
func (s *Store) RedeemDiscount(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.discountCodes {
		if strings.EqualFold(s.discountCodes[i].Code, code) {
			s.discountCodes[i].Uses++
			break
		}
	}
	s.persist()
}
