package reservations

import "fmt"

// ValidationError reports a malformed booking request field. User-correctable;
// no state change occurred.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// CouponError reports a refused coupon code. A rejected coupon blocks the
// whole booking rather than silently falling back to full price.
type CouponError struct {
	Reason string
}

func (e *CouponError) Error() string {
	return e.Reason
}

// ConflictError reports that an occurrence's target interval is already
// booked. Date names the conflicting occurrence.
type ConflictError struct {
	Date string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot is already booked on %s", e.Date)
}

// StoreError wraps a reservation store failure. The caller must not assume
// any write occurred and may retry the whole transaction.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("reservation store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
