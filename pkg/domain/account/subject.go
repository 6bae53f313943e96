package account

import (
	"fmt"
	"reflect"
	"slices"
)

// Observer is notified with a human readable message whenever an account
// raises an alert.
type Observer interface {
	Update(message string) error
}

// Subject keeps an ordered list of observers. The same observer may be
// attached more than once and is then notified once per attachment.
//
// The zero value is ready to use.
type Subject struct {
	observers []Observer
}

// Attach appends observer to the subscription list.
func (s *Subject) Attach(observer Observer) {
	s.observers = append(s.observers, observer)
}

// Detach removes the first subscription of observer.
// It returns ErrObserverNotFound if observer is not attached.
func (s *Subject) Detach(observer Observer) error {
	for i, o := range s.observers {
		if sameObserver(o, observer) {
			s.observers = slices.Delete(s.observers, i, i+1)
			return nil
		}
	}
	return ErrObserverNotFound
}

// Notify calls every observer in subscription order. The first observer
// error stops delivery and is returned.
func (s *Subject) Notify(message string) error {
	for _, o := range s.observers {
		if err := o.Update(message); err != nil {
			return fmt.Errorf("notify observer: %w", err)
		}
	}
	return nil
}

// Observers returns a copy of the current subscription list.
func (s *Subject) Observers() []Observer {
	return slices.Clone(s.observers)
}

// sameObserver compares observers without panicking on dynamic types that
// are not comparable.
func sameObserver(a, b Observer) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
