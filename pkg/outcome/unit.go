package outcome

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Unit is the payload-less result of a validation or an effect: Ok, or a
// failure with a composed message. The zero value is Ok.
type Unit struct {
	err       error
	failed    bool
	id        uuid.UUID
	createdAt time.Time
}

func Ok() Unit {
	return Unit{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

func FailUnit(message string) Unit {
	return FailUnitWith(message, "", nil)
}

// FailUnitWith funnels message, context label and native cause through the
// configured composer.
func FailUnitWith(message, context string, cause error) Unit {
	return Unit{
		err:       errors.New(compose(message, context, cause)),
		failed:    true,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

// FailUnitErr builds a failure from a bare native error.
func FailUnitErr(cause error) Unit {
	return FailUnitWith("", "", cause)
}

// OkIf returns Ok when cond holds, otherwise a failure labelled with label.
// The label must be passed explicitly, Go cannot capture the caller's
// condition expression.
func OkIf(cond bool, label string) Unit {
	if cond {
		return Ok()
	}
	return FailUnit(label)
}

func FailIf(cond bool, label string) Unit {
	return OkIf(!cond, label)
}

func (u Unit) IsSuccess() bool {
	return !u.failed
}

func (u Unit) IsFailure() bool {
	return u.failed
}

func (u Unit) Err() error {
	if !u.failed {
		return nil
	}
	return u.err
}

// Message returns the composed failure text, empty on Ok.
func (u Unit) Message() string {
	if !u.failed {
		return ""
	}
	return u.err.Error()
}

func (u Unit) Id() uuid.UUID {
	return u.id
}

func (u Unit) CreatedAt() time.Time {
	return u.createdAt
}

func (u Unit) String() string {
	if u.failed {
		return u.err.Error()
	}
	return "Ok"
}

// Do runs action when Ok and returns u unchanged.
func (u Unit) Do(action func()) Unit {
	if !u.failed {
		action()
	}
	return u
}

// DoIfFailure runs action with the failure error and returns u unchanged.
func (u Unit) DoIfFailure(action func(error)) Unit {
	if u.failed {
		action(u.err)
	}
	return u
}

// AndThen substitutes next for an Ok; failures pass through untouched.
func (u Unit) AndThen(next Unit) Unit {
	if u.failed {
		return u
	}
	return next
}

// AndThenF is the lazy variant of AndThen; next runs only when u is Ok.
func (u Unit) AndThenF(next func() Unit) Unit {
	if u.failed {
		return u
	}
	return next()
}

// Try runs action when Ok inside a trap: a returned error or a panic becomes
// a failure labelled with label.
func (u Unit) Try(action func() error, label string) Unit {
	if u.failed {
		return u
	}
	return trap(label, func() (struct{}, error) {
		return struct{}{}, action()
	}).Unit()
}

// LiftUnit lifts a plain value into a Result gated on u.
func LiftUnit[U any](u Unit, v U) Result[U] {
	if u.failed {
		return failFromUnit[U](u)
	}
	return Success(v)
}

// LiftUnitF is the lazy variant of LiftUnit; f runs only when u is Ok.
func LiftUnitF[U any](u Unit, f func() U) Result[U] {
	if u.failed {
		return failFromUnit[U](u)
	}
	return Success(f())
}

// AndThenResult substitutes a value-producing continuation for an Ok.
func AndThenResult[U any](u Unit, f func() Result[U]) Result[U] {
	if u.failed {
		return failFromUnit[U](u)
	}
	return f()
}

// TryMapUnit produces a value when u is Ok, inside a trap labelled with
// label.
func TryMapUnit[U any](u Unit, f func() (U, error), label string) Result[U] {
	if u.failed {
		return failFromUnit[U](u)
	}
	return trap(label, f)
}

func failFromUnit[U any](u Unit) Result[U] {
	return Result[U]{err: u.err, id: u.id, createdAt: u.createdAt}
}
