package entity

import "fmt"

// MapFormatError reports a map description that cannot be turned into a level
type MapFormatError struct {
	Reason string
	Err    error
}

func (e *MapFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("map format: %s: %v", e.Reason, e.Err)
	}
	return "map format: " + e.Reason
}

func (e *MapFormatError) Unwrap() error {
	return e.Err
}

// UnknownMetaTileError is returned when a named metatile is not defined
type UnknownMetaTileError struct {
	Name string
}

func (e *UnknownMetaTileError) Error() string {
	return fmt.Sprintf("unknown metatile %q", e.Name)
}

// RequiredObjectNotFoundError is returned when a level lacks an object the scene depends on
type RequiredObjectNotFoundError struct {
	Kind ObjectKind
}

func (e *RequiredObjectNotFoundError) Error() string {
	return fmt.Sprintf("required object %s not found", e.Kind)
}

// UnknownObjectTypeWarning describes an object that was skipped during load
type UnknownObjectTypeWarning struct {
	Type string
	ID   uint32
}

func (e *UnknownObjectTypeWarning) Error() string {
	return fmt.Sprintf("unknown object type %q (object %d)", e.Type, e.ID)
}
