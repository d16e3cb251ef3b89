package idutil

import "github.com/google/uuid"

// ID is a UUIDv7 tagged with the kind of thing it identifies, so IDs of
// different kinds cannot be mixed up. The zero ID renders as "".
type ID[T any] struct{ uuid.UUID }

func New[T any]() (ID[T], error) {
	u, err := uuid.NewV7()
	if err != nil {
		return ID[T]{}, err
	}
	return ID[T]{UUID: u}, nil
}

func Parse[T any](s string) (ID[T], error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID[T]{}, err
	}
	return ID[T]{UUID: u}, nil
}

func (id ID[T]) IsZero() bool { return id.UUID == uuid.Nil }

func (id ID[T]) String() string {
	if id.IsZero() {
		return ""
	}
	return id.UUID.String()
}

func (id ID[T]) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ID[T]) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*id = ID[T]{}
		return nil
	}
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err
	}
	id.UUID = u
	return nil
}
