package fields

import "reflect"

// Entity is implemented by every type whose attributes the transform engine
// may touch. Fields must return descriptors bound to the receiver, so it is
// normally implemented on the pointer type.
type Entity interface {
	Fields() []Field
}

// Descriptor is the immutable (name, declared type, encryption flag) view of
// an attribute, without access to its value.
type Descriptor struct {
	Name      string
	Kind      Kind
	Encrypted bool
}

// IsEncryptable reports whether the attribute is a transform target: its
// declared type is string-like and it carries the encrypted marker.
func IsEncryptable(f Field) bool {
	switch f.kind {
	case KindString, KindNullString:
		return f.encrypted
	default:
		return false
	}
}

// PublicAttributesOf lists the attributes the entity exposes. The result is
// never nil; an entity without attributes (or a nil entity) yields an empty
// slice. Callers must not rely on the order.
func PublicAttributesOf(e Entity) []Descriptor {
	if IsNil(e) {
		return []Descriptor{}
	}

	fs := e.Fields()
	out := make([]Descriptor, 0, len(fs))
	for _, f := range fs {
		out = append(out, Descriptor{
			Name:      f.name,
			Kind:      f.kind,
			Encrypted: IsEncryptable(f),
		})
	}

	return out
}

// EncryptableFields returns only the fields for which [IsEncryptable] holds.
func EncryptableFields(e Entity) []Field {
	if IsNil(e) {
		return nil
	}

	var out []Field
	for _, f := range e.Fields() {
		if IsEncryptable(f) {
			out = append(out, f)
		}
	}

	return out
}

// IsNil reports whether e is nil or a nil pointer held in the interface.
// Calling Fields on a nil pointer would dereference it.
func IsNil(e Entity) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
