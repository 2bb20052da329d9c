// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fields describes the attributes of an entity type explicitly, so
// that encryption targets are known at compile time rather than discovered
// by reflection.
//
// An entity lists its attributes once, in a Fields method:
//
//	func (m *Message) Fields() []fields.Field {
//		return []fields.Field{
//			fields.Scalar("ID"),
//			fields.Encrypted("Text", &m.Text),
//		}
//	}
//
// Only string attributes can be marked: [Encrypted] and [EncryptedNullString]
// accept *string and **string, so a marker on any other type does not compile.
package fields

// Kind is the declared type class of an attribute.
type Kind uint8

const (
	// KindOther is any non-string attribute. It is listed but never transformed.
	KindOther Kind = iota
	// KindString is a plain string attribute.
	KindString
	// KindNullString is a *string attribute where nil means NULL.
	KindNullString
)

// String returns a short name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNullString:
		return "*string"
	default:
		return "other"
	}
}

// Field describes one attribute of one entity instance and gives read/write
// access to its current value.
type Field struct {
	name      string
	kind      Kind
	encrypted bool

	str     *string
	nullStr **string
}

// String describes a plain, unencrypted string attribute.
func String(name string, v *string) Field {
	return Field{name: name, kind: KindString, str: v}
}

// Encrypted describes a string attribute that is encrypted at rest.
func Encrypted(name string, v *string) Field {
	return Field{name: name, kind: KindString, encrypted: true, str: v}
}

// NullString describes a plain nullable string attribute.
func NullString(name string, v **string) Field {
	return Field{name: name, kind: KindNullString, nullStr: v}
}

// EncryptedNullString describes a nullable string attribute that is
// encrypted at rest. A nil value stays nil.
func EncryptedNullString(name string, v **string) Field {
	return Field{name: name, kind: KindNullString, encrypted: true, nullStr: v}
}

// Scalar describes a non-string attribute. It takes part in
// [PublicAttributesOf] but carries no accessor and can never be encrypted.
func Scalar(name string) Field {
	return Field{name: name, kind: KindOther}
}

// Name returns the attribute name.
func (f Field) Name() string { return f.name }

// Kind returns the declared type class.
func (f Field) Kind() Kind { return f.kind }

// Encrypted reports whether the attribute carries the encrypted marker.
func (f Field) Encrypted() bool { return f.encrypted }

// Get returns the current value. ok is false when the attribute has no
// string value to work with: a nil *string, or a non-string attribute.
func (f Field) Get() (value string, ok bool) {
	switch f.kind {
	case KindString:
		if f.str == nil {
			return "", false
		}
		return *f.str, true
	case KindNullString:
		if f.nullStr == nil || *f.nullStr == nil {
			return "", false
		}
		return **f.nullStr, true
	default:
		return "", false
	}
}

// Set writes value back into the attribute. It reports false when the
// attribute cannot hold a string value. For a nullable attribute the new
// value is stored in a fresh allocation so that other holders of the old
// pointer do not observe the change.
func (f Field) Set(value string) bool {
	switch f.kind {
	case KindString:
		if f.str == nil {
			return false
		}
		*f.str = value
		return true
	case KindNullString:
		if f.nullStr == nil {
			return false
		}
		v := value
		*f.nullStr = &v
		return true
	default:
		return false
	}
}

// Prefixed returns a copy of fs with every name prefixed by prefix and a dot.
// It is used to flatten the attributes of an embedded entity into its owner.
func Prefixed(prefix string, fs []Field) []Field {
	out := make([]Field, len(fs))
	for i, f := range fs {
		f.name = prefix + "." + f.name
		out[i] = f
	}
	return out
}
