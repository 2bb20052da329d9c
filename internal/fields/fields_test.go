package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type account struct {
	ID      int64
	Login   string
	Secret  string
	Hint    *string
	Balance float64
}

func (a *account) Fields() []Field {
	return []Field{
		Scalar("ID"),
		String("Login", &a.Login),
		Encrypted("Secret", &a.Secret),
		EncryptedNullString("Hint", &a.Hint),
		Scalar("Balance"),
	}
}

type empty struct{}

func (empty) Fields() []Field { return nil }

type withAddress struct {
	Name    string
	Address address
}

type address struct {
	Street string
	City   string
}

func (a *address) Fields() []Field {
	return []Field{
		Encrypted("Street", &a.Street),
		String("City", &a.City),
	}
}

func (w *withAddress) Fields() []Field {
	return append(
		[]Field{String("Name", &w.Name)},
		Prefixed("Address", w.Address.Fields())...,
	)
}

func TestIsEncryptable(t *testing.T) {
	var s string
	var ns *string

	tests := []struct {
		name  string
		field Field
		want  bool
	}{
		{name: "marked string", field: Encrypted("a", &s), want: true},
		{name: "marked nullable string", field: EncryptedNullString("a", &ns), want: true},
		{name: "unmarked string", field: String("a", &s), want: false},
		{name: "unmarked nullable string", field: NullString("a", &ns), want: false},
		{name: "non-string attribute", field: Scalar("a"), want: false},
		{name: "zero field", field: Field{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEncryptable(tt.field))
		})
	}
}

func TestPublicAttributesOf(t *testing.T) {
	got := PublicAttributesOf(&account{})

	assert.ElementsMatch(t, []Descriptor{
		{Name: "ID", Kind: KindOther},
		{Name: "Login", Kind: KindString},
		{Name: "Secret", Kind: KindString, Encrypted: true},
		{Name: "Hint", Kind: KindNullString, Encrypted: true},
		{Name: "Balance", Kind: KindOther},
	}, got)
}

func TestPublicAttributesOf_EmptyNotNil(t *testing.T) {
	got := PublicAttributesOf(empty{})
	require.NotNil(t, got)
	assert.Empty(t, got)

	got = PublicAttributesOf(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEncryptableFields(t *testing.T) {
	fs := EncryptableFields(&account{})

	names := make([]string, 0, len(fs))
	for _, f := range fs {
		names = append(names, f.Name())
	}
	assert.ElementsMatch(t, []string{"Secret", "Hint"}, names)

	assert.Empty(t, EncryptableFields(empty{}))
	assert.Nil(t, EncryptableFields(nil))
	assert.Nil(t, EncryptableFields((*account)(nil)))
}

func TestIsNil(t *testing.T) {
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil((*account)(nil)))
	assert.False(t, IsNil(&account{}))
	assert.False(t, IsNil(empty{}))
}

func TestField_GetSet_String(t *testing.T) {
	a := &account{Secret: "s3cret"}
	f := Encrypted("Secret", &a.Secret)

	v, ok := f.Get()
	require.True(t, ok)
	assert.Equal(t, "s3cret", v)

	require.True(t, f.Set("changed"))
	assert.Equal(t, "changed", a.Secret)
}

func TestField_GetSet_NullString(t *testing.T) {
	a := &account{}
	f := EncryptedNullString("Hint", &a.Hint)

	_, ok := f.Get()
	assert.False(t, ok, "nil value has nothing to read")

	hint := "first"
	a.Hint = &hint
	v, ok := f.Get()
	require.True(t, ok)
	assert.Equal(t, "first", v)

	require.True(t, f.Set("second"))
	assert.Equal(t, "second", *a.Hint)
	assert.Equal(t, "first", hint, "old pointer target must not change")
}

func TestField_Scalar(t *testing.T) {
	f := Scalar("ID")

	_, ok := f.Get()
	assert.False(t, ok)
	assert.False(t, f.Set("x"))
	assert.Equal(t, KindOther, f.Kind())
	assert.False(t, f.Encrypted())
}

func TestField_NilTargets(t *testing.T) {
	for _, f := range []Field{String("a", nil), NullString("b", nil)} {
		_, ok := f.Get()
		assert.False(t, ok)
		assert.False(t, f.Set("x"))
	}
}

func TestPrefixed(t *testing.T) {
	w := &withAddress{Name: "n", Address: address{Street: "Main st", City: "Town"}}

	attrs := PublicAttributesOf(w)
	assert.ElementsMatch(t, []Descriptor{
		{Name: "Name", Kind: KindString},
		{Name: "Address.Street", Kind: KindString, Encrypted: true},
		{Name: "Address.City", Kind: KindString},
	}, attrs)

	for _, f := range EncryptableFields(w) {
		require.True(t, f.Set("x"))
	}
	assert.Equal(t, "x", w.Address.Street, "prefixed fields still point into the nested value")
	assert.Equal(t, "Town", w.Address.City)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "*string", KindNullString.String())
	assert.Equal(t, "other", KindOther.String())
}

func TestSnapshot_Restore(t *testing.T) {
	hint := "first pet"
	a := &account{ID: 1, Login: "alice", Secret: "hunter2", Hint: &hint}

	snap := TakeSnapshot(a)

	for _, f := range a.Fields() {
		f.Set("changed")
	}
	require.Equal(t, "changed", a.Secret)
	require.Equal(t, "changed", *a.Hint)

	snap.Restore()

	assert.Equal(t, "hunter2", a.Secret)
	assert.Same(t, &hint, a.Hint, "nullable attribute gets its original pointer back")
	assert.Equal(t, "first pet", hint)
	assert.Equal(t, "changed", a.Login, "plain attributes are not recorded")
}

func TestSnapshot_NilAttributes(t *testing.T) {
	a := &account{Secret: "s"}

	snap := TakeSnapshot(a)
	a.Secret = "x"
	v := "set later"
	a.Hint = &v

	snap.Restore()

	assert.Equal(t, "s", a.Secret)
	assert.Nil(t, a.Hint)

	assert.NotPanics(t, func() { TakeSnapshot(nil).Restore() })
	assert.NotPanics(t, func() { TakeSnapshot((*account)(nil)).Restore() })
}
