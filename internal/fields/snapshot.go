package fields

// Snapshot holds the values of an entity's encryptable attributes at one
// point in time. Nullable attributes keep their original pointer.
type Snapshot struct {
	saved []savedValue
}

type savedValue struct {
	field   Field
	str     string
	nullStr *string
}

// TakeSnapshot records the current values of every [EncryptableFields]
// attribute of e. A nil e yields an empty Snapshot.
func TakeSnapshot(e Entity) Snapshot {
	fs := EncryptableFields(e)
	s := Snapshot{saved: make([]savedValue, 0, len(fs))}

	for _, f := range fs {
		v := savedValue{field: f}
		switch f.kind {
		case KindString:
			if f.str == nil {
				continue
			}
			v.str = *f.str
		case KindNullString:
			if f.nullStr == nil {
				continue
			}
			v.nullStr = *f.nullStr
		}
		s.saved = append(s.saved, v)
	}

	return s
}

// Restore writes the recorded values back into the entity.
func (s Snapshot) Restore() {
	for _, v := range s.saved {
		switch v.field.kind {
		case KindString:
			*v.field.str = v.str
		case KindNullString:
			*v.field.nullStr = v.nullStr
		}
	}
}
