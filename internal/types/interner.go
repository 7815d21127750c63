package types

// Interner deduplicates Type descriptors behind small TypeID handles.
// Constructed per compile; never shared across compiles, per the
// "no global state on type handles" rule this package follows.
type Interner struct {
	byID  []Type
	index map[Type]TypeID
	bool  TypeID
}

// NewInterner returns an empty Interner with the bool type pre-registered.
func NewInterner() *Interner {
	in := &Interner{
		byID:  []Type{{Kind: KindInvalid}},
		index: make(map[Type]TypeID),
	}
	in.bool = in.intern(Type{Kind: KindBool})
	return in
}

func (in *Interner) intern(t Type) TypeID {
	if id, ok := in.index[t]; ok {
		return id
	}
	id := TypeID(len(in.byID))
	in.byID = append(in.byID, t)
	in.index[t] = id
	return id
}

// Uint returns the TypeID for an unsigned integer of the given width,
// interning it if this is the first request for that width.
func (in *Interner) Uint(width Width) TypeID {
	return in.intern(Type{Kind: KindUint, Width: width})
}

// Bool returns the TypeID for the distinguished boolean type.
func (in *Interner) Bool() TypeID {
	return in.bool
}

// Lookup returns the Type descriptor for id.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if int(id) <= 0 || int(id) >= len(in.byID) {
		return Type{}, false
	}
	return in.byID[id], true
}

// MustLookup returns the Type descriptor for id, panicking if id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	t, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return t
}

// String renders id using its Type descriptor, or "<invalid type>" if id is
// not registered in this interner.
func (in *Interner) String(id TypeID) string {
	t, ok := in.Lookup(id)
	if !ok {
		return "<invalid type>"
	}
	return t.String()
}
