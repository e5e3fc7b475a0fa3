package ui

// ID identifies a widget or container across frames. It is the 32-bit
// FNV-1a hash of a label, seeded by the ID on top of the ID stack.
type ID uint32

const (
	hashInitial ID = 2166136261
	hashPrime   ID = 16777619
)

func hashBytes(h ID, data []byte) ID {
	for _, b := range data {
		h = (h ^ ID(b)) * hashPrime
	}
	return h
}

func hashString(h ID, s string) ID {
	for i := 0; i < len(s); i++ {
		h = (h ^ ID(s[i])) * hashPrime
	}
	return h
}

func (ctx *Context) idSeed() ID {
	if top := ctx.idStack.top(); top != nil {
		return *top
	}
	return hashInitial
}

// GetID hashes data under the current ID scope and remembers it as the
// last ID.
func (ctx *Context) GetID(data []byte) ID {
	ctx.lastID = hashBytes(ctx.idSeed(), data)
	return ctx.lastID
}

func (ctx *Context) GetIDString(s string) ID {
	ctx.lastID = hashString(ctx.idSeed(), s)
	return ctx.lastID
}

// PushID opens an ID scope: IDs hashed until the matching PopID are
// distinct from the same labels outside it.
func (ctx *Context) PushID(data []byte) error {
	return ctx.pushIDValue(ctx.GetID(data))
}

func (ctx *Context) PushIDString(s string) error {
	return ctx.pushIDValue(ctx.GetIDString(s))
}

func (ctx *Context) pushIDValue(id ID) error {
	if err := ctx.idStack.push(id); err != nil {
		ctx.fail(err)
		return err
	}
	return nil
}

func (ctx *Context) PopID() error {
	if err := ctx.idStack.pop(); err != nil {
		ctx.fail(err)
		return err
	}
	return nil
}

// LastID is the most recent ID produced by GetID or a widget.
func (ctx *Context) LastID() ID { return ctx.lastID }
