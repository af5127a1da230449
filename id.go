package proptable

import "hash/fnv"

// ID uniquely identifies a widget for state lookups.
// IDs are stable across frames as long as the same labels are used
// under the same parent.
type ID uint64

// GetID derives a stable ID from a label within the current ID stack.
// Unlike a call-counter scheme, the result does not depend on draw order,
// so a table keeps its resize session even if widgets before it appear
// or disappear.
func (ctx *Context) GetID(label string) ID {
	h := fnv.New64a()
	var parent [8]byte
	p := uint64(ctx.CurrentID())
	for i := range parent {
		parent[i] = byte(p >> (8 * i))
	}
	h.Write(parent[:])
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// GetIDFromInt derives an ID from an integer within the current ID stack.
// Useful for rows and cells.
func (ctx *Context) GetIDFromInt(n int) ID {
	return ctx.CurrentID()*1099511628211 ^ ID(n+1)
}

// PushID pushes an ID onto the stack for nested widgets.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PushIDValue pushes an already computed ID onto the stack.
func (ctx *Context) PushIDValue(id ID) {
	ctx.idStack = append(ctx.idStack, id)
}

// PopID removes the last ID from the stack.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the current parent ID (top of stack).
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}
