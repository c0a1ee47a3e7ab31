package typescript

// Context is the set of grammar flags that change how productions behave.
type Context uint8

const (
	// ContextIn allows `in` as a relational operator.
	ContextIn Context = 1 << iota
	ContextYield
	ContextAwait
	ContextDecorator
	// ContextDisallowConditionalTypes stops `extends` from starting a
	// conditional type. It is set while parsing the extends clause of a
	// conditional type and cleared again in nested positions.
	ContextDisallowConditionalTypes
	// ContextAmbient is set inside `declare` declarations and .d.ts files.
	ContextAmbient
)

func (c Context) Has(flag Context) bool {
	return c&flag == flag
}

// with returns c with enter added and exit removed.
func (c Context) with(enter Context, exit Context) Context {
	return (c | enter) &^ exit
}

// withContext runs f with a modified context and restores the previous
// context on every exit path.
func withContext[T any](p *parser, enter Context, exit Context, f func() (T, error)) (T, error) {
	saved := p.ctx
	p.ctx = p.ctx.with(enter, exit)
	defer func() {
		p.ctx = saved
	}()
	return f()
}
