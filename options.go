package proptable

// Option configures a widget call.
type Option func(*options)

// options holds widget configuration keyed by OptKey name.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
//
// Example:
//
//	var OptStripe = proptable.NewOptKey("stripe", true)
//	ctx.Table("items", rect, cols, grid, proptable.WithOpt(OptStripe, false))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value, or the key's default when unset.
func GetOpt[T any](o options, key OptKey[T]) T {
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Table options.
var (
	OptNoScroll   = NewOptKey("noScroll", false)
	OptState      = NewOptKey[*TableState]("state", nil)
	OptRowHeight  = NewOptKey[float32]("rowHeight", 0)
	OptDisabled   = NewOptKey("disabled", false)
	OptStripeRows = NewOptKey("stripeRows", true)
)

// NoScroll disables the horizontal scroll region; overflowing columns
// are drawn past the table rectangle.
func NoScroll() Option { return WithOpt(OptNoScroll, true) }

// WithState makes the table use a caller-owned state instead of one
// loaded from the context's StateStore. The store's Save hook is still
// called at the end of the frame.
func WithState(state *TableState) Option { return WithOpt(OptState, state) }

// WithRowHeight overrides the row height (default: one line).
func WithRowHeight(h float32) Option { return WithOpt(OptRowHeight, h) }

// WithDisabled renders the whole table non-interactive.
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// PlainRows disables alternating row backgrounds.
func PlainRows() Option { return WithOpt(OptStripeRows, false) }
