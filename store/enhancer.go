package store

// Factory is the shape of New: anything that builds a Store from a reducer
// and options.
type Factory[S any] func(reducer Reducer[S], opts ...Option[S]) (*Store[S], error)

// Enhancer transforms a factory into another of the same shape, layering
// behavior over construction: injecting interceptors, wrapping the preloaded
// state, or swapping options wholesale. A store accepts exactly one enhancer
// natively (WithEnhancer); fold several into one with Compose.
type Enhancer[S any] func(next Factory[S]) Factory[S]

// Compose folds enhancers left to right: the first argument becomes the
// outermost layer, seeing the factory produced by all the ones after it.
// Composing nothing yields the identity enhancer.
func Compose[S any](enhancers ...Enhancer[S]) Enhancer[S] {
	return func(next Factory[S]) Factory[S] {
		for i := len(enhancers) - 1; i >= 0; i-- {
			next = enhancers[i](next)
		}
		return next
	}
}
