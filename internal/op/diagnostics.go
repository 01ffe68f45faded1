package op

// printmeNotifier is an optional per-T policy: a trait method on the
// operand type itself, defaulting to a no-op for every T that doesn't
// implement it. Only FloatT overrides it; Interval, Dual and Symbol stay
// silent on PRINTME.
type printmeNotifier[T any] interface {
	OnPrintme(y T)
}

// onPrintme is PRINTME's diagnostic side effect: in all modes except the
// one gated by the symop_printme build tag it is a no-op; with that tag
// it writes a diagnostic line carrying y alongside x. It never influences
// the returned value, which is always x unchanged.
func onPrintme[T Scalar[T]](x, y T) {
	if n, ok := any(x).(printmeNotifier[T]); ok {
		n.OnPrintme(y)
	}
}
