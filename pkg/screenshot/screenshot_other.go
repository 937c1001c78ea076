//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package screenshot

func Select(opts Options) (Result, error) {
	return Result{}, ErrUnsupported
}
