package parallel

import (
	"github.com/exascience/paralg/ranges"
	"github.com/exascience/paralg/sequential"
)

func identity[T any](v T) T { return v }

// Copy copies the elements of in to out. out must have at least as many
// elements as in.
func Copy[T any](x *Executor, in, out ranges.Range[T]) error {
	return transform(resolve(x), "copy", in, out, identity[T])
}

// CopyN copies the first n elements of in to out.
func CopyN[T any](x *Executor, in ranges.Range[T], n int, out ranges.Range[T]) error {
	return transformN(resolve(x), "copy_n", in, n, out, identity[T])
}

/*
CopyBackward copies the elements of in to the last elements of out, such that
the last element of in ends up in the last element of out.

Both ranges must be indexable, or have a Reversible sequence; otherwise
CopyBackward returns an error wrapping paralg.ErrNotReversible.
*/
func CopyBackward[T any](x *Executor, in, out ranges.Range[T]) error {
	rin, rout, err := reverse2(in, out)
	if err != nil {
		return err
	}
	return transform(resolve(x), "copy_backward", rin, rout, identity[T])
}

// ReverseCopy copies the elements of in to out in reverse order, such that
// the last element of in ends up in the first element of out.
func ReverseCopy[T any](x *Executor, in, out ranges.Range[T]) error {
	if err := checkRange("input", in); err != nil {
		return err
	}
	rin, err := ranges.Reverse(in)
	if err != nil {
		return err
	}
	return transform(resolve(x), "reverse_copy", rin, out, identity[T])
}

// Move moves the elements of in to out, and resets the elements of in to the
// zero value of T, so that in no longer references them. out must have at
// least as many elements as in.
func Move[T any](x *Executor, in, out ranges.Range[T]) error {
	return move(resolve(x), "move", in, out)
}

// MoveBackward is like CopyBackward, but resets the elements of in to the
// zero value of T, like Move.
func MoveBackward[T any](x *Executor, in, out ranges.Range[T]) error {
	rin, rout, err := reverse2(in, out)
	if err != nil {
		return err
	}
	return move(resolve(x), "move_backward", rin, rout)
}

// Fill assigns v to all elements of r.
func Fill[T any](x *Executor, r ranges.Range[T], v T) error {
	return update(resolve(x), "fill", r, func(T) (T, bool) { return v, true })
}

// FillN assigns v to the first n elements of r.
func FillN[T any](x *Executor, r ranges.Range[T], n int, v T) error {
	return updateN(resolve(x), "fill_n", r, n, func(T) (T, bool) { return v, true })
}

// Generate assigns the results of successive calls of gen to the elements
// of r. gen is called concurrently, and the order in which its results are
// assigned is unspecified.
func Generate[T any](x *Executor, r ranges.Range[T], gen func() T) error {
	return update(resolve(x), "generate", r, func(T) (T, bool) { return gen(), true })
}

// GenerateN is like Generate, but only for the first n elements of r.
func GenerateN[T any](x *Executor, r ranges.Range[T], n int, gen func() T) error {
	return updateN(resolve(x), "generate_n", r, n, func(T) (T, bool) { return gen(), true })
}

// Replace replaces all elements of r that are equal to old with new.
func Replace[T comparable](x *Executor, r ranges.Range[T], old, new T) error {
	return update(resolve(x), "replace", r, func(e T) (T, bool) { return new, e == old })
}

// ReplaceIf replaces all elements of r that satisfy pred with new.
func ReplaceIf[T any](x *Executor, r ranges.Range[T], pred func(T) bool, new T) error {
	return update(resolve(x), "replace_if", r, func(e T) (T, bool) { return new, pred(e) })
}

// ReplaceCopy copies the elements of in to out, replacing elements equal to
// old with new.
func ReplaceCopy[T comparable](x *Executor, in, out ranges.Range[T], old, new T) error {
	return transform(resolve(x), "replace_copy", in, out, func(e T) T {
		if e == old {
			return new
		}
		return e
	})
}

// ReplaceCopyIf copies the elements of in to out, replacing elements that
// satisfy pred with new.
func ReplaceCopyIf[T any](x *Executor, in, out ranges.Range[T], pred func(T) bool, new T) error {
	return transform(resolve(x), "replace_copy_if", in, out, func(e T) T {
		if pred(e) {
			return new
		}
		return e
	})
}

func reverse2[T any](in, out ranges.Range[T]) (rin, rout ranges.Range[T], err error) {
	if err = checkRange("input", in); err != nil {
		return
	}
	if err = checkRange("output", out); err != nil {
		return
	}
	if rin, err = ranges.Reverse(in); err != nil {
		return
	}
	rout, err = ranges.Reverse(out)
	return
}

func move[T any](x *Executor, op string, in, out ranges.Range[T]) error {
	if err := checkRange("input", in); err != nil {
		return err
	}
	if err := checkRange("output", out); err != nil {
		return err
	}
	n := in.Len()
	if err := checkLen("output", out, n); err != nil {
		return err
	}
	strategy := strategyOf(in.Kind(), out.Kind())
	return x.call(op, strategy, n, func() error {
		l, err := x.layout(strategy, n)
		if err != nil {
			return err
		}
		pin, pout := split(in, l), split(out, l)
		return x.run(op, func(i int) (int, error) {
			src, ok := pin.part(i)
			if !ok {
				return 0, nil
			}
			dst, _ := pout.part(i)
			return sequential.Move(src, dst), nil
		})
	})
}

func update[T any](x *Executor, op string, r ranges.Range[T], f func(T) (T, bool)) error {
	if err := checkRange("input", r); err != nil {
		return err
	}
	strategy := r.Kind()
	return x.call(op, strategy, knownLen(r), func() error {
		l, err := x.layout(strategy, knownLen(r))
		if err != nil {
			return err
		}
		p := split(r, l)
		return x.run(op, func(i int) (int, error) {
			part, ok := p.part(i)
			if !ok {
				return 0, nil
			}
			return sequential.Modify(part, f), nil
		})
	})
}

func updateN[T any](x *Executor, op string, r ranges.Range[T], n int, f func(T) (T, bool)) error {
	if err := checkRange("input", r); err != nil {
		return err
	}
	if err := checkCount("input", r, n); err != nil {
		return err
	}
	strategy := r.Kind()
	return x.call(op, strategy, n, func() error {
		l, err := x.layout(strategy, n)
		if err != nil {
			return err
		}
		p := splitN(r, l)
		return x.run(op, func(i int) (int, error) {
			c, budget := p.cursor(i)
			if budget == 0 {
				return 0, nil
			}
			sequential.ModifyN(c, budget, f)
			return budget, nil
		})
	})
}
