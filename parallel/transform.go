package parallel

import (
	"github.com/exascience/paralg/ranges"
	"github.com/exascience/paralg/sequential"
)

// Transform stores f(e) in out for each element e of in, at the same offset.
// out must have at least as many elements as in, and may be the same range
// as in.
func Transform[A, B any](x *Executor, in ranges.Range[A], out ranges.Range[B], f func(A) B) error {
	return transform(resolve(x), "transform", in, out, f)
}

// TransformN stores f(e) in out for each of the first n elements e of in, at
// the same offset. in and out must have at least n elements.
func TransformN[A, B any](x *Executor, in ranges.Range[A], n int, out ranges.Range[B], f func(A) B) error {
	return transformN(resolve(x), "transform_n", in, n, out, f)
}

// Transform2 stores f(e1, e2) in out for each pair of elements e1 of in1 and
// e2 of in2 at the same offset. in2 and out must have at least as many
// elements as in1.
func Transform2[A, B, C any](
	x *Executor,
	in1 ranges.Range[A],
	in2 ranges.Range[B],
	out ranges.Range[C],
	f func(A, B) C,
) error {
	x = resolve(x)
	if err := checkRange("first input", in1); err != nil {
		return err
	}
	if err := checkRange("second input", in2); err != nil {
		return err
	}
	if err := checkRange("output", out); err != nil {
		return err
	}
	n := in1.Len()
	if err := checkLen("second input", in2, n); err != nil {
		return err
	}
	if err := checkLen("output", out, n); err != nil {
		return err
	}
	const op = "transform2"
	strategy := strategyOf(in1.Kind(), in2.Kind(), out.Kind())
	return x.call(op, strategy, n, func() error {
		l, err := x.layout(strategy, n)
		if err != nil {
			return err
		}
		p1, p2, po := split(in1, l), split(in2, l), split(out, l)
		return x.run(op, func(i int) (int, error) {
			src1, ok := p1.part(i)
			if !ok {
				return 0, nil
			}
			src2, _ := p2.part(i)
			dst, _ := po.part(i)
			return sequential.Transform2(src1, src2, dst, f), nil
		})
	})
}

// Transform2N stores f(e1, e2) in out for each of the first n pairs of
// elements e1 of in1 and e2 of in2 at the same offset. in1, in2 and out must
// have at least n elements.
func Transform2N[A, B, C any](
	x *Executor,
	in1 ranges.Range[A],
	n int,
	in2 ranges.Range[B],
	out ranges.Range[C],
	f func(A, B) C,
) error {
	x = resolve(x)
	if err := checkRange("first input", in1); err != nil {
		return err
	}
	if err := checkRange("second input", in2); err != nil {
		return err
	}
	if err := checkRange("output", out); err != nil {
		return err
	}
	if err := checkCount("first input", in1, n); err != nil {
		return err
	}
	if err := checkCount("second input", in2, n); err != nil {
		return err
	}
	if err := checkCount("output", out, n); err != nil {
		return err
	}
	const op = "transform2_n"
	strategy := strategyOf(in1.Kind(), in2.Kind(), out.Kind())
	return x.call(op, strategy, n, func() error {
		l, err := x.layout(strategy, n)
		if err != nil {
			return err
		}
		p1, p2, po := splitN(in1, l), splitN(in2, l), splitN(out, l)
		return x.run(op, func(i int) (int, error) {
			c1, budget := p1.cursor(i)
			if budget == 0 {
				return 0, nil
			}
			c2, _ := p2.cursor(i)
			co, _ := po.cursor(i)
			sequential.Transform2N(c1, budget, c2, co, f)
			return budget, nil
		})
	})
}

// ZipForEach invokes f for each pair of elements of a and b at the same
// offset. b must have at least as many elements as a.
//
// The pairs are visited concurrently, in no particular order.
func ZipForEach[A, B any](x *Executor, a ranges.Range[A], b ranges.Range[B], f func(A, B)) error {
	x = resolve(x)
	if err := checkRange("first", a); err != nil {
		return err
	}
	if err := checkRange("second", b); err != nil {
		return err
	}
	n := a.Len()
	if err := checkLen("second", b, n); err != nil {
		return err
	}
	const op = "zip_for_each"
	strategy := strategyOf(a.Kind(), b.Kind())
	return x.call(op, strategy, n, func() error {
		l, err := x.layout(strategy, n)
		if err != nil {
			return err
		}
		pa, pb := split(a, l), split(b, l)
		return x.run(op, func(i int) (int, error) {
			part1, ok := pa.part(i)
			if !ok {
				return 0, nil
			}
			part2, _ := pb.part(i)
			return sequential.ZipForEach(part1, part2, f), nil
		})
	})
}

func transform[A, B any](x *Executor, op string, in ranges.Range[A], out ranges.Range[B], f func(A) B) error {
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
			return sequential.Transform(src, dst, f), nil
		})
	})
}

func transformN[A, B any](x *Executor, op string, in ranges.Range[A], n int, out ranges.Range[B], f func(A) B) error {
	if err := checkRange("input", in); err != nil {
		return err
	}
	if err := checkRange("output", out); err != nil {
		return err
	}
	if err := checkCount("input", in, n); err != nil {
		return err
	}
	if err := checkCount("output", out, n); err != nil {
		return err
	}
	strategy := strategyOf(in.Kind(), out.Kind())
	return x.call(op, strategy, n, func() error {
		l, err := x.layout(strategy, n)
		if err != nil {
			return err
		}
		pin, pout := splitN(in, l), splitN(out, l)
		return x.run(op, func(i int) (int, error) {
			src, budget := pin.cursor(i)
			if budget == 0 {
				return 0, nil
			}
			dst, _ := pout.cursor(i)
			sequential.TransformN(src, budget, dst, f)
			return budget, nil
		})
	})
}
