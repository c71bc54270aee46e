package main

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"text/tabwriter"

	"github.com/cwbudde/algo-linalg/linalg"
)

type row struct {
	pattern  string
	category linalg.Category
	shape    linalg.Shape
	maxDiff  float64 // largest relative difference over all ops
}

type operands[F linalg.Float] struct {
	x, y, p *linalg.Vector[F] // p is strictly positive
	a, b    *linalg.Matrix[F]
}

func newOperands[F linalg.Float](n int) operands[F] {
	rng := rand.New(rand.NewSource(1))
	values := func(count int, lo, hi float64) []F {
		out := make([]F, count)
		for i := range out {
			out[i] = F(lo + (hi-lo)*rng.Float64())
		}
		return out
	}
	return operands[F]{
		x: linalg.VectorOf(values(n, -1, 1)...),
		y: linalg.VectorOf(values(n, -1, 1)...),
		p: linalg.VectorOf(values(n, 0.5, 2)...),
		a: linalg.NewMatrixFromData(n, n, values(n*n, -1, 1)),
		b: linalg.NewMatrixFromData(n, n, values(n*n, -1, 1)),
	}
}

type pattern[F linalg.Float] struct {
	name  string
	build func(o operands[F]) linalg.Expr[F]
}

func patterns[F linalg.Float]() []pattern[F] {
	return []pattern[F]{
		{"a*x", func(o operands[F]) linalg.Expr[F] { return linalg.Scale[F](0.75, o.x) }},
		{"x/a", func(o operands[F]) linalg.Expr[F] { return linalg.DivScalar[F](o.x, 3) }},
		{"x+y", func(o operands[F]) linalg.Expr[F] { return linalg.Add[F](o.x, o.y) }},
		{"x-y", func(o operands[F]) linalg.Expr[F] { return linalg.Sub[F](o.x, o.y) }},
		{"x*y", func(o operands[F]) linalg.Expr[F] { return linalg.MulElem[F](o.x, o.y) }},
		{"x/y", func(o operands[F]) linalg.Expr[F] { return linalg.DivElem[F](o.x, o.p) }},
		{"sqrt(x)", func(o operands[F]) linalg.Expr[F] { return linalg.Sqrt[F](o.p) }},
		{"exp(x)", func(o operands[F]) linalg.Expr[F] { return linalg.Exp[F](o.x) }},
		{"log(x)", func(o operands[F]) linalg.Expr[F] { return linalg.Log[F](o.p) }},
		{"A*x", func(o operands[F]) linalg.Expr[F] { return linalg.MatVec[F](o.a, o.x) }},
		{"Aᵗ*x", func(o operands[F]) linalg.Expr[F] { return linalg.MatVec[F](o.a.T(), o.x) }},
		{"α*A*x", func(o operands[F]) linalg.Expr[F] {
			return linalg.Scale[F](-0.5, linalg.MatVec[F](o.a, o.x))
		}},
		{"α*Aᵗ*x", func(o operands[F]) linalg.Expr[F] {
			return linalg.Scale[F](2, linalg.MatVec[F](o.a.T(), o.x))
		}},
		{"A*B", func(o operands[F]) linalg.Expr[F] { return linalg.MatMul[F](o.a, o.b) }},
		{"α*A*B", func(o operands[F]) linalg.Expr[F] {
			return linalg.Scale[F](0.25, linalg.MatMul[F](o.a, o.b))
		}},
		{"x+A*x", func(o operands[F]) linalg.Expr[F] {
			return linalg.Add[F](o.x, linalg.MatVec[F](o.a, o.x))
		}},
	}
}

func patternNames() []string {
	ps := patterns[float64]()
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.name
	}
	return names
}

func selectPatterns[F linalg.Float](all []pattern[F], names []string) ([]pattern[F], error) {
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]pattern[F], len(all))
	for _, p := range all {
		byName[p.name] = p
	}
	out := make([]pattern[F], 0, len(names))
	for _, name := range names {
		p, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown pattern %q (use -list to see available)", name)
		}
		out = append(out, p)
	}
	return out, nil
}

func analyze[F linalg.Float](n int, names []string) ([]row, error) {
	selected, err := selectPatterns(patterns[F](), names)
	if err != nil {
		return nil, err
	}
	o := newOperands[F](n)
	ops := []linalg.Op{linalg.OpAssign, linalg.OpAdd, linalg.OpSub, linalg.OpMul, linalg.OpDiv}

	rows := make([]row, 0, len(selected))
	for _, p := range selected {
		e := p.build(o)
		r := row{pattern: p.name, category: linalg.Classify(e), shape: e.Shape()}
		for _, op := range ops {
			start := make([]F, e.Size())
			for i := range start {
				start[i] = 1
			}
			generic := append([]F(nil), start...)
			kernel := append([]F(nil), start...)
			linalg.Evaluate(op, generic, e, linalg.WithGenericPath())
			linalg.Evaluate(op, kernel, e)
			r.maxDiff = math.Max(r.maxDiff, maxRelDiff(kernel, generic))
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func maxRelDiff[F linalg.Float](got, want []F) float64 {
	var m float64
	for i := range got {
		g, w := float64(got[i]), float64(want[i])
		d := math.Abs(g-w) / math.Max(1, math.Abs(w))
		m = math.Max(m, d)
	}
	return m
}

func printRows(w io.Writer, rows []row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Pattern\tCategory\tShape\tMax rel. diff\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-------\t--------\t-----\t-------------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%.3g\n", r.pattern, r.category, r.shape, r.maxDiff); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}
