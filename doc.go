// Package georef is your toolbox for exact coordinate algebra — affine
// matrices that remember their rounding errors, and the datum shifts
// built on top of them.
//
// 🚀 What is georef?
//
//	A focused geodetic-referencing library that brings together:
//		• Double-double scalars: every value carries its own error term
//		• Affine matrices: general & fixed-size storages, factory, solver
//		• Axis & envelope factories: swap axes, map bounding boxes
//		• Datum shifts: Molodensky (complete & abridged) with analytic Jacobians
//		• Bursa-Wolf: seven-parameter position vector transformations
//		• WKT: format transform chains as single parameterized operations
//
// ✨ Why choose georef?
//
//   - Exact where it matters – deg→rad × rad→deg collapses to the identity, bit for bit
//   - Rock-solid errors – sentinel errors everywhere, checked via errors.Is
//   - Pure Go – no cgo, a handful of well-known deps
//   - Clear naming – operations say what they do, nothing more
//
// Under the hood, everything is organized under three subpackages:
//
//	dd/        — double-double arithmetic & the well-known constant table
//	matrix/    — storage, algebra, Gauss-Jordan solver, transform factories
//	transform/ — Molodensky, Bursa-Wolf, contextual parameters, WKT output
//
// Quick example: a degree→radian conversion concatenated with its own
// inverse is not "almost" the identity, it is the identity:
//
//	m, _ := matrix.NewExtended(3, 3)
//	_ = m.Set(0, 0, math.Pi/180)
//	_ = m.Set(1, 1, math.Pi/180)
//	_ = m.Set(2, 2, 1)
//	inv, _ := matrix.Inverse(m)
//	p, _ := matrix.Multiply(m, inv)
//	p.IsIdentity() // true, no tolerance involved
//
//	go get github.com/katalvlaran/georef
package georef
