// Package geom defines the three-component value types consumed by the
// tolerance engine: Point3, Vector3 and Direction3.
//
// All three are plain structs of IEEE-754 doubles, passed and copied by value.
// They carry no identity and no shared state, so they can be used as map keys
// once canonicalized (see package canon).
//
// Direction3 is a Vector3 that its producer promises is unit length. Dir trusts
// that promise as-is; NewDirection3 enforces it by normalizing.
//
//	p := geom.Pt(1, 2, 3)
//	q := p.Add(geom.Vec(0, 0, 1))
//	d, err := geom.NewDirection3(q.Sub(p))
package geom
