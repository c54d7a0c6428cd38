// Package geomtol is a tolerance-based geometric equality engine for CAD/BIM
// pipelines, where every coordinate arrives perturbed by parsing, unit
// conversion and matrix composition.
//
// 🚀 What is inside?
//
//	geom/      — Point3, Vector3, Direction3 value types and their arithmetic
//	tolerance/ — Context: one tolerance, compare (Equal*) and canonicalize (Snap*)
//	canon/     — Hash / Compare adapters + HashSet, HashMap, SortedSet over snapped values
//	config/    — named tolerance profiles (weld, visual, ...) from YAML / env
//
// ✨ The one rule:
//
//	Equal* is for one-off checks and is NOT transitive.
//	Anything that goes into a set or map is snapped first; after Snap*,
//	exact equality is the equivalence the containers rely on.
//
// Quick example:
//
//	ctx := tolerance.MustNew(0.01)
//	ctx.SnapDirection(geom.Dir(0, 1.9e-6, 1.0000002)) // geom.PosZ
//
// The library is silent by default; call SetLogger to see construction and
// configuration logs.
//
//	go get github.com/katalvlaran/geomtol
package geomtol
