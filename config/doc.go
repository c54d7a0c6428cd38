// Package config loads named tolerance regimes from YAML and turns them into
// tolerance.Context values.
//
// One pipeline usually needs several regimes at once, e.g. a strict one for
// vertex welding and a coarse one for visual simplification:
//
//	tolerance:
//	  default: 1e-6     # absolute tolerance of the unnamed profile
//	  relative: 0       # optional relative term, shared by all profiles
//	  profiles:
//	    weld: 1e-6
//	    visual: 0.01
//
// Every value can be overridden from the environment with the GEOMTOL_
// prefix: GEOMTOL_TOLERANCE_DEFAULT, GEOMTOL_TOLERANCE_RELATIVE.
// Profile names are case-insensitive.
package config
