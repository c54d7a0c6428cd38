// SPDX-License-Identifier: MIT

package geom

// Add returns p translated by v.
func (p Point3) Add(v Vector3) Point3 {
	return Point3{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Sub returns the vector from q to p.
func (p Point3) Sub(q Point3) Vector3 {
	return Vector3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Vector returns the position vector of p (p - origin).
func (p Point3) Vector() Vector3 {
	return Vector3{X: p.X, Y: p.Y, Z: p.Z}
}

// Distance returns the Euclidean distance between p and q.
func (p Point3) Distance(q Point3) float64 {
	return p.Sub(q).Length()
}

// Lerp interpolates linearly: t=0 returns p, t=1 returns q.
func (p Point3) Lerp(q Point3, t float64) Point3 {
	return Point3{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
		Z: p.Z + (q.Z-p.Z)*t,
	}
}
