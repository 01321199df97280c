package vec

// Mat3 is a row major 3x3 matrix, M[row][col].
type Mat3 struct {
	M [3][3]float32
}

// Mat4 is a row major 4x4 matrix, M[row][col]. Vectors are columns, so
// a.Mul(b) applies b first.
type Mat4 struct {
	M [4][4]float32
}

func Mat3Identity() Mat3 {
	return Mat3{M: [3][3]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

func Mat3FromCols(c0, c1, c2 Vec3) Mat3 {
	return Mat3{M: [3][3]float32{
		{c0.X, c1.X, c2.X},
		{c0.Y, c1.Y, c2.Y},
		{c0.Z, c1.Z, c2.Z},
	}}
}

// Mat3 returns the upper left 3x3 block.
func (m Mat4) Mat3() Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.M[i][j] = m.M[i][j]
		}
	}
	return r
}

func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z,
		m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z,
		m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z,
	}
}

func (m Mat3) Mul(o Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				r.M[i][j] += m.M[i][k] * o.M[k][j]
			}
		}
	}
	return r
}

func (m Mat3) Transpose() Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.M[i][j] = m.M[j][i]
		}
	}
	return r
}

func (m Mat3) Determinant() float32 {
	a := m.M
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// InverseTranspose is the inverse of the transposed matrix, the transform
// for normals.
func (m Mat3) InverseTranspose() Mat3 {
	a := m.M
	var r Mat3
	// cofactor matrix divided by the determinant
	r.M[0][0] = a[1][1]*a[2][2] - a[1][2]*a[2][1]
	r.M[0][1] = -(a[1][0]*a[2][2] - a[1][2]*a[2][0])
	r.M[0][2] = a[1][0]*a[2][1] - a[1][1]*a[2][0]
	r.M[1][0] = -(a[0][1]*a[2][2] - a[0][2]*a[2][1])
	r.M[1][1] = a[0][0]*a[2][2] - a[0][2]*a[2][0]
	r.M[1][2] = -(a[0][0]*a[2][1] - a[0][1]*a[2][0])
	r.M[2][0] = a[0][1]*a[1][2] - a[0][2]*a[1][1]
	r.M[2][1] = -(a[0][0]*a[1][2] - a[0][2]*a[1][0])
	r.M[2][2] = a[0][0]*a[1][1] - a[0][1]*a[1][0]
	d := a[0][0]*r.M[0][0] + a[0][1]*r.M[0][1] + a[0][2]*r.M[0][2]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.M[i][j] /= d
		}
	}
	return r
}

func (m Mat3) Inverse() Mat3 {
	return m.InverseTranspose().Transpose()
}

// Mat3Combine blends four matrices, as used for skinning.
func Mat3Combine(m [4]Mat3, weights Vec4) Mat3 {
	w := [4]float32{weights.X, weights.Y, weights.Z, weights.W}
	var r Mat3
	for n := range m {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				r.M[i][j] += m[n].M[i][j] * w[n]
			}
		}
	}
	return r
}

func Mat4Identity() Mat4 {
	return Mat4{M: [4][4]float32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// Mat4FromQuat returns the rotation matrix of a unit quaternion.
func Mat4FromQuat(q Quat) Mat4 {
	x2, y2, z2 := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z
	return Mat4{M: [4][4]float32{
		{1 - 2*(y2+z2), 2 * (xy - wz), 2 * (xz + wy), 0},
		{2 * (xy + wz), 1 - 2*(x2+z2), 2 * (yz - wx), 0},
		{2 * (xz - wy), 2 * (yz + wx), 1 - 2*(x2+y2), 0},
		{0, 0, 0, 1},
	}}
}

// Mat4FromTRS returns translate * rotate * scale.
func Mat4FromTRS(t Vec3, r Quat, s Vec3) Mat4 {
	m := Mat4FromQuat(r)
	for i := 0; i < 3; i++ {
		m.M[i][0] *= s.X
		m.M[i][1] *= s.Y
		m.M[i][2] *= s.Z
	}
	m.M[0][3] = t.X
	m.M[1][3] = t.Y
	m.M[2][3] = t.Z
	return m
}

func Mat4Combine(m [4]Mat4, weights Vec4) Mat4 {
	w := [4]float32{weights.X, weights.Y, weights.Z, weights.W}
	var r Mat4
	for n := range m {
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				r.M[i][j] += m[n].M[i][j] * w[n]
			}
		}
	}
	return r
}

func (m Mat4) MulVec(v Vec4) Vec4 {
	c := [4]float32{v.X, v.Y, v.Z, v.W}
	var r [4]float32
	for i := 0; i < 4; i++ {
		for k := 0; k < 4; k++ {
			r[i] += m.M[i][k] * c[k]
		}
	}
	return Vec4{r[0], r[1], r[2], r[3]}
}

func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				r.M[i][j] += m.M[i][k] * o.M[k][j]
			}
		}
	}
	return r
}

func (m Mat4) Transpose() Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.M[i][j] = m.M[j][i]
		}
	}
	return r
}

// minor returns the determinant of m without row r and column c.
func (m Mat4) minor(r, c int) float32 {
	var s Mat3
	si := 0
	for i := 0; i < 4; i++ {
		if i == r {
			continue
		}
		sj := 0
		for j := 0; j < 4; j++ {
			if j == c {
				continue
			}
			s.M[si][sj] = m.M[i][j]
			sj++
		}
		si++
	}
	return s.Determinant()
}

func (m Mat4) InverseTranspose() Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			cof := m.minor(i, j)
			if (i+j)%2 == 1 {
				cof = -cof
			}
			r.M[i][j] = cof
		}
	}
	var d float32
	for j := 0; j < 4; j++ {
		d += m.M[0][j] * r.M[0][j]
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.M[i][j] /= d
		}
	}
	return r
}

func (m Mat4) Inverse() Mat4 {
	return m.InverseTranspose().Transpose()
}
