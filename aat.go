package sparse

import "fmt"

// AAT computes the symmetry of the pattern of A and the number of nonzeros in
// each column of A+A', excluding the diagonal, without forming A' or A+A'.
//
// A is n-by-n in CSC form (ap, ai). Row indices must be sorted within each
// column with no duplicates; this is not checked (see Validate). length
// receives the column counts and tp is workspace, both of size n. info may be
// nil. The return value is the number of nonzeros in A+A', excluding the
// diagonal, which is also the sum of length.
func AAT(n int64, ap, ai, length, tp []int64, info *Info) uint64 {
	return AATTrace(n, ap, ai, length, tp, info, nil)
}

// AATTrace is AAT with a diagnostic tracer. The tracer only observes; results
// are identical to AAT.
func AATTrace(n int64, ap, ai, length, tp []int64, info *Info, tr Tracer) uint64 {
	if tr != nil {
		for k := int64(0); k < n; k++ {
			tp[k] = Empty
		}
		tr.Begin(n, Validate(n, n, ap, ai))
	}

	if info != nil {
		*info = Info{
			Status:    StatusOK,
			N:         Empty,
			NZ:        Empty,
			Symmetry:  float64(Empty),
			NZDiag:    Empty,
			NZAPlusAT: Empty,
			NZBoth:    Empty,
		}
	}

	for k := int64(0); k < n; k++ {
		length[k] = 0
	}

	var nzdiag, nzboth int64
	nz := ap[n]

	for k := int64(0); k < n; k++ {
		p1 := ap[k]
		p2 := ap[k+1]
		if tr != nil {
			tr.Column(k, p1, p2)
		}

		// construct A+A'
		p := p1
		for p < p2 {
			// scan the upper triangular part of A
			j := ai[p]
			if j < k {
				// A(j,k) is strictly upper: add both A(j,k) and A(k,j)
				length[j]++
				length[k]++
				if tr != nil {
					tr.Upper(j, k)
				}
				p++
			} else if j == k {
				p++
				nzdiag++
				break
			} else {
				// first entry below the diagonal
				break
			}

			// scan the lower part of column j up to row k, resuming where
			// the last scan of column j stopped
			pj2 := ap[j+1]
			pj := tp[j]
			for pj < pj2 {
				i := ai[pj]
				if i < k {
					// A(i,j) is only in the lower part: add A(i,j) and A(j,i)
					length[i]++
					length[j]++
					if tr != nil {
						tr.Lower(i, j)
					}
					pj++
				} else if i == k {
					// A(k,j) in lower part matches A(j,k) in upper
					pj++
					nzboth++
					break
				} else {
					// wait until k advances to i
					break
				}
			}
			tp[j] = pj
		}
		// tp[k] points to the entry just below the diagonal in column k
		tp[k] = p
	}

	// remaining mismatched entries
	for j := int64(0); j < n; j++ {
		for pj := tp[j]; pj < ap[j+1]; pj++ {
			i := ai[pj]
			length[i]++
			length[j]++
			if tr != nil {
				tr.Cleanup(i, j)
			}
		}
	}

	// sym = nnz(B & B') / nnz(B) with B the off-diagonal pattern of A,
	// or 1 if B is empty
	var sym float64
	if nz == nzdiag {
		sym = 1
	} else {
		sym = 2 * float64(nzboth) / float64(nz-nzdiag)
	}

	var nzaat uint64
	for k := int64(0); k < n; k++ {
		nzaat += uint64(length[k])
	}

	if info != nil {
		info.Status = StatusOK
		info.N = n
		info.NZ = nz
		info.Symmetry = sym
		info.NZDiag = nzdiag
		info.NZAPlusAT = int64(nzaat)
		info.NZBoth = nzboth
	}
	if tr != nil {
		tr.End(Info{
			Status:    StatusOK,
			N:         n,
			NZ:        nz,
			Symmetry:  sym,
			NZDiag:    nzdiag,
			NZAPlusAT: int64(nzaat),
			NZBoth:    nzboth,
		})
	}

	return nzaat
}

// AAT validates c and runs AAT on it with freshly allocated arrays. tr may be nil.
func (c *CSC) AAT(tr Tracer) (*Pattern, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("aat: %w", err)
	}

	pat := &Pattern{Len: make([]int64, c.N)}
	tp := make([]int64, c.N)
	pat.NZAAT = AATTrace(c.N, c.Ap, c.Ai, pat.Len, tp, &pat.Info, tr)

	return pat, nil
}
