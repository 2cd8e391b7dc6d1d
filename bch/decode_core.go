package bch

// decodeWorkspace holds the Berlekamp-Massey and Chien-search scratch
// space for one decode call, sized from t at allocation time. It is
// never stored on a *Codec: callers get a fresh workspace per call (see
// newDecodeWorkspace), which is what lets a single Codec be shared
// read-only across concurrently decoding goroutines.
type decodeWorkspace struct {
	// elp[u] holds the error-locator polynomial coefficients at
	// Berlekamp-Massey step u, alternating between polynomial and log
	// form as the algorithm proceeds (see findErrors). Sized 2t+5 in
	// both dimensions: 2t+5 steps is the fixed bound the reference
	// implementation uses, and no coefficient index ever needs to
	// exceed 2t-1 since l[u] is capped at t for every step that
	// continues the loop.
	elp [][]int

	discrepancy []int
	l           []int
	uLu         []int

	loc []int
	reg []int
}

func newDecodeWorkspace(t int) *decodeWorkspace {
	t2 := 2 * t
	rows := t2 + 5
	cols := t2 + 5

	ws := &decodeWorkspace{
		elp:         make([][]int, rows),
		discrepancy: make([]int, rows),
		l:           make([]int, rows),
		uLu:         make([]int, rows),
		loc:         make([]int, t+1),
		reg:         make([]int, t+1),
	}
	for i := range ws.elp {
		ws.elp[i] = make([]int, cols)
	}
	return ws
}

// findErrors runs Berlekamp-Massey followed by Chien search. s holds the
// syndromes in log form, index 1..2t, s[0] unused, -1 the sentinel for a
// zero syndrome. It returns the bit positions of the located errors (as
// codeword degree indices, 0 = lowest degree) and whether the pattern is
// believed correctable (Berlekamp-Massey found a locator of degree <= t
// and Chien search found exactly that many roots).
func (c *Codec) findErrors(s []int, ws *decodeWorkspace) (loc []int, ok bool) {
	t2 := 2 * c.t
	n := c.n
	alphaTo := c.alphaTo
	indexOf := c.indexOf

	elp := ws.elp
	discrepancy := ws.discrepancy
	l := ws.l
	uLu := ws.uLu

	discrepancy[0] = 0
	discrepancy[1] = s[1]
	elp[0][0] = 0
	elp[1][0] = 1
	for i := 1; i < t2; i++ {
		elp[0][i] = -1
		elp[1][i] = 0
	}
	l[0], l[1] = 0, 0
	uLu[0], uLu[1] = -1, 0

	u := 0
	for {
		u++
		if discrepancy[u] == -1 {
			l[u+1] = l[u]
			for i := 0; i <= l[u]; i++ {
				elp[u+1][i] = elp[u][i]
				elp[u][i] = indexOf[elp[u][i]]
			}
		} else {
			q := u - 1
			for q > 0 && discrepancy[q] == -1 {
				q--
			}
			if q > 0 {
				for j := q; j > 0; {
					j--
					if discrepancy[j] != -1 && uLu[q] < uLu[j] {
						q = j
					}
				}
			}

			if l[u] > l[q]+u-q {
				l[u+1] = l[u]
			} else {
				l[u+1] = l[q] + u - q
			}

			for i := 0; i < t2; i++ {
				elp[u+1][i] = 0
			}
			for i := 0; i <= l[q]; i++ {
				if elp[q][i] != -1 {
					elp[u+1][i+u-q] = alphaTo[(discrepancy[u]+n-discrepancy[q]+elp[q][i])%n]
				}
			}
			for i := 0; i <= l[u]; i++ {
				elp[u+1][i] ^= elp[u][i]
				elp[u][i] = indexOf[elp[u][i]]
			}
		}
		uLu[u+1] = u - l[u+1]

		if u < t2 {
			if s[u+1] != -1 {
				discrepancy[u+1] = alphaTo[s[u+1]]
			} else {
				discrepancy[u+1] = 0
			}
			for i := 1; i <= l[u+1]; i++ {
				if s[u+1-i] != -1 && elp[u+1][i] != 0 {
					discrepancy[u+1] ^= alphaTo[(s[u+1-i]+indexOf[elp[u+1][i]])%n]
				}
			}
			discrepancy[u+1] = indexOf[discrepancy[u+1]]
		}

		if !(u < t2 && l[u+1] <= c.t) {
			break
		}
	}
	u++

	if l[u] > c.t {
		return nil, false
	}

	for i := 0; i <= l[u]; i++ {
		elp[u][i] = indexOf[elp[u][i]]
	}

	lDeg := l[u]
	reg := ws.reg
	for j := 1; j <= lDeg; j++ {
		reg[j] = elp[u][j]
	}

	count := 0
	locBuf := ws.loc
	for i := 1; i <= n; i++ {
		q := 1
		for j := 1; j <= lDeg; j++ {
			if reg[j] != -1 {
				reg[j] = (reg[j] + j) % n
				q ^= alphaTo[reg[j]]
			}
		}
		if q == 0 {
			if count < len(locBuf) {
				locBuf[count] = n - i
			}
			count++
		}
	}

	if count != lDeg {
		return nil, false
	}
	return locBuf[:count], true
}
