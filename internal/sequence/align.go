package sequence

// Alignment is the pairwise global alignment of a reference chain against a
// loop-derived chain, in one-letter codes. Gaps render as '.', the middle
// line marks agreeing columns with '|'.
type Alignment struct {
	Length      int     `json:"length"`
	Conflicts   int     `json:"conflict"`
	Coverage    float64 `json:"coverage"`
	RefAligned  string  `json:"ref_sequence"`
	Middle      string  `json:"middle"`
	TestAligned string  `json:"test_sequence"`
}

const (
	scoreMatch    = 1
	scoreMismatch = -1
	scoreGap      = -1
)

// Align computes the global alignment of two one-letter sequences with
// linear gap cost. Coverage is the fraction of alignment columns that do
// not conflict; gap columns count toward length but not toward conflicts.
func Align(ref, test string) Alignment {
	n, m := len(ref), len(test)

	score := make([][]int, n+1)
	for i := range score {
		score[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		score[i][0] = i * scoreGap
	}
	for j := 1; j <= m; j++ {
		score[0][j] = j * scoreGap
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			diag := score[i-1][j-1] + pairScore(ref[i-1], test[j-1])
			up := score[i-1][j] + scoreGap
			left := score[i][j-1] + scoreGap
			score[i][j] = max(diag, up, left)
		}
	}

	var ra, ta, mid []byte
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && score[i][j] == score[i-1][j-1]+pairScore(ref[i-1], test[j-1]):
			ra = append(ra, ref[i-1])
			ta = append(ta, test[j-1])
			if ref[i-1] == test[j-1] {
				mid = append(mid, '|')
			} else {
				mid = append(mid, ' ')
			}
			i--
			j--
		case i > 0 && score[i][j] == score[i-1][j]+scoreGap:
			ra = append(ra, ref[i-1])
			ta = append(ta, '.')
			mid = append(mid, ' ')
			i--
		default:
			ra = append(ra, '.')
			ta = append(ta, test[j-1])
			mid = append(mid, ' ')
			j--
		}
	}
	reverse(ra)
	reverse(ta)
	reverse(mid)

	a := Alignment{
		Length:      len(ra),
		RefAligned:  string(ra),
		Middle:      string(mid),
		TestAligned: string(ta),
	}
	for k := 0; k < a.Length; k++ {
		if ra[k] != '.' && ta[k] != '.' && ra[k] != ta[k] {
			a.Conflicts++
		}
	}
	if a.Length > 0 {
		a.Coverage = float64(a.Length-a.Conflicts) / float64(a.Length)
	}
	return a
}

func pairScore(a, b byte) int {
	if a == b {
		return scoreMatch
	}
	return scoreMismatch
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
