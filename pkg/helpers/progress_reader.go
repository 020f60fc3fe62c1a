package helpers

import "io"

// ProgressReader reports cumulative bytes read from R. OnProgress fires only
// when the whole-percent value changes, and once more at EOF.
type ProgressReader struct {
	R          io.Reader
	Total      int64
	OnProgress func(read, total int64)

	read    int64
	lastPct int64
}

func NewProgressReader(r io.Reader, total int64, fn func(read, total int64)) *ProgressReader {
	return &ProgressReader{R: r, Total: total, OnProgress: fn, lastPct: -1}
}

func (p *ProgressReader) Read(b []byte) (int, error) {
	n, err := p.R.Read(b)
	p.read += int64(n)
	if p.OnProgress != nil && p.Total > 0 {
		pct := p.read * 100 / p.Total
		if pct != p.lastPct || err == io.EOF {
			p.lastPct = pct
			p.OnProgress(p.read, p.Total)
		}
	}
	return n, err
}
