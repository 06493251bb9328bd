// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import "cogentcore.org/linklabel/text/textpos"

// clustersIn returns the clusters of the paragraph that contains
// start, restricted to the range [start, end).
func (wr *wrapper) clustersIn(start, end int) []cluster {
	for pi := range wr.paras {
		p := &wr.paras[pi]
		if start < p.rng.Start || start > p.rng.End {
			continue
		}
		var cl []cluster
		for _, c := range p.clusters {
			if c.start >= start && c.end <= end {
				cl = append(cl, c)
			}
		}
		return cl
	}
	return nil
}

// truncate returns the pieces of a line with content [start, end)
// that is cut to fit within avail together with the token, using
// the given truncation mode. Cuts are always at grapheme cluster
// boundaries, and white space next to the token is dropped.
// The token is always included, even if it does not fit.
func (wr *wrapper) truncate(mode LineBreaks, start, end int, avail float32) []piece {
	cl := wr.clustersIn(start, end)
	switch mode {
	case TruncateHead:
		return wr.truncateHead(cl, start, end, avail)
	case TruncateMiddle:
		return wr.truncateMiddle(cl, start, end, avail)
	}
	return wr.truncateTail(cl, start, avail)
}

// boundary returns the rune index after the first k clusters.
func boundary(cl []cluster, start, k int) int {
	if k == 0 {
		return start
	}
	return cl[k-1].end
}

// trimEnd returns the number of clusters after dropping trailing
// white space from the first k clusters.
func trimEnd(cl []cluster, k int) int {
	for k > 0 && cl[k-1].space {
		k--
	}
	return k
}

// trimStart returns the index of the first non-space cluster at or after k.
func trimStart(cl []cluster, k int) int {
	for k < len(cl) && cl[k].space {
		k++
	}
	return k
}

func (wr *wrapper) truncateTail(cl []cluster, start int, avail float32) []piece {
	cut := start
	for k := len(cl); k >= 0; k-- {
		pos := boundary(cl, start, trimEnd(cl, k))
		sty := wr.styleAt(max(pos-1, start))
		if wr.width(start, pos)+wr.tokenWidth(sty) <= avail {
			cut = pos
			break
		}
	}
	sty := wr.styleAt(max(cut-1, start))
	return []piece{{rng: textpos.R(start, cut)}, {token: true, style: sty}}
}

func (wr *wrapper) truncateHead(cl []cluster, start, end int, avail float32) []piece {
	end = boundary(cl, start, trimEnd(cl, len(cl)))
	cut := end
	for k := 0; k <= len(cl); k++ {
		k = trimStart(cl, k)
		pos := end
		if k < len(cl) {
			pos = cl[k].start
		}
		if pos > end {
			break
		}
		sty := wr.styleAt(min(pos, end-1))
		if wr.tokenWidth(sty)+wr.width(pos, end) <= avail {
			cut = pos
			break
		}
	}
	sty := wr.styleAt(min(cut, end-1))
	return []piece{{token: true, style: sty}, {rng: textpos.R(cut, end)}}
}

func (wr *wrapper) truncateMiddle(cl []cluster, start, end int, avail float32) []piece {
	n := trimEnd(cl, len(cl))
	end = boundary(cl, start, n)
	head, tail := 0, n // prefix is cl[:head], suffix is cl[tail:n]
	fits := func(h, t int) bool {
		pe := boundary(cl, start, trimEnd(cl, h))
		ss := end
		if t < n {
			ss = cl[trimStart(cl, t)].start
		}
		sty := wr.styleAt(max(pe-1, start))
		return wr.width(start, pe)+wr.tokenWidth(sty)+wr.width(ss, end) <= avail
	}
	front := true
	for head < tail {
		if front {
			if !fits(head+1, tail) {
				break
			}
			head++
		} else {
			if !fits(head, tail-1) {
				break
			}
			tail--
		}
		front = !front
	}
	pe := boundary(cl, start, trimEnd(cl, head))
	ss := end
	if tail < n {
		ss = cl[trimStart(cl, tail)].start
	}
	sty := wr.styleAt(max(pe-1, start))
	return []piece{{rng: textpos.R(start, pe)}, {token: true, style: sty}, {rng: textpos.R(ss, end)}}
}
