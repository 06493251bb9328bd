// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import "cogentcore.org/linklabel/text/textpos"

// LinkRange is implemented by links that can be hit tested.
type LinkRange interface {

	// LinkRange returns the half-open range of source runes of the link.
	LinkRange() textpos.Range
}

// Ranges returns the ranges of the given links, in order,
// for use with [Lines.LinkAt].
func Ranges[E any, P interface {
	*E
	LinkRange
}](lks []E) []textpos.Range {
	rs := make([]textpos.Range, len(lks))
	for i := range lks {
		rs[i] = P(&lks[i]).LinkRange()
	}
	return rs
}
