// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned by [Compose] for a source that is
// neither plain text nor styled text.
var ErrInvalidInput = errors.New("rich: invalid input")

// Compose builds the styled text for a label from the given source
// and base style. A plain string or []rune source gets the base style
// uniformly. A [Text] source keeps its span attributes, and any
// attribute not set on a span is taken from base.
//
// If transform is non-nil it is called once with a copy of the composed
// text, and its result becomes the final text. This lets callers override
// the styling of ranges after the base style has been applied.
// The result is normalized: no empty spans, no adjacent equal styles.
func Compose(source any, base Style, transform func(Text) Text) (Text, error) {
	var tx Text
	switch src := source.(type) {
	case string:
		tx = NewPlain(base, src)
	case []rune:
		tx = NewText(base, src)
	case Text:
		tx = inherit(src, base)
	case *Text:
		if src == nil {
			return nil, fmt.Errorf("%w: nil *rich.Text", ErrInvalidInput)
		}
		tx = inherit(*src, base)
	default:
		return nil, fmt.Errorf("%w: unsupported source type %T", ErrInvalidInput, source)
	}
	tx = tx.Normalize()
	if transform != nil {
		tx = transform(tx.Clone()).Normalize()
	}
	return tx, nil
}

func inherit(src Text, base Style) Text {
	tx := src.Clone()
	for i := range tx {
		tx[i].Style = tx[i].Style.Inherit(base)
	}
	return tx
}
