// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package mem

import "io"

// ReadFrom reads r until EOF and replaces the content of b.
//
// ReadFrom returns the number of bytes read and any error encountered,
// except that io.EOF is not returned as an error.
func ReadFrom(b *Buffer[byte], r io.Reader) (n int64, err error) {
	b.Reset()
	for {
		buf := make([]byte, b.segmentLen())
		c, err := io.ReadAtLeast(r, buf, len(buf))
		if c > 0 {
			n += int64(c)
			b.segments = append(b.segments, segment[byte]{
				seg: buf[:c],
				off: int(n),
			})
		}
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				err = nil
			}
			return n, err
		}
	}
}

// WriteTo writes the content of b to w, one segment at a time.
func WriteTo(b *Buffer[byte], w io.Writer) (n int64, err error) {
	for i := range b.segments {
		c, err := w.Write(b.segments[i].seg)
		n += int64(c)
		if err != nil {
			return n, err
		}
	}
	return
}
