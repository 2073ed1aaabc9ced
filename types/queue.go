// SPDX-License-Identifier: MIT
package types

import "bytes"

type (
	// ByteQueue is a `[]byte` consumed from the front.
	//
	// Popping only reslices, so forks of a ByteQueue never observe each other's consumption.
	ByteQueue []byte
)

// NewByteQueue copies src into a ByteQueue.
func NewByteQueue(src []byte) ByteQueue { return ByteQueue(bytes.Clone(src)) }

// Len is the number of bytes left in the `ByteQueue`.
func (q ByteQueue) Len() int { return len(q) }

// Pop removes the front byte of the `ByteQueue`.
func (q *ByteQueue) Pop() (b byte, ok bool) {
	if len(*q) < 1 {
		return
	}
	b, *q, ok = (*q)[0], (*q)[1:], true

	return
}

// Fork obtains an independent view of the remaining bytes.
func (q ByteQueue) Fork() ByteQueue { return q[:len(q):len(q)] }

// Bytes copies out the remaining bytes; the result is never nil.
func (q ByteQueue) Bytes() []byte {
	out := make([]byte, len(q))
	copy(out, q)

	return out
}
