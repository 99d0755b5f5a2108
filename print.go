package bst

import (
	"bufio"
	"fmt"
	"io"
)

// Fprint writes one traversal of t as a single line, for example
//
//	inorder:     1  3  4  5
//
// Labels are padded so that lines for different orders line up.
func Fprint[E any](w io.Writer, t Tree[E], order Order) error {
	if !order.valid() {
		return fmt.Errorf("unknown traversal order %s", order)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%-11s", order.String()+":"); err != nil {
		return err
	}

	var err error
	t.Walk(order, func(e E) bool {
		_, err = fmt.Fprintf(bw, "%3v", e)
		return err == nil
	})
	if err != nil {
		return err
	}

	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}
