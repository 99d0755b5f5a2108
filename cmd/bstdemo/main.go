// Command bstdemo inserts integers into a binary search tree, deletes some
// of them again and prints the resulting traversals.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
