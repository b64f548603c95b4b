package response

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// copyView maps a query view onto a response struct by field name.
func copyView[T any](src any) *T {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		// Only reachable with mismatched types, which is a programming error.
		panic(fmt.Sprintf("response mapping failed: %v", err))
	}
	return &dst
}
