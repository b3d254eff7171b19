package list_test

import (
	"fmt"

	"github.com/vailen/structures/list"
)

// ExampleList chains persistent mutations; each step consumes the previous
// list value and produces a new one.
func ExampleList() {
	l := list.New[int]().Push(3).Push(2).Push(1)

	l2, err := l.Insert(1, 42)
	if err != nil {
		fmt.Println("insert failed:", err)
		return
	}

	fmt.Println("before:", l.Slice())
	fmt.Println("after: ", l2.Slice())

	// Output:
	// before: [1 2 3]
	// after:  [1 42 2 3]
}

// ExampleList_Remove shows the hand-back contract on a bad index: the
// original list comes back unchanged with the error.
func ExampleList_Remove() {
	l := list.New[string]().Push("b").Push("a")

	_, same, err := l.Remove(5)
	fmt.Println(err)
	fmt.Println(same.Slice())

	// Output:
	// list: index out of range
	// [a b]
}
