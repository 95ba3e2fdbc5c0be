package ringdeque_test

import (
	"errors"
	"fmt"

	"github.com/lucasgdosr/ringdeque"
)

func Example() {
	d, _ := ringdeque.MakeDeque[int](4)
	for x := 1; x <= 4; x++ {
		_ = d.PushBack(x)
	}
	if err := d.PushBack(5); errors.Is(err, ringdeque.ErrFull) {
		fmt.Println("full:", d)
	}

	front, _ := d.PopFront()
	_ = d.PushFront(0)
	fmt.Println(front, d, d.At(0))

	for v := range d.RIter() {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output:
	// full: [1 2 3 4]
	// 1 [0 2 3 4] 0
	// 4 3 2 0
}

func ExampleMakeDequeOver() {
	var storage [3]string
	d := ringdeque.MakeDequeOver(storage[:])
	_ = d.PushBack("b")
	_ = d.PushFront("a")
	fmt.Println(d, d.Len(), d.Cap())
	// Output: [a b] 2 3
}

func ExampleDeque_PushBackEvict() {
	d, _ := ringdeque.MakeDeque[string](2)
	for _, s := range []string{"a", "b", "c"} {
		if old, ok := d.PushBackEvict(s); ok {
			fmt.Println("evicted", old)
		}
	}
	fmt.Println(d)
	// Output:
	// evicted a
	// [b c]
}

func ExampleDeque_Get() {
	d := ringdeque.CopySliceToDeque([]int{10, 20})
	if _, err := d.Get(2); errors.Is(err, ringdeque.ErrOutOfBounds) {
		fmt.Println(err)
	}
	// Output: index 2 with length 2: index out of bounds
}
