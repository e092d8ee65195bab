package seqs_test

import (
	"fmt"
	"slices"

	"commons/queues"
	"commons/seqs"
)

func ExampleZip() {
	names := slices.Values([]string{"a", "b", "c"})

	for p := range seqs.Zip(names, seqs.Range(1, 100, 1)) {
		fmt.Println(p.V1, p.V2)
	}

	// Output:
	// a 1
	// b 2
	// c 3
}

func ExampleFinality() {
	input := slices.Values([]string{"x", "y", "z"})

	for last, v := range seqs.Finality(input) {
		fmt.Println(v, last)
	}

	// Output:
	// x false
	// y false
	// z true
}

func ExampleDrain() {
	q := queues.NewArrayQueue[int](4)
	q.EnqueueAll(1, 2)

	for v := range seqs.Drain(q) {
		fmt.Println(v)
		if v == 1 {
			// picked up by the same drain
			q.Enqueue(3)
		}
	}
	fmt.Println(q.IsEmpty())

	// Output:
	// 1
	// 2
	// 3
	// true
}

func ExampleEnumerateFrom() {
	for i, v := range seqs.EnumerateFrom(slices.Values([]string{"a", "b"}), 1) {
		fmt.Printf("%d:%s\n", i, v)
	}

	// Output:
	// 1:a
	// 2:b
}
