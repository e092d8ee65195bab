/*
Package seqs provides lazy combinators over Go iterators (iter.Seq and iter.Seq2).

  - **Pairing**: [Zip] stops at the shorter input, [Enumerate] and [EnumerateFrom]
    tag positions, [Finality] tags the last element.
  - **Adapters**: [Drain] empties a caller-owned queue, [FromIterator] and
    [ToIterator] bridge the HasNext/Next contract.
  - **Transformations**: [Map], [Filter], [FlatMap], [Concat], [Pairs].
  - **Flow Control**: [Take], [Skip], [TakeWhile].

# Single pass

Every sequence returned here is a thin wrapper over its input's own
iteration state. Advancing the wrapper advances the input exactly once per
element, nothing is buffered beyond one element of lookahead, and ranging a
second time over a wrapper of a single-pass source (a queue, an iterator, a
reader) yields nothing new.

Failures raised while pulling an input are not wrapped. Once a pull has
panicked or yielded an error the sequence must not be pulled again.

# Concurrency

None. Sequences are for a single consumer goroutine.
*/
package seqs
