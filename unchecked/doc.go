/*
Package unchecked translates the failures of fallible calls into a small,
closed taxonomy of classified errors.

Every failure that passes through [Classify], [Get] or [Do] comes out as an
[*Error] carrying one of four kinds:

  - [NotFound]: a named resource does not exist ([ErrNotFound] in the chain).
  - [FileAbsent]: the more specific "no such file" case ([fs.ErrNotExist]).
  - [IOFailure]: any other I/O level failure.
  - [Unclassified]: everything else.

Classification is a single ordered match. An error that already carries an
[*Error] is returned unchanged, so nesting wrapped calls never double wraps:

	data, err := unchecked.Get(func() ([]byte, error) {
		return os.ReadFile(path)
	})
	if unchecked.IsKind(err, unchecked.FileAbsent) {
		// ...
	}

Sources that know their own category can implement [Tagged] and skip the
built-in rules. All functions here are stateless and safe for concurrent use.
*/
package unchecked
