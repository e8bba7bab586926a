package domain

import "errors"

// ErrData marks malformed or mismatched input data: missing columns, duplicate
// area ids, unparseable values, or a join with no matching rows. Wrap with
// fmt.Errorf("%w: ...") and test with errors.Is.
var ErrData = errors.New("data error")
