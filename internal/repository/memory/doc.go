// Package memory holds process-local implementations of the repositories.
// They honour the same contracts as the gorm repositories (nil, nil on a
// missing row, ErrStaleVersion on a lost conditional update) and are used
// for the "memory" storage driver and in tests.
package memory
