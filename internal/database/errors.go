package database

import "fmt"

// StoreError indicates the persistence layer itself failed (disk error,
// corrupted file, locked database). It is fatal to the sync run that
// hits it but not to the process; the next run retries from the stored
// state.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store failure during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
