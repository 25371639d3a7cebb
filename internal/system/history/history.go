// Released under an MIT license. See LICENSE.

// Package history loads and saves the line editor's history file.
package history

import (
	"io"
	"os"
)

// Load passes the history file to read. A missing file is not an error.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	return locked(f, func() error {
		_, err := read(f)
		return err
	})
}

// Save passes a truncated history file to write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(func(name string) (*os.File, error) {
		return os.OpenFile(name, os.O_CREATE|os.O_WRONLY, 0o600)
	})
	if err != nil {
		return err
	}

	return locked(f, func() error {
		if err := f.Truncate(0); err != nil {
			return err
		}

		_, err := write(f)

		return err
	})
}

// locked runs fn while holding a lock on f and then closes f.
func locked(f *os.File, fn func() error) error {
	err := lock(f)
	if err == nil {
		err = fn()

		if uerr := unlock(f); err == nil {
			err = uerr
		}
	}

	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}
