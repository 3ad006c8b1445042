//go:build !unix

package main

import "os"

// redirectStdIO swaps the os-level writers where descriptor duplication is
// unavailable. Ordinary prints are captured; runtime panic output still
// reaches the real stderr on these platforms.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
