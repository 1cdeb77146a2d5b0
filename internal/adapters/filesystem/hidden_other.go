//go:build !windows

package filesystem

// hideDir is a no-op: a leading dot already hides the directory
func hideDir(string) error {
	return nil
}
