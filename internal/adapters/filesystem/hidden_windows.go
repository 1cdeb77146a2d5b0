package filesystem

import "golang.org/x/sys/windows"

// hideDir sets FILE_ATTRIBUTE_HIDDEN so Explorer does not show the directory
func hideDir(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return err
	}
	return windows.SetFileAttributes(p, attrs|windows.FILE_ATTRIBUTE_HIDDEN)
}
