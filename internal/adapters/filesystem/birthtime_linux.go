package filesystem

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

// birthTime asks statx for the creation time; older kernels and some
// filesystems do not report it.
func birthTime(fullPath string, _ fs.FileInfo) (time.Time, bool) {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, fullPath, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BTIME, &stx)
	if err != nil || stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, false
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), true
}
