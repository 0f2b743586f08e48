package ioctl

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"
)

func TestCallErrno(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "regular"))
	if err != nil {
		t.Fatal(err)
	}
	fd := f.Fd()

	command := uintptr(Encode(None, 0, 'F', 0x00))
	if err = Call(fd, command, 0); err != unix.ENOTTY {
		t.Errorf("expected %v on a regular file, got %v", unix.ENOTTY, err)
	}

	if err = f.Close(); err != nil {
		t.Fatal(err)
	}
	if err = Call(fd, command, 0); err != unix.EBADF {
		t.Errorf("expected %v on a closed descriptor, got %v", unix.EBADF, err)
	}
}
