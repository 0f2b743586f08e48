// Package ioctl encodes Linux ioctl commands and issues them.
//
// Failures are returned as bare [unix.Errno] values so callers can classify
// them without unwrapping.
package ioctl

import (
	"fmt"
	"reflect"

	"golang.org/x/sys/unix"
)

// Mode is the IOCTL direction.
type Mode uint8

// Modes
const (
	None Mode = iota
	Write
	Read
	ReadWrite = Write | Read
)

// Command to be sent over ioctl.
type Command uintptr

func (c Command) Mode() Mode   { return Mode(c >> 30 & 0x03) }
func (c Command) Size() uint16 { return uint16(c >> 16 & 0x3fff) }
func (c Command) Type() byte   { return byte(c >> 8) }
func (c Command) Nr() byte     { return byte(c) }

func (c Command) String() string {
	var (
		mode = c.Mode()
		str  string
	)
	if mode&Write > 0 {
		str += " write"
	}
	if mode&Read > 0 {
		str += " read"
	}
	return fmt.Sprintf("ioctl%s (%d bytes) %q 0x%02x", str, c.Size(), rune(c.Type()), c.Nr())
}

// Do executes the ioctl call with ptr, which must be a pointer or nil.
func Do(fd uintptr, command Command, ptr interface{}) error {
	var p uintptr

	if ptr != nil {
		v := reflect.ValueOf(ptr)
		p = v.Pointer()
	}

	return Call(fd, uintptr(command), p)
}

// Call does a plain ioctl system call, restarting on EINTR. Any other failure,
// EAGAIN included, is returned to the caller.
func Call(fd, command, arg uintptr) error {
	for {
		_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, command, arg)
		switch errno {
		case 0:
			return nil
		case unix.EINTR:
			continue
		default:
			return errno
		}
	}
}

// Encode an ioctl command.
func Encode(mode Mode, size uint16, typ, nr byte) Command {
	return Command(mode)<<30 | Command(size&0x3fff)<<16 | Command(typ)<<8 | Command(nr)
}

// Pointer encodes a command whose argument is ref, a pointer to a struct.
func Pointer(mode Mode, ref interface{}, typ, nr byte) Command {
	size := uint16(reflect.TypeOf(ref).Elem().Size())
	return Encode(mode, size, typ, nr)
}
