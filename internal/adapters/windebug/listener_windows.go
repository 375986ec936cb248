//go:build windows

package windebug

import (
	"bytes"
	"context"
	"encoding/binary"
	"unsafe"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/windows"
)

const (
	dbwinBufferSize = 4096
	pollMillis      = 100
)

// SystemListener reads the DBWIN shared memory buffer written by OutputDebugString.
type SystemListener struct{}

// Listen blocks until ctx is done, posting every debug string it reads.
func (SystemListener) Listen(ctx context.Context, post func(Message)) error {
	bufferReady, err := createEvent("DBWIN_BUFFER_READY")
	if err != nil {
		return err
	}
	defer windows.CloseHandle(bufferReady) //nolint:errcheck

	dataReady, err := createEvent("DBWIN_DATA_READY")
	if err != nil {
		return err
	}
	defer windows.CloseHandle(dataReady) //nolint:errcheck

	name, _ := windows.UTF16PtrFromString("DBWIN_BUFFER")
	mapping, err := windows.CreateFileMapping(windows.InvalidHandle, nil, windows.PAGE_READWRITE, 0, dbwinBufferSize, name)
	if err != nil {
		return zerr.Wrap(err, domain.ErrDebugOutputUnsupported.Error())
	}
	defer windows.CloseHandle(mapping) //nolint:errcheck

	addr, err := windows.MapViewOfFile(mapping, windows.FILE_MAP_READ, 0, 0, dbwinBufferSize)
	if err != nil {
		return zerr.Wrap(err, domain.ErrDebugOutputUnsupported.Error())
	}
	defer windows.UnmapViewOfFile(addr) //nolint:errcheck

	view := unsafe.Slice((*byte)(unsafe.Pointer(addr)), dbwinBufferSize) //nolint:govet

	for {
		if err := windows.SetEvent(bufferReady); err != nil {
			return zerr.Wrap(err, domain.ErrDebugOutputUnsupported.Error())
		}
		for {
			if ctx.Err() != nil {
				return nil
			}
			ev, err := windows.WaitForSingleObject(dataReady, pollMillis)
			if err != nil {
				return zerr.Wrap(err, domain.ErrDebugOutputUnsupported.Error())
			}
			if ev == windows.WAIT_OBJECT_0 {
				break
			}
		}

		pid := int(binary.LittleEndian.Uint32(view[:4]))
		text := view[4:]
		if i := bytes.IndexByte(text, 0); i >= 0 {
			text = text[:i]
		}
		post(Message{PID: pid, Text: string(text)})
	}
}

func createEvent(name string) (windows.Handle, error) {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return 0, err
	}
	h, err := windows.CreateEvent(nil, 0, 0, p)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrDebugOutputUnsupported.Error()), "event", name)
	}
	return h, nil
}
