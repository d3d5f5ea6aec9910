//go:build darwin && cgo

package detect

/*
#cgo LDFLAGS: -framework CoreFoundation -framework CoreServices
#include <stdlib.h>
#include <CoreFoundation/CoreFoundation.h>
#include <CoreServices/CoreServices.h>
*/
import "C"

import "unsafe"

// Launch Services hands back Core-Foundation objects that follow the Create
// rule: every non-NULL result below is owned by us and must be released
// exactly once. Each helper releases everything it acquires before
// returning, including on early-exit paths, so detection logic above this
// file never touches a CF handle.

// allHandlersForScheme returns the bundle identifiers of every application
// registered as a handler for the given URL scheme. A NULL response from the
// OS means "zero handlers", not an error.
func allHandlersForScheme(scheme string) []string {
	cfScheme := createCFString(scheme)
	if cfScheme == nil {
		return nil
	}
	defer release(unsafe.Pointer(cfScheme))

	array := C.LSCopyAllHandlersForURLScheme(cfScheme)
	if array == nil {
		return nil
	}
	defer release(unsafe.Pointer(array))

	count := int(C.CFArrayGetCount(array))
	handlers := make([]string, 0, count)
	for i := 0; i < count; i++ {
		ref := C.CFStringRef(C.CFArrayGetValueAtIndex(array, C.CFIndex(i)))
		if ref == nil {
			continue
		}
		// Array elements follow the Get rule; the array owns them.
		if s, ok := goStringFromCF(ref); ok {
			handlers = append(handlers, s)
		}
	}
	return handlers
}

// defaultHandlerForScheme returns the bundle identifier of the default
// handler for the given URL scheme.
func defaultHandlerForScheme(scheme string) (string, bool) {
	cfScheme := createCFString(scheme)
	if cfScheme == nil {
		return "", false
	}
	defer release(unsafe.Pointer(cfScheme))

	ref := C.LSCopyDefaultHandlerForURLScheme(cfScheme)
	if ref == nil {
		return "", false
	}
	defer release(unsafe.Pointer(ref))

	return goStringFromCF(ref)
}

// applicationPath resolves a bundle identifier to the filesystem path of its
// primary installation.
func applicationPath(bundleID string) (string, bool) {
	cfBundleID := createCFString(bundleID)
	if cfBundleID == nil {
		return "", false
	}
	defer release(unsafe.Pointer(cfBundleID))

	urls := C.LSCopyApplicationURLsForBundleIdentifier(cfBundleID, nil)
	if urls == nil {
		return "", false
	}
	defer release(unsafe.Pointer(urls))

	if C.CFArrayGetCount(urls) == 0 {
		return "", false
	}

	url := C.CFURLRef(C.CFArrayGetValueAtIndex(urls, 0))
	if url == nil {
		return "", false
	}

	path := C.CFURLCopyFileSystemPath(url, C.kCFURLPOSIXPathStyle)
	if path == nil {
		return "", false
	}
	defer release(unsafe.Pointer(path))

	return goStringFromCF(path)
}

func createCFString(s string) C.CFStringRef {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return C.CFStringCreateWithCString(C.kCFAllocatorDefault, cs, C.kCFStringEncodingUTF8)
}

func goStringFromCF(ref C.CFStringRef) (string, bool) {
	if p := C.CFStringGetCStringPtr(ref, C.kCFStringEncodingUTF8); p != nil {
		return C.GoString(p), true
	}

	length := C.CFStringGetLength(ref)
	size := C.CFStringGetMaximumSizeForEncoding(length, C.kCFStringEncodingUTF8) + 1
	buf := make([]C.char, int(size))
	if C.CFStringGetCString(ref, &buf[0], size, C.kCFStringEncodingUTF8) == 0 {
		return "", false
	}
	return C.GoString(&buf[0]), true
}

func release(ref unsafe.Pointer) {
	C.CFRelease(C.CFTypeRef(ref))
}
