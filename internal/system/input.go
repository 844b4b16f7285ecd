package system

import "encoding/binary"

// Linux input-event-codes.h
const (
	evKey = 0x01

	KeyEsc uint16 = 1
	KeyF4  uint16 = 62
)

// keyPressed scans a buffer of struct input_event records for a press of key.
// tvSize is the size of the leading struct timeval on this architecture.
func keyPressed(buf []byte, tvSize int, key uint16) bool {
	eventSize := tvSize + 2 + 2 + 4
	for off := 0; off+eventSize <= len(buf); off += eventSize {
		rec := buf[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ == evKey && code == key && value == 1 {
			return true
		}
	}
	return false
}
