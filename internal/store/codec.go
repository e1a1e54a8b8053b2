package store

import (
	"encoding/binary"
	"fmt"

	"github.com/golang/snappy"

	"harshagw/docstats/internal/document"
)

// Snapshot encoding constants
const (
	SnapshotMagic   = "DST\x00"
	SnapshotVersion = uint64(1)
)

// EncodeSnapshot serialises a document snapshot. Offsets are delta-encoded
// uvarints and the whole record is snappy-compressed.
func EncodeSnapshot(s document.Snapshot) []byte {
	buf := make([]byte, 0, len(SnapshotMagic)+len(s.Text)+(len(s.LineIndex)+len(s.WordIndex))*2+32)
	buf = append(buf, SnapshotMagic...)
	buf = binary.AppendUvarint(buf, SnapshotVersion)

	buf = binary.AppendUvarint(buf, uint64(s.LineCount))
	buf = binary.AppendUvarint(buf, uint64(s.WordCount))
	buf = binary.AppendUvarint(buf, uint64(s.CharCount))

	buf = appendOffsets(buf, s.LineIndex)
	buf = appendOffsets(buf, s.WordIndex)

	buf = binary.AppendUvarint(buf, uint64(len(s.Text)))
	buf = append(buf, s.Text...)

	return snappy.Encode(nil, buf)
}

func appendOffsets(buf []byte, offsets []int) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(offsets)))
	prev := 0
	for _, off := range offsets {
		buf = binary.AppendUvarint(buf, uint64(off-prev))
		prev = off
	}
	return buf
}

// DecodeSnapshot reverses EncodeSnapshot. It checks framing only; callers
// validate the indices when restoring a document.
func DecodeSnapshot(data []byte) (document.Snapshot, error) {
	var s document.Snapshot

	raw, err := snappy.Decode(nil, data)
	if err != nil {
		return s, fmt.Errorf("failed to decompress snapshot: %w", err)
	}
	if len(raw) < len(SnapshotMagic) || string(raw[:len(SnapshotMagic)]) != SnapshotMagic {
		return s, fmt.Errorf("invalid snapshot magic")
	}

	r := newByteReader(raw[len(SnapshotMagic):])
	version, err := r.ReadUvarint()
	if err != nil {
		return s, err
	}
	if version != SnapshotVersion {
		return s, fmt.Errorf("unsupported snapshot version %d", version)
	}

	var counts [3]uint64
	for i := range counts {
		if counts[i], err = r.ReadUvarint(); err != nil {
			return s, err
		}
	}
	s.LineCount, s.WordCount, s.CharCount = int(counts[0]), int(counts[1]), int(counts[2])

	if s.LineIndex, err = r.readOffsets(); err != nil {
		return s, err
	}
	if s.WordIndex, err = r.readOffsets(); err != nil {
		return s, err
	}

	textLen, err := r.ReadUvarint()
	if err != nil {
		return s, err
	}
	text, err := r.ReadBytes(textLen)
	if err != nil {
		return s, err
	}
	s.Text = string(text)

	return s, nil
}
