// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ppt

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Record types of the PowerPoint Document stream used for text recovery.
const (
	recSlideListWithText = 0x0FF0
	recSlidePersistAtom  = 0x03F3
	recTextHeaderAtom    = 0x0F9F
	recTextCharsAtom     = 0x0FA0
	recTextBytesAtom     = 0x0FA8
)

// SlideListWithText instances.
const (
	listSlides = 0
	listNotes  = 2
)

// Text types from TextHeaderAtom that need special handling. Every other
// type is treated as body text.
const (
	textTitle       = 0
	textOther       = 4
	textCenterTitle = 6
)

const recordHeaderSize = 8

// recordHeader is the 8-byte header in front of every record.
type recordHeader struct {
	Version  uint8
	Instance uint16
	Type     uint16
	Length   uint32
}

func (h recordHeader) container() bool { return h.Version == 0xF }

func parseHeader(b []byte) recordHeader {
	verInst := binary.LittleEndian.Uint16(b[0:2])
	return recordHeader{
		Version:  uint8(verInst & 0x000F),
		Instance: verInst >> 4,
		Type:     binary.LittleEndian.Uint16(b[2:4]),
		Length:   binary.LittleEndian.Uint32(b[4:8]),
	}
}

// textBlock is one run of text under a TextHeaderAtom.
type textBlock struct {
	kind uint32
	text string
}

// slideText is the text recovered for one entry of a slide list.
type slideText struct {
	blocks []textBlock
}

func (s *slideText) title() string {
	for _, b := range s.blocks {
		if b.kind == textTitle || b.kind == textCenterTitle {
			return strings.TrimSpace(strings.ReplaceAll(b.text, "\n", " "))
		}
	}
	return ""
}

func (s *slideText) body() []string {
	var out []string
	for _, b := range s.blocks {
		switch b.kind {
		case textTitle, textCenterTitle:
		default:
			if strings.TrimSpace(b.text) != "" {
				out = append(out, b.text)
			}
		}
	}
	return out
}

// streamText holds the slide and notes lists of a PowerPoint Document
// stream.
type streamText struct {
	slides []slideText
	notes  []slideText
}

// readStream scans the PowerPoint Document stream. When a stream holds
// several slide lists from incremental saves, the last one wins.
func readStream(r io.Reader, limit int64) (*streamText, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading document stream: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("document stream exceeds maximum size (%d bytes)", limit)
	}
	return scanRecords(data), nil
}

// scanRecords walks the flat record sequence. Containers are entered
// rather than skipped, so atoms are seen in document order.
func scanRecords(data []byte) *streamText {
	out := &streamText{}
	var (
		pos      int
		list     []slideText
		listKind = -1
		listEnd  int
		textKind uint32 = textOther
	)
	flush := func() {
		switch listKind {
		case listSlides:
			out.slides = list
		case listNotes:
			out.notes = list
		}
		list, listKind = nil, -1
	}

	for pos+recordHeaderSize <= len(data) {
		if listKind >= 0 && pos >= listEnd {
			flush()
		}
		h := parseHeader(data[pos:])
		start := pos + recordHeaderSize
		end := start + int(h.Length)
		if end > len(data) || end < start {
			end = len(data)
		}

		if h.container() {
			if h.Type == recSlideListWithText {
				flush()
				listKind, listEnd = int(h.Instance), end
			}
			pos = start
			continue
		}

		if listKind >= 0 {
			body := data[start:end]
			switch h.Type {
			case recSlidePersistAtom:
				list = append(list, slideText{})
				textKind = textOther
			case recTextHeaderAtom:
				if len(body) >= 4 {
					textKind = binary.LittleEndian.Uint32(body)
				}
			case recTextCharsAtom, recTextBytesAtom:
				if len(list) > 0 {
					cur := &list[len(list)-1]
					cur.blocks = append(cur.blocks, textBlock{kind: textKind, text: decodeText(h.Type, body)})
				}
			}
		}
		pos = end
	}
	if listKind >= 0 {
		flush()
	}
	return out
}

var (
	utf16Decoder  = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	latin1Decoder = charmap.ISO8859_1
)

// decodeText converts a text atom to a string with "\n" line breaks.
// Paragraph ends are stored as CR and soft breaks as VT.
func decodeText(typ uint16, b []byte) string {
	var (
		s   []byte
		err error
	)
	if typ == recTextCharsAtom {
		s, err = utf16Decoder.NewDecoder().Bytes(b)
	} else {
		s, err = latin1Decoder.NewDecoder().Bytes(b)
	}
	if err != nil {
		return ""
	}
	return strings.NewReplacer("\r", "\n", "\v", "\n").Replace(string(s))
}
