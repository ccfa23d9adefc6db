package gridpaper

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"io"

	"github.com/anthonynsimon/bild/imgio"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// pngHeaderLen covers the signature and the IHDR chunk, which the PNG format
// requires to come first.
const pngHeaderLen = 8 + 8 + 13 + 4

// EncodePNG writes img as PNG with a pHYs chunk recording dpi, so that
// printing at 100% reproduces the physical cell size.
func EncodePNG(w io.Writer, img image.Image, dpi float64) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	data := buf.Bytes()
	if len(data) < pngHeaderLen || !bytes.Equal(data[:8], pngSignature) {
		return errors.New("failed to encode PNG: unexpected encoder output")
	}

	ppm := pixelsPerMeter(dpi)
	phys := make([]byte, 9)
	binary.BigEndian.PutUint32(phys[0:4], ppm)
	binary.BigEndian.PutUint32(phys[4:8], ppm)
	phys[8] = 1 // unit: metre

	if _, err := w.Write(data[:pngHeaderLen]); err != nil {
		return err
	}
	if err := writeChunk(w, "pHYs", phys); err != nil {
		return err
	}
	_, err := w.Write(data[pngHeaderLen:])
	return err
}

// PNGEncoder returns an imgio.Encoder that embeds dpi.
func PNGEncoder(dpi float64) imgio.Encoder {
	return func(w io.Writer, img image.Image) error {
		return EncodePNG(w, img, dpi)
	}
}

func writeChunk(w io.Writer, typ string, data []byte) error {
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[0:4], uint32(len(data)))
	copy(hdr[4:8], typ)

	crc := crc32.NewIEEE()
	crc.Write(hdr[4:8])
	crc.Write(data)
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())

	for _, b := range [][]byte{hdr[:], data, sum[:]} {
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// ReadPNGDPI scans the chunks of a PNG stream for pHYs and returns the
// horizontal density in dots per inch. ok is false when the file has no
// pHYs chunk or its unit is not the metre.
func ReadPNGDPI(r io.Reader) (dpi float64, ok bool, err error) {
	sig := make([]byte, 8)
	if _, err := io.ReadFull(r, sig); err != nil {
		return 0, false, fmt.Errorf("failed to read PNG signature: %w", err)
	}
	if !bytes.Equal(sig, pngSignature) {
		return 0, false, errors.New("not a PNG file")
	}

	var hdr [8]byte
	for {
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			return 0, false, fmt.Errorf("failed to read PNG chunk: %w", err)
		}
		length := binary.BigEndian.Uint32(hdr[0:4])
		switch string(hdr[4:8]) {
		case "pHYs":
			if length != 9 {
				return 0, false, fmt.Errorf("invalid pHYs chunk length %d", length)
			}
			data := make([]byte, 9)
			if _, err := io.ReadFull(r, data); err != nil {
				return 0, false, fmt.Errorf("failed to read pHYs chunk: %w", err)
			}
			if data[8] != 1 {
				return 0, false, nil
			}
			ppm := binary.BigEndian.Uint32(data[0:4])
			return float64(ppm) * CMPerInch / 100, true, nil
		case "IDAT", "IEND":
			// pHYs must precede the image data.
			return 0, false, nil
		}
		if _, err := io.CopyN(io.Discard, r, int64(length)+4); err != nil {
			return 0, false, fmt.Errorf("failed to skip PNG chunk: %w", err)
		}
	}
}
