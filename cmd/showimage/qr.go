package main

import (
	"fmt"
	"image"

	"github.com/skip2/go-qrcode"
)

const defaultQRCodeSizePx = 256

// qrImage returns a QR code image for the given payload.
func qrImage(payload string, sizePx int) (image.Image, error) {
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}
	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}
	return qrCode.Image(sizePx), nil
}
