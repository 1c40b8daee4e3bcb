package qrcode

import qrbarcode "github.com/zenalex/qr-bar-code"

func init() {
	qrbarcode.RegisterRenderer(qrbarcode.QR, Render)
}
