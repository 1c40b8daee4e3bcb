package oned

import qrbarcode "github.com/zenalex/qr-bar-code"

func init() {
	qrbarcode.RegisterRenderer(qrbarcode.Code39, renderFunc(Code39Encoder{}))
	qrbarcode.RegisterRenderer(qrbarcode.Codabar, renderFunc(CodabarEncoder{}))
	qrbarcode.RegisterRenderer(qrbarcode.ITF, renderFunc(ITFEncoder{}))
	qrbarcode.RegisterRenderer(qrbarcode.ITF14, renderFunc(ITF14Encoder{}))
	qrbarcode.RegisterRenderer(qrbarcode.EAN13, renderFunc(EAN13Encoder{}))
	qrbarcode.RegisterRenderer(qrbarcode.EAN8, renderFunc(EAN8Encoder{}))
	qrbarcode.RegisterRenderer(qrbarcode.UPCA, renderFunc(UPCAEncoder{}))
}
