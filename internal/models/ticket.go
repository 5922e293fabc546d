package models

import "time"

// ETicket describes a generated ticket artifact
type ETicket struct {
	BookingID   string    `json:"bookingId"`
	PNR         string    `json:"pnr"`
	FileName    string    `json:"fileName"`
	FilePath    string    `json:"filePath"`
	Format      string    `json:"format"`
	QRCode      string    `json:"qrCode"`
	Barcode     string    `json:"barcode"`
	GeneratedAt time.Time `json:"generatedAt"`
}
