package model

import "time"

// BarcodeType tags the symbology a barcode was decoded from.
type BarcodeType string

const (
	BarcodeTypeQR         BarcodeType = "QR"
	BarcodeTypePDF417     BarcodeType = "PDF417"
	BarcodeTypeEAN13      BarcodeType = "EAN13"
	BarcodeTypeEAN8       BarcodeType = "EAN8"
	BarcodeTypeUPCA       BarcodeType = "UPC_A"
	BarcodeTypeCode128    BarcodeType = "CODE128"
	BarcodeTypeCode39     BarcodeType = "CODE39"
	BarcodeTypeDataMatrix BarcodeType = "DATA_MATRIX"
	BarcodeTypeAztec      BarcodeType = "AZTEC"
)

// BarcodeTypes lists every accepted type in a stable order.
var BarcodeTypes = []BarcodeType{
	BarcodeTypeQR,
	BarcodeTypePDF417,
	BarcodeTypeEAN13,
	BarcodeTypeEAN8,
	BarcodeTypeUPCA,
	BarcodeTypeCode128,
	BarcodeTypeCode39,
	BarcodeTypeDataMatrix,
	BarcodeTypeAztec,
}

// Valid reports whether t is one of BarcodeTypes.
func (t BarcodeType) Valid() bool {
	for _, v := range BarcodeTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Barcode is a scanned code owned by a single user.
// ID and UserID never change after creation; EditFlag is the only mutable field.
type Barcode struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Type      BarcodeType `json:"type"`
	URL       string      `json:"url"`
	EditFlag  bool        `json:"editFlag"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func (b Barcode) Owner() string { return b.UserID }

// BarcodeStatus is the projection read by status checks.
type BarcodeStatus struct {
	UserID   string `json:"userId"`
	EditFlag bool   `json:"editFlag"`
}

func (s BarcodeStatus) Owner() string { return s.UserID }

// BarcodeOwner is the projection read before admin status edits.
type BarcodeOwner struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
}

func (o BarcodeOwner) Owner() string { return o.UserID }
