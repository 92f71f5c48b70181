package journal

import (
	"fmt"

	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"
)

// SiteQRCode renders a png linking straight to the site page, for the
// site notice board.
func SiteQRCode(baseURL string, siteID int) ([]byte, error) {
	png, err := qrcode.Encode(fmt.Sprintf("%s/sites/%d", baseURL, siteID), qrcode.Medium, 256)
	if err != nil {
		return nil, errors.Wrap(err, "encoding site qr code")
	}
	return png, nil
}
