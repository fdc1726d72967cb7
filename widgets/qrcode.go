package widgets

import (
	"strings"

	qrgen "github.com/skip2/go-qrcode"

	"github.com/atomicstack/pi-menu-control/internal/theme"
	"github.com/atomicstack/pi-menu-control/page"
)

// QRCode is an application page showing a scannable code for the given
// content, rendered with half-block characters to fit small displays.
type QRCode struct {
	page.Base

	styles  *theme.Styles
	content string
	encoded string
	err     error
}

// NewQRCode builds a QR code page. Encoding errors are kept and rendered
// in place of the code.
func NewQRCode(title, content string, styles *theme.Styles) *QRCode {
	if styles == nil {
		styles = theme.Default()
	}
	q := &QRCode{styles: styles, content: content}
	q.SetTitle(title)
	code, err := qrgen.New(content, qrgen.Medium)
	if err != nil {
		q.err = err
		return q
	}
	q.encoded = strings.TrimRight(code.ToSmallString(false), "\n")
	return q
}

// Content returns the encoded text.
func (q *QRCode) Content() string { return q.content }

// Err returns the encoding error, if any.
func (q *QRCode) Err() error { return q.err }

// View renders the code.
func (q *QRCode) View() string {
	var sb strings.Builder
	sb.WriteString(q.styles.Heading.Render(q.Title()))
	sb.WriteString("\n")
	if q.err != nil {
		sb.WriteString(q.styles.Error.Render(q.err.Error()))
		return sb.String()
	}
	sb.WriteString(q.encoded)
	sb.WriteString("\n")
	sb.WriteString(q.styles.Info.Render(q.content))
	return sb.String()
}
