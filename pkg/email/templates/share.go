package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Button is a call-to-action link rendered below the message content.
type Button struct {
	Label      string
	Href       string
	Background string // CSS background value, e.g. a linear-gradient
}

// ShareProps feeds the ShareEmail document.
type ShareProps struct {
	BrandName string
	// ContentHTML is inserted verbatim. Callers escape user text first.
	ContentHTML string
	Button      *Button
}

// ShareEmail renders the complete HTML document for shared content: a brand
// header, the content block, an optional button and a brand footer.
func ShareEmail(p ShareProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		brand := templ.EscapeString(p.BrandName)

		parts := []string{
			`<!DOCTYPE html><html><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1.0">`,
			`<title>Shared Content</title></head>`,
			`<body style="margin:0;padding:0;background-color:#f4f4f7;font-family:Arial,Helvetica,sans-serif;">`,
			`<div class="container" style="max-width:600px;margin:0 auto;background-color:#ffffff;">`,
			`<div class="header" style="padding:24px;text-align:center;border-bottom:1px solid #eaeaec;">`,
			`<h1 style="margin:0;font-size:24px;color:#111827;">`, brand, `</h1></div>`,
			`<div class="body" style="padding:32px 24px;color:#374151;font-size:16px;line-height:1.6;">`,
			`<div class="content">`, p.ContentHTML, `</div>`,
		}
		for _, s := range parts {
			if _, err := io.WriteString(w, s); err != nil {
				return err
			}
		}

		if p.Button != nil {
			if err := button(*p.Button).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</div><div class="footer" style="padding:24px;text-align:center;font-size:12px;color:#9ca3af;border-top:1px solid #eaeaec;">`+
			`Sent via `+brand+`</div></div></body></html>`)
		return err
	})
}

func button(b Button) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		href := templ.EscapeString(string(templ.URL(b.Href)))
		style := templ.EscapeString("display:inline-block;padding:14px 28px;border-radius:8px;color:#ffffff;" +
			"text-decoration:none;font-weight:bold;background:" + b.Background + ";")

		_, err := io.WriteString(w, `<div class="cta" style="margin-top:32px;text-align:center;">`+
			`<a class="button" href="`+href+`" style="`+style+`">`+templ.EscapeString(b.Label)+`</a></div>`)
		return err
	})
}
