// Package components holds the server-rendered HTML views.
package components

import (
	"context"
	"fmt"
	"io"

	"dreamhouse/internal/domain"

	"github.com/a-h/templ"
)

// IndexPage 首页数据
type IndexPage struct {
	Title   string
	Designs []domain.SavedDesign
}

const indexHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
</head>
<body>
<h1>%s</h1>
<form id="houseForm" onsubmit="return false">
<label for="projectName">Project name</label>
<input id="projectName" name="name" value="%s">
<label for="prompt">Describe your house</label>
<textarea id="prompt" name="prompt" placeholder="3BHK modern house with balcony and parking"></textarea>
<button id="parseBtn" type="button">Generate</button>
<button id="saveBtn" type="button">Save</button>
</form>
<div id="previewArea"></div>
<h2>Saved designs</h2>
`

// Index renders the landing page with the saved design list.
func Index(p IndexPage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := templ.EscapeString(p.Title)
		if _, err := fmt.Fprintf(w, indexHead, title, title, templ.EscapeString(domain.DefaultDesignName)); err != nil {
			return err
		}
		if err := savedList(p.Designs).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}

func savedList(designs []domain.SavedDesign) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(designs) == 0 {
			_, err := io.WriteString(w, `<p id="savedList">No saved designs yet.</p>`+"\n")
			return err
		}
		if _, err := io.WriteString(w, `<ul id="savedList">`+"\n"); err != nil {
			return err
		}
		for _, d := range designs {
			_, err := fmt.Fprintf(w,
				`<li><a href="/api/get/%d">%s</a> <small>%s</small> <a href="/api/export/%d">xlsx</a></li>`+"\n",
				d.ID, templ.EscapeString(d.Name), templ.EscapeString(d.CreatedAt), d.ID)
			if err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul>\n")
		return err
	})
}
