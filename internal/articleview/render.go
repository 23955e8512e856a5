package articleview

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	heartFilled = "♥"
	heartEmpty  = "♡"
)

const listTemplate = `{{if .Query}}Results for "{{.Query}}"
{{end}}{{range .Cards}}{{heart .Liked}} {{.Article.LikesCount}}  💬 {{.Article.CommentsCount}}  ↗ {{.Article.SharesCount}}  {{.Article.Title}}{{if .Pending}} …{{end}}
    {{.Article.ID}} · {{ago .Article.CreatedAt}}
{{else}}No articles found.
{{end}}{{if .NextPageToken}}More: --page {{.NextPageToken}}
{{end}}`

const detailTemplate = `{{with .Card}}{{.Article.Title}}
{{ago .Article.CreatedAt}}

{{wrap .Article.Content}}

{{heart .Liked}} {{.Article.LikesCount}}  💬 {{.Article.CommentsCount}}  ↗ {{.Article.SharesCount}}
{{end}}
Comments
{{range .Detail.Comments}}- {{.UserID}} ({{ago .CreatedAt}}): {{.Text}}
{{else}}No comments yet.
{{end}}{{if .Detail.Draft}}
Draft: {{.Detail.Draft}}
{{end}}`

// Heart returns the filled heart for liked articles and the outline otherwise.
func Heart(liked bool) string {
	if liked {
		return heartFilled
	}
	return heartEmpty
}

// wrapWidth is the column at which article content is wrapped.
const wrapWidth = 78

func (v *View) templates() (*template.Template, *template.Template) {
	funcs := template.FuncMap{
		"heart": Heart,
		"ago": func(t time.Time) string {
			if t.IsZero() {
				return "Unknown time"
			}
			return humanize.RelTime(t, v.cfg.Now(), "ago", "from now")
		},
		"wrap": func(s string) string { return wrap(s, wrapWidth) },
	}
	list := template.Must(template.New("list").Funcs(funcs).Parse(listTemplate))
	detail := template.Must(template.New("detail").Funcs(funcs).Parse(detailTemplate))
	return list, detail
}

// Render writes the detail view when an article is open and the list otherwise.
func (v *View) Render(w io.Writer) error {
	s := v.State()

	if s.Detail != nil {
		return v.detail.Execute(w, struct {
			Card   *Card
			Detail *Detail
		}{Card: s.card(s.Detail.ArticleID), Detail: s.Detail})
	}
	return v.list.Execute(w, s)
}

// String renders the view to a string.
func (v *View) String() string {
	var buf bytes.Buffer
	if err := v.Render(&buf); err != nil {
		return fmt.Sprintf("render: %v", err)
	}
	return buf.String()
}

func wrap(s string, width int) string {
	var out strings.Builder
	for i, para := range strings.Split(s, "\n") {
		if i > 0 {
			out.WriteByte('\n')
		}
		col := 0
		for j, word := range strings.Fields(para) {
			n := len([]rune(word))
			if j > 0 {
				if col+1+n > width {
					out.WriteByte('\n')
					col = 0
				} else {
					out.WriteByte(' ')
					col++
				}
			}
			out.WriteString(word)
			col += n
		}
	}
	return out.String()
}
