package view

import (
	"html/template"
	"io"
)

// PageData is what the portfolio layout is rendered from
type PageData struct {
	Lang      string
	Student   string
	Timeline  template.HTML
	Stats     map[string]string
	Reveal    []string
	StatOrder []StatLabel
}

// StatLabel pairs a stat element id with its caption
type StatLabel struct {
	ID    string
	Label string
}

var layoutTemplate = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Student}} · Portfolio</title>
<link rel="stylesheet" href="/static/portfolio.css">
</head>
<body>
<header class="portfolio-header">
  <h1>{{.Student}}</h1>
  <div class="portfolio-stats">
  {{- range .StatOrder}}
    <div class="stat"><span class="stat-value" id="{{.ID}}">{{index $.Stats .ID}}</span><span class="stat-label">{{.Label}}</span></div>
  {{- end}}
  </div>
</header>
<main>
<div class="timeline">{{.Timeline}}</div>
</main>
{{- if .Reveal}}
<script>
(function () {
  var selectors = [{{range $i, $s := .Reveal}}{{if $i}}, {{end}}{{$s}}{{end}}];
  var observer = new IntersectionObserver(function (entries) {
    entries.forEach(function (entry) {
      if (entry.isIntersecting) {
        entry.target.style.opacity = '1';
        entry.target.style.transform = 'translateY(0)';
      }
    });
  }, { threshold: 0.1, rootMargin: '0px 0px -100px 0px' });
  selectors.forEach(function (selector) {
    document.querySelectorAll(selector).forEach(function (item) {
      item.style.opacity = '0';
      item.style.transform = 'translateY(30px)';
      item.style.transition = 'all 0.6s ease-out';
      observer.observe(item);
    });
  });
})();
</script>
{{- end}}
</body>
</html>
`))

// RenderPage writes the full portfolio page.
func RenderPage(w io.Writer, data PageData) error {
	return layoutTemplate.Execute(w, data)
}
