package view

import "html/template"

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
body { font-family: "Segoe UI", Helvetica, Arial, sans-serif; background: #f4f6f8; color: #333; margin: 0; }
main { max-width: 1100px; margin: 0 auto; padding: 1.5rem; }
h1 { text-align: center; }
.controls { display: flex; flex-wrap: wrap; gap: 1rem; align-items: flex-end; justify-content: center; margin-bottom: 1.5rem; }
.filter-group { display: flex; flex-direction: column; gap: .25rem; }
button { padding: .5rem 1.2rem; background: #3680eb; color: #fff; border: 0; border-radius: 4px; cursor: pointer; }
#chart-container { background: #fff; border-radius: 8px; padding: 1rem; margin-bottom: 1.5rem; overflow-x: auto; }
#chart-container svg { width: 100%; height: auto; }
.continent-title a { color: #1f4f99; text-decoration: none; }
.continent-title.focused a { text-decoration: underline; }
.cards { display: grid; grid-template-columns: repeat(auto-fill, minmax(230px, 1fr)); gap: 1rem; margin-bottom: 1.5rem; }
.card { background: #fff; border-radius: 8px; padding: 1rem; box-shadow: 0 1px 3px rgba(0,0,0,.12); }
.card img { width: 64px; height: auto; border: 1px solid #ddd; }
.card h3 { margin: .5rem 0; }
.card p { margin: .2rem 0; font-size: .9rem; }
table { width: 100%; border-collapse: collapse; background: #fff; }
th, td { padding: .4rem .6rem; border-bottom: 1px solid #e3e3e3; text-align: left; font-size: .9rem; }
th { background: #3680eb; color: #fff; }
.empty { text-align: center; color: #777; padding: 2rem; }
</style>
</head>
<body>
<main>
<h1>🌍 {{.Title}}</h1>
<form class="controls" method="get" action="/explore">
  <div class="filter-group">
    <label for="view-select">View Mode:</label>
    <select id="view-select" name="view">
      {{- range .Views}}
      <option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
      {{- end}}
    </select>
  </div>
  <div class="filter-group">
    <label for="region-select">Region:</label>
    <select id="region-select" name="region">
      {{- range .Regions}}
      <option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
      {{- end}}
    </select>
  </div>
  <div class="filter-group">
    <label for="display-select">Display:</label>
    <select id="display-select" name="display">
      {{- range .Displays}}
      <option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
      {{- end}}
    </select>
  </div>
  <button id="show-data-btn" type="submit">Explore Countries</button>
</form>

<div id="chart-container"><a id="chart"></a>{{.Chart}}</div>

<div id="output-container">
{{- if .Empty}}
  <p class="empty">No countries to show.</p>
{{- else if eq .Display "table"}}
  <table>
    <thead>
      <tr><th>#</th><th>Country</th><th>Region</th><th>Capital</th><th>Population</th><th>Area</th><th>Density</th><th>Languages</th><th>Currencies</th></tr>
    </thead>
    <tbody>
    {{- range .Rows}}
      <tr><td>{{.Rank}}</td><td>{{.Name}}</td><td>{{.Region}}</td><td>{{.Capital}}</td><td>{{.Population}}</td><td>{{.Area}}</td><td>{{.Density}}</td><td>{{.Languages}}</td><td>{{.Currencies}}</td></tr>
    {{- end}}
    </tbody>
  </table>
{{- else}}
  {{- range .Sections}}
  <section>
    {{- if .Label}}
    <h2 class="continent-title{{if .Focused}} focused{{end}}"><a href="{{.FocusURL}}">{{.Label}}</a></h2>
    {{- end}}
    <div class="cards">
    {{- range .Cards}}
      <div class="card">
        {{- if .FlagURL}}<img src="{{.FlagURL}}" alt="Flag of {{.Name}}">{{end}}
        <h3>{{.Name}}</h3>
        <p><strong>Region:</strong> {{.Region}}</p>
        <p><strong>Capital:</strong> {{.Capital}}</p>
        <p><strong>Population:</strong> {{.Population}}</p>
        <p><strong>Area:</strong> {{.Area}}</p>
        <p><strong>Density:</strong> {{.Density}}</p>
        <p><strong>Languages:</strong> {{.Languages}}</p>
        <p><strong>Currencies:</strong> {{.Currencies}}</p>
      </div>
    {{- end}}
    </div>
  </section>
  {{- end}}
{{- end}}
</div>
</main>
</body>
</html>
`
