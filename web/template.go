package web

// indexHTML is the dashboard page. Plots are served as images by the /plot
// endpoints; the 3D view fetches its payload from /api/scatter3d.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Process Signals Dashboard</title>
<style>
body { font-family: sans-serif; margin: 2rem; max-width: 72rem; }
fieldset { margin-bottom: 1rem; border: 1px solid #ccc; }
label { margin-right: 1rem; }
img { max-width: 100%; border: 1px solid #ddd; margin-top: 1rem; }
.muted { color: #666; }
</style>
</head>
<body>
<h1>Process Signals Dashboard</h1>

<fieldset>
<legend>Upload</legend>
<form method="post" action="/api/upload" enctype="multipart/form-data">
<input type="file" name="file" accept=".xlsx,.csv" required>
<input type="text" name="sheet" placeholder="sheet (optional)">
<button type="submit">Upload</button>
</form>
{{if .Filename}}<p class="muted">Loaded: {{.Filename}} ({{len .Signals}} signals)</p>{{end}}
</fieldset>

{{if .Signals}}
<fieldset>
<legend>Analysis</legend>
<form method="get" action="/">
<label>Signal 1:
<select name="s1">
{{range .Signals}}<option>{{.}}</option>{{end}}
</select>
</label>
<label>Signal 2:
<select name="s2">
{{range .Signals}}<option>{{.}}</option>{{end}}
</select>
</label>
<label>Signal 3:
<select name="s3">
{{range .Signals}}<option>{{.}}</option>{{end}}
</select>
</label>
<label>MA window: <input type="number" name="window" value="{{.DefaultWindow}}" min="1"></label>
<label>Bins: <input type="number" name="bins" value="{{.DefaultBins}}" min="1"></label>
<button type="submit">Render</button>
</form>
<img src="/plot/grid.png" alt="analysis grid">
<img src="/plot/polygon.png" alt="frequency polygon">
</fieldset>
{{else}}
<p class="muted">Upload an .xlsx or .csv file with "Time - X" / "&lt;prefix&gt; - X" column pairs.</p>
{{end}}

</body>
</html>
`
