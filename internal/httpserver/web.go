package httpserver

import (
	"net/http"
)

// handleIndex serves the single interactive page: one trigger button, a
// help block listing the two supported header formats, and three render
// states (idle, success, error) handled client-side.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(indexHTML))
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Workout Helper</title>
<style>
  body { font-family: system-ui, sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; color: #222; }
  h1 { margin-bottom: 0.25rem; }
  .caption { color: #666; margin-top: 0; }
  button { font-size: 1rem; padding: 0.6rem 1.2rem; cursor: pointer; }
  button:disabled { cursor: wait; opacity: 0.6; }
  pre { background: #f5f5f5; padding: 0.5rem; overflow-x: auto; }
  table { border-collapse: collapse; margin-top: 0.5rem; width: 100%; }
  th, td { border: 1px solid #ccc; padding: 0.3rem 0.5rem; text-align: left; font-size: 0.9rem; }
  .ok { color: #1a7f37; }
  .warn { color: #9a6700; }
  .error { color: #cf222e; }
  #result { margin-top: 1.5rem; }
</style>
</head>
<body>
<h1>Workout Helper</h1>
<p class="caption">Log workouts directly in Google Sheets, then click one button here to get tips and the next plan.</p>

<p>Supported sheet formats in row 1:</p>
<pre>date | type | workout | notes | ai_output
or
Week | Date | Day Type | Exercise | Set</pre>

<button id="analyze">Analyze recent workouts and write next plan</button>

<div id="result"></div>

<script>
const button = document.getElementById('analyze');
const result = document.getElementById('result');

button.addEventListener('click', async () => {
  button.disabled = true;
  result.innerHTML = '';
  try {
    const resp = await fetch('/v1/analyze', { method: 'POST' });
    const body = await resp.json();
    if (!resp.ok) {
      renderError(body.error ? body.error.message : 'request failed');
      return;
    }
    if (body.state === 'empty') {
      result.innerHTML = '<p class="warn">No workout rows found yet.</p>';
      return;
    }
    renderSuccess(body);
  } catch (err) {
    renderError(String(err));
  } finally {
    button.disabled = false;
  }
});

function renderError(message) {
  const p = document.createElement('p');
  p.className = 'error';
  p.textContent = message;
  result.appendChild(p);
}

function renderSuccess(body) {
  const saved = document.createElement('p');
  saved.className = 'ok';
  saved.textContent = 'Saved AI output to Google Sheets (' + body.rows_appended + ' rows).';
  result.appendChild(saved);

  if (body.warning) {
    const warn = document.createElement('p');
    warn.className = 'warn';
    warn.textContent = body.warning;
    result.appendChild(warn);
  }

  appendSection('Tips', body.tips);
  if (body.mode === 'summary') {
    appendSection('Next Workout', body.next_workout);
    return;
  }

  const rows = body.workout_plan || [];
  if (rows.length === 0) return;
  const header = document.createElement('h2');
  header.textContent = 'Workout Plan';
  result.appendChild(header);

  const table = document.createElement('table');
  const cols = ['week', 'date', 'day_type', 'exercise', 'set', 'weight_lbs', 'reps', 'notes'];
  const head = table.insertRow();
  for (const c of cols) {
    const th = document.createElement('th');
    th.textContent = c;
    head.appendChild(th);
  }
  for (const row of rows) {
    const tr = table.insertRow();
    for (const c of cols) {
      tr.insertCell().textContent = row[c] || '';
    }
  }
  result.appendChild(table);
}

function appendSection(title, text) {
  if (!text) return;
  const h = document.createElement('h2');
  h.textContent = title;
  result.appendChild(h);
  const p = document.createElement('p');
  p.textContent = text;
  result.appendChild(p);
}
</script>
</body>
</html>
`
