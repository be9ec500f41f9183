package web

// The console is a single self-contained page; all rendering happens
// client-side from the websocket frames.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>ruin console</title>
  <style>
    body { font: 14px sans-serif; margin: 2em auto; max-width: 860px; color: #111; }
    h1 { font-size: 20px; }
    form { display: flex; gap: 1em; flex-wrap: wrap; align-items: end; margin-bottom: 1em; }
    label { display: flex; flex-direction: column; font-size: 12px; color: #555; }
    input { width: 7em; padding: 4px; }
    button { padding: 6px 16px; }
    #status { margin: 0.5em 0; color: #555; }
    #status.error { color: #b91c1c; }
    table { border-collapse: collapse; margin: 1em 0; }
    td, th { border: 1px solid #ddd; padding: 4px 12px; text-align: right; }
    th { background: #f5f5f5; }
  </style>
</head>
<body>
  <h1>Gambler's Ruin Cost Estimator</h1>
  <form id="params">
    <label>start (n0) <input name="start" type="number" value="5"></label>
    <label>boundary (N) <input name="boundary" type="number" value="10"></label>
    <label>win prob (p) <input name="winProb" type="number" step="0.01" value="0.5"></label>
    <label>cost/step ($) <input name="stepCost" type="number" step="0.01" value="1"></label>
    <label>trials <input name="trials" type="number" value="10000"></label>
    <button type="submit">Simulate</button>
  </form>
  <div id="status"></div>
  <div id="results"></div>
  <div id="chart"></div>
  <script>
    const money = new Intl.NumberFormat('en-US', { style: 'currency', currency: 'USD' });
    const status = document.getElementById('status');
    const results = document.getElementById('results');
    const chart = document.getElementById('chart');
    const ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '/ws');

    ws.onmessage = (ev) => {
      const msg = JSON.parse(ev.data);
      if (msg.type === 'progress') {
        status.className = '';
        status.textContent = 'Simulating… (' + Math.round(msg.fraction * 100) + '%)';
      } else if (msg.type === 'error') {
        status.className = 'error';
        status.textContent = msg.param ? msg.param + ' ' + msg.message : msg.message;
      } else if (msg.type === 'complete') {
        status.className = '';
        status.textContent = 'Done.';
        renderResults(msg.run);
        chart.innerHTML = msg.svg; // replace any prior chart outright
      }
    };

    function renderResults(run) {
      const s = run.stats;
      const rows = [
        ['Analytic expected cost', money.format(run.analyticCost)],
        ['Empirical mean', money.format(s.mean)],
        ['Std deviation', money.format(s.stdDev)],
        ['Min', money.format(s.min)],
        ['Q1', money.format(s.q1)],
        ['Median', money.format(s.median)],
        ['Q3', money.format(s.q3)],
        ['Max', money.format(s.max)],
      ];
      results.innerHTML = '<table><tr><th>Metric</th><th>Value</th></tr>' +
        rows.map(r => '<tr><td>' + r[0] + '</td><td>' + r[1] + '</td></tr>').join('') +
        '</table>';
    }

    document.getElementById('params').onsubmit = (ev) => {
      ev.preventDefault();
      const f = ev.target;
      status.className = '';
      status.textContent = 'Calculating…';
      ws.send(JSON.stringify({
        start: parseInt(f.start.value, 10),
        boundary: parseInt(f.boundary.value, 10),
        winProb: parseFloat(f.winProb.value),
        stepCost: parseFloat(f.stepCost.value),
        trials: parseInt(f.trials.value, 10),
      }));
    };
  </script>
</body>
</html>
`
