package server

// indexHTML is a minimal client: one button per intent and a canvas
// with the same [-4, 4] coordinate system as the renderers.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>2D affine transformations</title>
<style>
body { font-family: sans-serif; text-align: center; }
canvas { border: 1px solid #ccc; }
button { width: 8em; }
</style>
</head>
<body>
<div>
<button data-intent="rotate">Rotate</button>
<button data-intent="scale-up">Scale up</button>
<button data-intent="scale-down">Scale down</button>
<button data-intent="reflect">Reflect</button>
<button data-intent="translate">Translate</button>
</div>
<canvas id="plot" width="600" height="500"></canvas>
<div><button data-intent="reset">Original</button></div>
<script>
const canvas = document.getElementById("plot");
const g = canvas.getContext("2d");
const s = Math.min(canvas.width, canvas.height) / 8;
const dev = (x, y) => [canvas.width / 2 + x * s, canvas.height / 2 - y * s];

function axes() {
  g.strokeStyle = "black";
  g.lineWidth = 0.5;
  g.beginPath();
  g.moveTo(...dev(-4, 0)); g.lineTo(...dev(4, 0));
  g.moveTo(...dev(0, -4)); g.lineTo(...dev(0, 4));
  g.stroke();
  g.font = "10px sans-serif";
  g.fillStyle = "black";
  g.fillText("x", ...dev(4.05, 0.1));
  g.fillText("y", ...dev(0.1, 4.05));
}

function draw(vertices) {
  g.clearRect(0, 0, canvas.width, canvas.height);
  axes();
  if (!vertices || vertices.length === 0) return;
  g.beginPath();
  g.moveTo(...dev(...vertices[0]));
  for (const v of vertices.slice(1)) g.lineTo(...dev(...v));
  g.closePath();
  g.globalAlpha = 0.6;
  g.fillStyle = "rgb(31,119,180)";
  g.fill();
  g.globalAlpha = 1;
  g.strokeStyle = "black";
  g.lineWidth = 1;
  g.stroke();
}

const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
ws.onmessage = (ev) => {
  const msg = JSON.parse(ev.data);
  if (msg.error) { console.warn(msg.error); return; }
  draw(msg.vertices);
};
for (const b of document.querySelectorAll("button[data-intent]")) {
  b.onclick = () => ws.send(JSON.stringify({intent: b.dataset.intent}));
}
</script>
</body>
</html>
`
