package api

import "github.com/gofiber/fiber/v2"

// Index serves the minimal browser chat page.
func (h *Handler) Index(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(indexHTML)
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>docassist</title>
<style>
  body { font-family: system-ui, sans-serif; max-width: 760px; margin: 2rem auto; padding: 0 1rem; }
  #messages { border: 1px solid #ddd; border-radius: 8px; padding: 1rem; height: 420px; overflow-y: auto; }
  .message { margin: .5rem 0; padding: .5rem .75rem; border-radius: 8px; white-space: pre-wrap; }
  .user { background: #e8f0fe; }
  .assistant { background: #f5f5f5; }
  form { display: flex; gap: .5rem; margin-top: 1rem; }
  input { flex: 1; padding: .5rem; }
  footer { color: #888; font-size: .85rem; margin-top: 1rem; }
</style>
</head>
<body>
<h1>docassist</h1>
<div id="messages"></div>
<form onsubmit="send(event)">
  <input type="text" id="input" placeholder="Ask about your files, or type 'help'..." autocomplete="off" required>
  <button type="submit">Send</button>
</form>
<footer>Commands: list files · read file: name · search files: term · refresh files</footer>
<script>
async function send(e) {
  e.preventDefault();
  const input = document.getElementById('input');
  const messages = document.getElementById('messages');
  const message = input.value.trim();
  if (!message) return;
  input.value = '';
  add('user', message);
  try {
    const resp = await fetch('/api/chat', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify({message})
    });
    const data = await resp.json();
    add('assistant', data.reply || data.error || 'No response');
  } catch (err) {
    add('assistant', 'Connection error: ' + err);
  }
}
function add(role, text) {
  const messages = document.getElementById('messages');
  const div = document.createElement('div');
  div.className = 'message ' + role;
  div.textContent = text;
  messages.appendChild(div);
  messages.scrollTop = messages.scrollHeight;
}
</script>
</body>
</html>`
