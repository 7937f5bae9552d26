package export

// Inline page assets. The exported file has to work offline as a single
// artifact, so everything ships embedded in the document.

const pageCSS = `* { margin: 0; padding: 0; box-sizing: border-box; }
body { display: flex; height: 100vh; font-family: -apple-system, "Segoe UI", "PingFang SC", "Microsoft YaHei", sans-serif; background: #f5f6f8; color: #24292f; }
.sidebar { width: 320px; min-width: 320px; background: #fff; border-right: 1px solid #e1e4e8; display: flex; flex-direction: column; }
.sidebar-header { padding: 16px; border-bottom: 1px solid #e1e4e8; }
.sidebar-header h2 { font-size: 16px; }
.conv-count { font-size: 12px; color: #6a737d; }
.search-box { margin: 10px; padding: 8px 10px; border: 1px solid #d1d5da; border-radius: 6px; font-size: 13px; }
.conv-list { flex: 1; overflow-y: auto; }
.conv-item { padding: 10px 14px; cursor: pointer; border-bottom: 1px solid #f0f1f3; }
.conv-item:hover { background: #f6f8fa; }
.conv-item.active { background: #e7f0fe; }
.conv-title { font-size: 13px; font-weight: 600; overflow: hidden; text-overflow: ellipsis; white-space: nowrap; }
.conv-meta { font-size: 11px; color: #6a737d; margin-top: 2px; }
.assistant-badge { font-size: 10px; background: #eef2ff; color: #4c5fd5; border-radius: 8px; padding: 1px 6px; }
.main { flex: 1; overflow-y: auto; position: relative; }
.menu-btn { display: none; position: fixed; top: 10px; left: 10px; z-index: 10; }
.welcome { display: flex; align-items: center; justify-content: center; height: 100%; }
.welcome-inner { text-align: center; color: #57606a; }
.welcome-inner h1 { margin-bottom: 12px; }
.hint { margin-top: 16px; font-size: 13px; }
.conv-view { max-width: 860px; margin: 0 auto; padding: 24px 16px 64px; }
.conv-header h2 { font-size: 18px; }
.conv-info { font-size: 12px; color: #6a737d; margin: 6px 0 18px; }
.message { margin-bottom: 18px; border-radius: 10px; padding: 12px 14px; background: #fff; border: 1px solid #e1e4e8; }
.message.user { background: #eef6ff; }
.message.system { background: #fff8e6; }
.msg-header { display: flex; justify-content: space-between; margin-bottom: 8px; }
.role-label { font-weight: 600; font-size: 13px; }
.msg-meta { font-size: 11px; color: #6a737d; }
.msg-body { font-size: 14px; line-height: 1.65; word-break: break-word; }
.msg-body p { margin: 6px 0; }
.msg-body pre { background: #1f2328; color: #e6edf3; padding: 10px 12px; border-radius: 8px; overflow-x: auto; font-size: 12.5px; margin: 8px 0; }
.msg-body code { font-family: ui-monospace, SFMono-Regular, Menlo, monospace; }
.msg-body p code, .msg-body .md-li code, .msg-body td code, .msg-body th code { background: #eff1f3; border-radius: 4px; padding: 1px 5px; font-size: 12.5px; }
.msg-body blockquote { border-left: 3px solid #d0d7de; color: #57606a; padding: 2px 10px; margin: 6px 0; }
.md-li { margin: 3px 0; }
.md-table-wrap { overflow-x: auto; margin: 8px 0; }
.md-table-wrap table { border-collapse: collapse; font-size: 13px; }
.md-table-wrap th, .md-table-wrap td { border: 1px solid #d0d7de; padding: 5px 10px; }
.md-table-wrap th { background: #f6f8fa; }
details { margin: 8px 0; }
details summary { cursor: pointer; font-size: 13px; color: #57606a; }
.reasoning-content, .tool-body { margin-top: 8px; padding: 8px 10px; background: #fafbfc; border: 1px dashed #d0d7de; border-radius: 8px; font-size: 13px; }
.tool-input { white-space: pre-wrap; }
.part-file, .part-image { font-size: 13px; color: #57606a; margin: 6px 0; }
.translation { margin-top: 8px; padding: 8px 10px; background: #f0fff4; border-radius: 8px; font-size: 13px; }
.citations-list { margin-top: 6px; }
.annotation { font-size: 12.5px; margin: 3px 0; }
@media (max-width: 760px) {
  .sidebar { position: fixed; z-index: 5; height: 100%; transform: translateX(-100%); transition: transform .2s; }
  .sidebar.open { transform: translateX(0); }
  .menu-btn { display: block; }
}`

const pageJS = `function showConversation(i) {
  document.getElementById('welcome').style.display = 'none';
  document.querySelectorAll('.conv-view').forEach(function (v) { v.style.display = 'none'; });
  document.getElementById('conv-' + i).style.display = 'block';
  document.querySelectorAll('.conv-item').forEach(function (it) {
    it.classList.toggle('active', it.dataset.index === String(i));
  });
  document.getElementById('sidebar').classList.remove('open');
  document.getElementById('main').scrollTop = 0;
}
function filterConversations() {
  var q = document.getElementById('searchBox').value.toLowerCase();
  document.querySelectorAll('.conv-item').forEach(function (it) {
    var title = (it.dataset.title || '').toLowerCase();
    it.style.display = title.indexOf(q) >= 0 ? '' : 'none';
  });
}
function toggleSidebar() {
  document.getElementById('sidebar').classList.toggle('open');
}`
