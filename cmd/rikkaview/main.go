package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/rikkatools/rikkaview/internal/backup"
	"github.com/rikkatools/rikkaview/internal/config"
	"github.com/rikkatools/rikkaview/internal/export"
	"github.com/rikkatools/rikkaview/internal/logger"
	"github.com/rikkatools/rikkaview/internal/mcpserver"
	"github.com/rikkatools/rikkaview/internal/model"
	"github.com/rikkatools/rikkaview/internal/query"
)

var defaultOutputs = map[string]string{
	"html":   "rikkahub_chats.html",
	"json":   "rikkahub_chats.json",
	"txt":    "rikkahub_chats.txt",
	"openai": "rikkahub_chats.jsonl",
}

func main() {
	var (
		output          = pflag.StringP("output", "o", "", "输出文件路径")
		format          = pflag.String("export", "", "输出格式: html, json, txt, openai")
		search          = pflag.String("search", "", "搜索消息内容关键词")
		filterAssistant = pflag.String("filter-assistant", "", "按助手名称筛选")
		filterDate      = pflag.StringSlice("filter-date", nil, "按日期范围筛选, 格式 START,END (YYYY-MM-DD)")
		listMode        = pflag.Bool("list", false, "列出所有对话")
		mcpMode         = pflag.Bool("mcp", false, "以 stdio MCP 服务器方式提供备份内容")
		logLevel        = pflag.String("log-level", "", "日志级别: debug, info, warn, error")
	)
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.L.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *logLevel == "" {
		*logLevel = cfg.LogLevel
	}
	logger.SetLevel(*logLevel)

	if pflag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "用法: %s <backup.zip> [flags]\n", os.Args[0])
		pflag.PrintDefaults()
		os.Exit(2)
	}
	zipPath := pflag.Arg(0)

	fmt.Printf("📦 正在解析: %s\n", zipPath)
	archive, err := backup.Parse(zipPath)
	if err != nil {
		logger.L.Error("failed to parse backup", "path", zipPath, "error", err)
		os.Exit(1)
	}
	fmt.Printf("   发现 %d 条对话, %d 条记忆\n", len(archive.Conversations), len(archive.Memories))

	if *filterAssistant != "" {
		archive = query.FilterAssistant(archive, *filterAssistant)
		fmt.Printf("   助手筛选后: %d 条对话\n", len(archive.Conversations))
	}
	if len(*filterDate) > 0 {
		if len(*filterDate) != 2 {
			fmt.Fprintln(os.Stderr, "❌ --filter-date 需要两个日期: START,END")
			os.Exit(2)
		}
		archive, err = query.FilterDate(archive, (*filterDate)[0], (*filterDate)[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "❌ 日期格式错误，应为 YYYY-MM-DD")
			os.Exit(1)
		}
		fmt.Printf("   日期筛选后: %d 条对话\n", len(archive.Conversations))
	}

	switch {
	case *listMode:
		for _, line := range query.List(archive) {
			fmt.Println(line)
		}
	case *search != "":
		printSearch(archive, *search)
	case *mcpMode:
		logger.L.Info("serving archive over stdio MCP", "conversations", len(archive.Conversations))
		if err := mcpserver.Serve(archive); err != nil {
			logger.L.Error("mcp server stopped", "error", err)
			os.Exit(1)
		}
	default:
		if *format == "" {
			*format = cfg.Export.Format
		}
		if *output == "" {
			*output = cfg.Export.Output
		}
		if err := runExport(archive, *format, *output, cfg.HTML.Title); err != nil {
			logger.L.Error("export failed", "format", *format, "error", err)
			os.Exit(1)
		}
	}
}

func runExport(archive *model.Archive, format, output, htmlTitle string) error {
	if output == "" {
		output = defaultOutputs[format]
	}
	if output == "" {
		return fmt.Errorf("unknown export format %q", format)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	switch format {
	case "html":
		err = export.HTML(archive, htmlTitle, f)
	case "json":
		err = export.JSON(archive, f)
	case "txt":
		err = export.Text(archive, f)
	case "openai":
		err = export.OpenAI(archive, f)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	total := 0
	for _, conv := range archive.Conversations {
		total += len(conv.Messages)
	}
	fmt.Printf("✅ 已生成: %s\n", output)
	fmt.Printf("   共 %d 条对话\n", len(archive.Conversations))
	fmt.Printf("   共 %d 条消息\n", total)
	return nil
}

func printSearch(archive *model.Archive, q string) {
	matches := query.Search(archive, q)
	if len(matches) == 0 {
		fmt.Printf("🔍 未找到包含 %q 的消息\n", q)
		return
	}

	roleIcons := map[string]string{"user": "👤", "assistant": "🤖", "system": "⚙️"}
	var lastConv *model.Conversation
	for _, m := range matches {
		if m.Conversation != lastConv {
			badge := ""
			if name := archive.Assistants[m.Conversation.AssistantID]; name != "" {
				badge = fmt.Sprintf(" [%s]", name)
			}
			fmt.Printf("\n📝 %s%s\n   %s\n", m.Conversation.Title, badge, m.Conversation.UpdateAt)
			lastConv = m.Conversation
		}
		icon, ok := roleIcons[strings.ToLower(m.Role)]
		if !ok {
			icon = "❓"
		}
		fmt.Printf("   %s #%d: %s\n", icon, m.MessageIndex+1, m.Context)
	}
	fmt.Printf("\n🔍 共找到 %d 条匹配\n", len(matches))
}
