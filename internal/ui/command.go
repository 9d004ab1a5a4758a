package ui

import (
	"strconv"
	"strings"
)

// Command is one parsed input line.
type Command struct {
	Name string
	Arg  string
}

// Command names. A line that does not start with ':' is a lookup.
const (
	CmdLookup    = "lookup"
	CmdHistory   = "history"
	CmdOpen      = "open"
	CmdDelete    = "delete"
	CmdFlashback = "flashback"
	CmdClear     = "clear"
	CmdSpeak     = "speak"
	CmdLogin     = "login"
	CmdSignup    = "signup"
	CmdConfirm   = "confirm"
	CmdLogout    = "logout"
	CmdName      = "name"
	CmdSkip      = "skip"
	CmdWhoami    = "whoami"
	CmdHelp      = "help"
	CmdQuit      = "quit"
)

var aliases = map[string]string{
	"h": CmdHistory,
	"o": CmdOpen,
	"d": CmdDelete,
	"f": CmdFlashback,
	"s": CmdSpeak,
	"q": CmdQuit,
	"?": CmdHelp,
}

// ParseCommand splits a line into a command. Blank lines yield ok=false.
func ParseCommand(line string) (Command, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, false
	}
	if !strings.HasPrefix(line, ":") {
		return Command{Name: CmdLookup, Arg: line}, true
	}

	name, arg, _ := strings.Cut(line[1:], " ")
	name = strings.ToLower(name)
	if full, ok := aliases[name]; ok {
		name = full
	}
	return Command{Name: name, Arg: strings.TrimSpace(arg)}, true
}

// Index parses a 1-based list position into a 0-based index.
func (c Command) Index() (int, bool) {
	n, err := strconv.Atoi(c.Arg)
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}

const helpText = `输入单词或短语即可查询。
  :history (:h)        查看历史
  :open N (:o)         打开第 N 条历史
  :delete N (:d)       删除第 N 条历史
  :flashback (:f)      查看回顾单词
  :speak (:s)          朗读当前单词
  :clear               清空结果
  :login [邮箱]        登录
  :signup [邮箱]       注册
  :confirm <令牌>      确认邮箱
  :logout              退出登录
  :name <昵称>         设置昵称
  :skip                跳过昵称设置
  :whoami              当前账户
  :quit (:q)           退出
`
