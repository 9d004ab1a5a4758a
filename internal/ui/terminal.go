package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/heartmarshall/viovio/internal/session"
)

type accountManager interface {
	Snapshot() session.Snapshot
	SignIn(ctx context.Context, email, password string) (session.Snapshot, error)
	SignUp(ctx context.Context, email, password string) (session.Snapshot, error)
	Confirm(ctx context.Context, token string) (session.Snapshot, error)
	SignOut(ctx context.Context) session.Snapshot
	SaveDisplayName(ctx context.Context, name string) (session.Snapshot, error)
	DismissOnboarding() session.Snapshot
}

// Speaker plays a speech plan.
type Speaker interface {
	Speak(ctx context.Context, plan SpeechPlan) error
}

// TextSpeaker prints what would be played.
type TextSpeaker struct {
	W io.Writer
}

func (s TextSpeaker) Speak(_ context.Context, plan SpeechPlan) error {
	if plan.AudioURL != "" {
		_, err := fmt.Fprintf(s.W, "♪ %s\n", plan.AudioURL)
		return err
	}
	_, err := fmt.Fprintf(s.W, "♪ [%s] %s\n", plan.Lang, plan.Text)
	return err
}

// Terminal is the line-oriented front end of the client.
type Terminal struct {
	ctrl    *Controller
	store   *Store
	account accountManager
	speaker Speaker
	render  Renderer
	log     *slog.Logger

	in  *bufio.Scanner
	out io.Writer

	mu         sync.Mutex
	wasLoading bool
}

// NewTerminal wires a terminal to in and out. Colors are used when out is
// a terminal.
func NewTerminal(ctrl *Controller, store *Store, account accountManager, in io.Reader, out io.Writer, logger *slog.Logger) *Terminal {
	color := false
	if f, ok := out.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Terminal{
		ctrl:    ctrl,
		store:   store,
		account: account,
		speaker: TextSpeaker{W: out},
		render:  Renderer{Color: color},
		log:     logger.With("component", "terminal"),
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// WithSpeaker replaces the default text speaker.
func (t *Terminal) WithSpeaker(s Speaker) *Terminal {
	t.speaker = s
	return t
}

// Run reads commands until :quit, end of input or ctx is done. Lookups
// still in flight are abandoned on :quit and awaited otherwise.
func (t *Terminal) Run(ctx context.Context) error {
	t.store.Subscribe(t.onState)
	t.ctrl.Start(ctx)
	t.show()

	for {
		if ctx.Err() != nil {
			break
		}
		t.printf("> ")
		if !t.in.Scan() {
			break
		}
		cmd, ok := ParseCommand(t.in.Text())
		if !ok {
			continue
		}
		if cmd.Name == CmdQuit {
			t.ctrl.Clear()
			break
		}
		t.dispatch(ctx, cmd)
	}

	// Piped input ends with EOF; let its last lookup finish.
	t.ctrl.Wait()
	return t.in.Err()
}

// onState redraws when a lookup settles.
func (t *Terminal) onState(st State) {
	t.mu.Lock()
	settled := t.wasLoading && !st.Loading
	t.wasLoading = st.Loading
	t.mu.Unlock()

	if settled && (st.Result != nil || st.Err != "") {
		t.mu.Lock()
		t.render.Render(t.out, st)
		t.mu.Unlock()
	}
}

func (t *Terminal) dispatch(ctx context.Context, cmd Command) {
	switch cmd.Name {
	case CmdLookup:
		t.ctrl.Submit(ctx, cmd.Arg)
	case CmdHistory:
		t.ctrl.RefreshHistory(ctx)
		st := t.store.State()
		if !st.Session.Authenticated() {
			t.show()
			return
		}
		t.mu.Lock()
		t.render.RenderHistory(t.out, st.History)
		t.mu.Unlock()
	case CmdOpen:
		i, ok := cmd.Index()
		if !ok || !t.ctrl.OpenHistory(i) {
			t.printf("没有这条记录。\n")
			return
		}
		t.show()
	case CmdDelete:
		i, ok := cmd.Index()
		if !ok {
			t.printf("用法：:delete N\n")
			return
		}
		if err := t.ctrl.DeleteHistory(ctx, i); err != nil {
			t.printf("删除失败：%s\n", err)
			return
		}
		t.printf("已删除。\n")
	case CmdFlashback:
		if !t.ctrl.OpenFlashback() {
			t.printf("暂时没有可回顾的单词。\n")
			return
		}
		t.show()
	case CmdClear:
		t.ctrl.Clear()
		t.show()
	case CmdSpeak:
		plan, ok := t.ctrl.Speech()
		if !ok {
			t.printf("先查一个单词吧。\n")
			return
		}
		if err := t.speaker.Speak(ctx, plan); err != nil {
			t.log.WarnContext(ctx, "speak", slog.String("error", err.Error()))
		}
	case CmdLogin, CmdSignup:
		t.authenticate(ctx, cmd)
	case CmdConfirm:
		if cmd.Arg == "" {
			t.printf("用法：:confirm <令牌>\n")
			return
		}
		if _, err := t.account.Confirm(ctx, cmd.Arg); err != nil {
			t.printf("%s\n", session.MessageFor(err))
			return
		}
		t.show()
	case CmdLogout:
		t.account.SignOut(ctx)
		t.printf("已退出登录。\n")
		t.show()
	case CmdName:
		if cmd.Arg == "" {
			t.printf("用法：:name <昵称>\n")
			return
		}
		if _, err := t.account.SaveDisplayName(ctx, cmd.Arg); err != nil {
			t.printf("保存失败：%s\n", session.MessageFor(err))
			return
		}
		t.whoami()
	case CmdSkip:
		t.account.DismissOnboarding()
	case CmdWhoami:
		t.whoami()
	case CmdHelp:
		t.printf("%s", helpText)
	default:
		t.printf("未知命令 :%s，输入 :help 查看帮助。\n", cmd.Name)
	}
}

func (t *Terminal) authenticate(ctx context.Context, cmd Command) {
	email := cmd.Arg
	if email == "" {
		var ok bool
		if email, ok = t.ask("邮箱："); !ok {
			return
		}
	}
	password, ok := t.ask("密码：")
	if !ok {
		return
	}

	var err error
	if cmd.Name == CmdSignup {
		_, err = t.account.SignUp(ctx, email, password)
	} else {
		_, err = t.account.SignIn(ctx, email, password)
	}
	if err != nil {
		t.printf("%s\n", session.MessageFor(err))
		return
	}
	if t.account.Snapshot().Authenticated() {
		t.whoami()
	}
	t.show()
}

func (t *Terminal) whoami() {
	snap := t.account.Snapshot()
	if !snap.Authenticated() || snap.Identity == nil {
		t.printf("未登录。\n")
		return
	}
	t.printf("已登录：%s\n", snap.Identity.Label())
}

// ask prompts for one line. ok is false on end of input.
func (t *Terminal) ask(label string) (string, bool) {
	t.printf("%s", label)
	if !t.in.Scan() {
		return "", false
	}
	s := strings.TrimSpace(t.in.Text())
	return s, s != ""
}

func (t *Terminal) show() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.render.Render(t.out, t.store.State())
}

func (t *Terminal) printf(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := fmt.Fprintf(t.out, format, args...); err != nil && !errors.Is(err, io.ErrClosedPipe) {
		t.log.Debug("write", slog.String("error", err.Error()))
	}
}
