//go:build windows

package wuikit

import (
	"errors"
	"os"
	"runtime"
	"sync"
	"syscall"
	"unsafe"

	"github.com/gonutz/w32"
)

var openWindows windowStack

type windowStack struct {
	windows []*Window
	mu      sync.Mutex
}

func (s *windowStack) top() *Window {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.windows) == 0 {
		return nil
	}
	return s.windows[len(s.windows)-1]
}

func (s *windowStack) push(w *Window) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows = append(s.windows, w)
}

// find returns the window with the given handle. While CreateWindowEx runs,
// the new window has no handle yet but is already on top of the stack.
func (s *windowStack) find(h w32.HWND) *Window {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.windows) - 1; i >= 0; i-- {
		if s.windows[i].handle == h {
			return s.windows[i]
		}
	}
	if n := len(s.windows); n > 0 && s.windows[n-1].handle == 0 {
		return s.windows[n-1]
	}
	return nil
}

func (s *windowStack) pop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.windows) > 0 {
		s.windows = s.windows[:len(s.windows)-1]
	}
}

const windowClassName = "wuikit_window_class"

var (
	registerClassOnce sync.Once
	registerClassErr  error
)

// registerWindowClass registers the one class all windows share. Its window
// procedure forwards messages to the Window owning the handle.
func registerWindowClass() error {
	registerClassOnce.Do(func() {
		class := w32.WNDCLASSEX{
			WndProc: syscall.NewCallback(func(
				window w32.HWND,
				msg uint32,
				wParam, lParam uintptr,
			) uintptr {
				if w := openWindows.find(window); w != nil {
					return w.onMsg(window, msg, wParam, lParam)
				}
				return w32.DefWindowProc(window, msg, wParam, lParam)
			}),
			Cursor:    CursorArrow.handle,
			ClassName: syscall.StringToUTF16Ptr(windowClassName),
		}
		if w32.RegisterClassEx(&class) == 0 {
			registerClassErr = errors.New("wuikit.Window.Show: RegisterClassEx failed")
		}
	})
	return registerClassErr
}

func NewWindow() *Window {
	return &Window{
		x:          w32.CW_USEDEFAULT,
		y:          w32.CW_USEDEFAULT,
		width:      w32.CW_USEDEFAULT,
		height:     w32.CW_USEDEFAULT,
		style:      w32.WS_OVERLAPPEDWINDOW,
		state:      w32.SW_SHOWNORMAL,
		background: ColorButtonFace,
		cursor:     CursorArrow,
	}
}

// NewDialogWindow returns a window with a title bar and a close button that
// cannot be resized, minimized or maximized.
func NewDialogWindow() *Window {
	w := NewWindow()
	w.style = w32.WS_OVERLAPPED | w32.WS_CAPTION | w32.WS_SYSMENU
	return w
}

// Window is a top-level window. Use Show for the main window and ShowModal for
// dialogs on top of it.
type Window struct {
	handle        w32.HWND
	parent        *Window
	title         string
	style         uint
	x             int
	y             int
	width         int
	height        int
	state         int
	background    Color
	brush         w32.HBRUSH
	cursor        *Cursor
	font          *Font
	children      []Control
	controls      []Control
	altF4disabled bool
	onShow        func()
	onClose       func()
	onCanClose    func() bool
	onResize      func()
	onEnter       func()
	onEscape      func()
}

// Control IDs 1 and 2 are IDOK and IDCANCEL, which IsDialogMessage sends for
// the Enter and Escape keys.
const (
	controlIDOffset = 100
	idOK            = 1
	idCancel        = 2
)

func (w *Window) getHandle() w32.HWND {
	return w.handle
}

func (w *Window) getInstance() w32.HINSTANCE {
	return w32.HINSTANCE(w32.GetWindowLong(w.handle, w32.GWL_HINSTANCE))
}

func (w *Window) Title() string { return w.title }

func (w *Window) SetTitle(title string) {
	w.title = title
	if w.handle != 0 {
		w32.SetWindowText(w.handle, title)
	}
}

func (w *Window) Style() uint { return w.style }

func (w *Window) SetStyle(ws uint) {
	w.style = ws
	if w.handle != 0 {
		w32.SetWindowLongPtr(w.handle, w32.GWL_STYLE, uintptr(w.style))
		w32.ShowWindow(w.handle, w.state) // for the new style to take effect
		w.style = uint(w32.GetWindowLongPtr(w.handle, w32.GWL_STYLE))
		w.readBounds()
	}
}

// SetBorderless removes the title bar and the frame. A borderless window can
// only be moved by the application, e.g. with BindDrag.
func (w *Window) SetBorderless(borderless bool) {
	if borderless {
		w.SetStyle(wsPopup)
	} else {
		w.SetStyle(w32.WS_OVERLAPPEDWINDOW)
	}
}

func (w *Window) Borderless() bool {
	return w.style&w32.WS_CAPTION == 0
}

func (w *Window) readBounds() {
	r := w32.GetWindowRect(w.handle)
	w.x = int(r.Left)
	w.y = int(r.Top)
	w.width = int(r.Width())
	w.height = int(r.Height())
}

func (w *Window) applyBounds() {
	if w.handle != 0 {
		w32.SetWindowPos(
			w.handle, 0,
			w.x, w.y, w.width, w.height,
			w32.SWP_NOOWNERZORDER|w32.SWP_NOZORDER,
		)
	}
}

func (w *Window) Pos() (x, y int) {
	if w.handle != 0 {
		w.readBounds()
	}
	return w.x, w.y
}

func (w *Window) SetPos(x, y int) {
	w.x = x
	w.y = y
	w.applyBounds()
}

func (w *Window) Size() (width, height int) {
	if w.handle != 0 {
		w.readBounds()
	}
	return w.width, w.height
}

func (w *Window) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	w.width = width
	w.height = height
	w.applyBounds()
}

func (w *Window) Bounds() (x, y, width, height int) {
	if w.handle != 0 {
		w.readBounds()
	}
	return w.x, w.y, w.width, w.height
}

func (w *Window) SetBounds(x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	w.x, w.y, w.width, w.height = x, y, width, height
	w.applyBounds()
}

func (w *Window) ClientSize() (width, height int) {
	if w.handle == 0 {
		if w.width < 0 {
			width = -w.width
		}
		if w.height < 0 {
			height = -w.height
		}
	} else {
		r := w32.GetClientRect(w.handle)
		width = int(r.Width())
		height = int(r.Height())
	}
	return
}

func (w *Window) SetClientSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if w.handle != 0 {
		var r w32.RECT
		w32.AdjustWindowRect(&r, w.style, false)
		w.width = width + int(r.Width())
		w.height = height + int(r.Height())
		w.applyBounds()
	} else {
		// save negative size for Show to indicate client size
		w.width = -width
		w.height = -height
	}
}

func (w *Window) adjustClientRect() {
	var r w32.RECT
	w32.AdjustWindowRect(&r, w.style, false)
	if w.width < 0 && w.width != w32.CW_USEDEFAULT {
		w.width = -w.width + int(r.Width())
	}
	if w.height < 0 && w.height != w32.CW_USEDEFAULT {
		w.height = -w.height + int(r.Height())
	}
}

func (w *Window) Background() Color {
	return w.background
}

func (w *Window) SetBackground(c Color) {
	w.background = c
	if w.brush != 0 {
		w32.DeleteObject(w32.HGDIOBJ(w.brush))
		w.brush = 0
	}
	if w.handle != 0 {
		w32.InvalidateRect(w.handle, nil, true)
	}
}

func (w *Window) backgroundBrush() w32.HBRUSH {
	if w.brush == 0 {
		w.brush = createSolidBrush(w.background)
	}
	return w.brush
}

// SetCursor sets the cursor shown over the window's client area. Controls
// with their own cursor override it.
func (w *Window) SetCursor(c *Cursor) {
	w.cursor = c
}

func (w *Window) Font() *Font {
	return w.font
}

func (w *Window) SetFont(f *Font) {
	w.font = f
	for _, c := range w.children {
		c.parentFontChanged()
	}
}

func (w *Window) Add(c Control) {
	c.setParent(w)
	w.children = append(w.children, c)
	if w.handle != 0 {
		c.create(w.registerControl(c))
	}
}

// registerControl gives c the next free control ID. All controls in the
// window, including those nested in panels, share one ID space so
// notifications can be routed back to them.
func (w *Window) registerControl(c Control) int {
	w.controls = append(w.controls, c)
	return len(w.controls) - 1 + controlIDOffset
}

func (w *Window) controlByID(id uintptr) Control {
	i := int(id) - controlIDOffset
	if 0 <= i && i < len(w.controls) {
		return w.controls[i]
	}
	return nil
}

func (w *Window) SetOnShow(f func()) {
	w.onShow = f
}

func (w *Window) SetOnClose(f func()) {
	w.onClose = f
}

func (w *Window) SetOnCanClose(f func() bool) {
	w.onCanClose = f
}

func (w *Window) SetOnResize(f func()) {
	w.onResize = f
}

// SetOnEnter is called when Enter is pressed and the focused control does not
// handle it itself.
func (w *Window) SetOnEnter(f func()) {
	w.onEnter = f
}

// SetOnEscape is called when Escape is pressed.
func (w *Window) SetOnEscape(f func()) {
	w.onEscape = f
}

func (w *Window) DisableAltF4() {
	w.altF4disabled = true
}

func (w *Window) Close() {
	if w.handle != 0 {
		w32.SendMessage(w.handle, w32.WM_CLOSE, 0, 0)
	}
}

func (w *Window) Repaint() {
	if w.handle != 0 {
		w32.InvalidateRect(w.handle, nil, true)
	}
}

func (w *Window) Parent() *Window {
	return w.parent
}

func (w *Window) onMsg(window w32.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	switch msg {
	case wmSetCursor:
		if window == w32.HWND(wParam) && loword(lParam) == htClient && w.cursor != nil {
			setCursor(w.cursor.handle)
			return 1
		}
	case wmEraseBkgnd:
		r := w32.GetClientRect(window)
		fillRect(w32.HDC(wParam), r, w.backgroundBrush())
		return 1
	case w32.WM_COMMAND:
		w.onWM_COMMAND(wParam, lParam)
		return 0
	case w32.WM_NOTIFY:
		w.onWM_NOTIFY(wParam, lParam)
		return 0
	case w32.WM_DRAWITEM:
		w.onWM_DRAWITEM(wParam, lParam)
		return 1
	case wmHScroll, wmVScroll:
		w.onScroll(wParam, lParam)
		return 0
	case w32.WM_SYSCOMMAND:
		if w.altF4disabled && wParam == w32.SC_CLOSE && (lParam>>16) <= 0 {
			return 0
		}
	case w32.WM_SIZE:
		if w.onResize != nil {
			w.onResize()
		}
		w32.InvalidateRect(window, nil, true)
		return 0
	case w32.WM_DESTROY:
		w32.PostQuitMessage(0)
		return 0
	case w32.WM_CLOSE:
		if w.onCanClose != nil && !w.onCanClose() {
			return 0
		}
		if w.parent != nil {
			w32.EnableWindow(w.parent.handle, true)
			w32.SetForegroundWindow(w.parent.handle)
		}
		if w.onClose != nil {
			w.onClose()
		}
	}
	return w32.DefWindowProc(window, msg, wParam, lParam)
}

func (w *Window) onWM_COMMAND(wParam, lParam uintptr) {
	id := wParam & 0xFFFF
	cmd := (wParam & 0xFFFF0000) >> 16
	if lParam == 0 {
		switch id {
		case idOK:
			if w.onEnter != nil {
				w.onEnter()
			}
		case idCancel:
			if w.onEscape != nil {
				w.onEscape()
			}
		}
		return
	}
	if h, ok := w.controlByID(id).(commandHandler); ok {
		h.handleNotification(cmd)
	}
}

func (w *Window) onWM_NOTIFY(wParam, lParam uintptr) {
	header := (*w32.NMHDR)(unsafe.Pointer(lParam))
	if h, ok := w.controlByID(wParam).(notifyHandler); ok {
		h.handleNotify(header.Code, lParam)
	}
}

func (w *Window) onWM_DRAWITEM(wParam, lParam uintptr) {
	if d, ok := w.controlByID(wParam).(itemDrawer); ok {
		d.drawItem((*w32.DRAWITEMSTRUCT)(unsafe.Pointer(lParam)))
	}
}

func (w *Window) onScroll(wParam, lParam uintptr) {
	for _, c := range w.controls {
		if s, ok := c.(scrollHandler); ok && s.scrollHandle() == w32.HWND(lParam) {
			s.handleScroll(wParam & 0xFFFF)
			return
		}
	}
}

func (w *Window) createContents() {
	for _, c := range w.children {
		c.create(w.registerControl(c))
	}
}

// Show creates the window and runs its message loop. It returns after the
// window was closed.
func (w *Window) Show() error {
	if w.handle != 0 {
		return errors.New("wuikit.Window.Show: window already visible")
	}
	if openWindows.top() != nil {
		return errors.New("wuikit.Window.Show: another window is already visible")
	}
	openWindows.push(w)
	defer openWindows.pop()

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	hideConsoleWindow()
	setManifest()
	w32.InitCommonControlsEx(&w32.INITCOMMONCONTROLSEX{
		ICC: w32.ICC_UPDOWN_CLASS | iccDateClasses | iccBarClasses | iccProgressClass |
			iccListViewClasses,
	})

	if err := registerWindowClass(); err != nil {
		return err
	}

	w.adjustClientRect()
	window := w32.CreateWindowEx(
		0,
		syscall.StringToUTF16Ptr(windowClassName),
		syscall.StringToUTF16Ptr(w.title),
		w.style,
		w.x, w.y, w.width, w.height,
		0, 0, 0, nil,
	)
	if window == 0 {
		return errors.New("wuikit.Window.Show: CreateWindowEx failed")
	}
	w.handle = window
	defer w.destroyed()

	w.createContents()
	w32.ShowWindow(window, w.state)
	w.readBounds()
	if w.onShow != nil {
		w.onShow()
	}
	w.runMessageLoop()
	return nil
}

// ShowModal shows w on top of the currently visible window and disables
// that one until w is closed. Without a visible window it behaves like Show.
func (w *Window) ShowModal() error {
	if w.handle != 0 {
		return errors.New("wuikit.Window.ShowModal: window already visible")
	}

	w.parent = openWindows.top()
	if w.parent == nil {
		return w.Show()
	}
	openWindows.push(w)
	defer openWindows.pop()

	if w.font == nil {
		w.font = w.parent.font
	}

	w.adjustClientRect()
	window := w32.CreateWindowEx(
		0,
		syscall.StringToUTF16Ptr(windowClassName),
		syscall.StringToUTF16Ptr(w.title),
		w.style,
		w.x, w.y, w.width, w.height,
		w.parent.handle,
		0, 0, nil,
	)
	if window == 0 {
		return errors.New("wuikit.Window.ShowModal: CreateWindowEx failed")
	}
	w.handle = window
	defer w.destroyed()

	w.createContents()
	w32.ShowWindow(w.handle, w32.SW_SHOWNORMAL)
	w32.EnableWindow(w.parent.handle, false)
	w.readBounds()
	if w.onShow != nil {
		w.onShow()
	}
	w.runMessageLoop()
	return nil
}

func (w *Window) runMessageLoop() {
	var msg w32.MSG
	for w32.GetMessage(&msg, 0, 0, 0) != 0 {
		if !w32.IsDialogMessage(w.handle, &msg) {
			w32.TranslateMessage(&msg)
			w32.DispatchMessage(&msg)
		}
	}
}

// destroyed resets the window after its message loop returned so it can be
// shown again.
func (w *Window) destroyed() {
	w.handle = 0
	w.controls = nil
	if w.brush != 0 {
		w32.DeleteObject(w32.HGDIOBJ(w.brush))
		w.brush = 0
	}
}

// hideConsoleWindow hides the console window if this process created it, which
// happens when the program was not built with -ldflags -H=windowsgui.
func hideConsoleWindow() {
	console := w32.GetConsoleWindow()
	if console == 0 {
		return
	}
	_, consoleProcID := w32.GetWindowThreadProcessId(console)
	if w32.GetCurrentProcessId() == consoleProcID {
		w32.ShowWindowAsync(console, w32.SW_HIDE)
	}
}

// setManifest activates version 6 of the common controls, without it buttons
// and edits are drawn in the Windows 95 style.
func setManifest() {
	const manifest = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<assembly xmlns="urn:schemas-microsoft-com:asm.v1" manifestVersion="1.0">
    <dependency>
        <dependentAssembly>
            <assemblyIdentity
				type="win32"
				processorArchitecture="*"
				language="*"
				name="Microsoft.Windows.Common-Controls"
				version="6.0.0.0"
				publicKeyToken="6595b64144ccf1df"
			/>
        </dependentAssembly>
    </dependency>
</assembly>`
	f, err := os.CreateTemp("", "manifest_")
	if err != nil {
		logger.Warn().Err(err).Msg("common controls manifest not activated")
		return
	}
	manifestPath := f.Name()
	defer os.Remove(manifestPath)
	f.WriteString(manifest)
	f.Close()
	ctx := w32.CreateActCtx(&w32.ACTCTX{
		Source: syscall.StringToUTF16Ptr(manifestPath),
	})
	w32.ActivateActCtx(ctx)
}
