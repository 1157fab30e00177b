package palette

import "slices"

// View is the renderable state of a session at one revision.
type View struct {
	Query       string
	Rows        []string
	Selected    int // 1-based; meaningless when Empty
	Description string
	Empty       bool
	Revision    uint64
}

// Renderer draws a View. Hosts call Session.Flush from their own scheduler
// (typically the next event-loop tick) so the latest state is always drawn.
type Renderer interface {
	Render(View)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(View)

// Render calls f(v).
func (f RendererFunc) Render(v View) { f(v) }

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithShowIcons controls whether rows include command icons. Default true.
func WithShowIcons(show bool) SessionOption {
	return func(s *Session) {
		s.showIcons = show
	}
}

// Session is one open palette: query, filtered view and selection cursor.
// It is driven from a single goroutine and is not safe for concurrent use.
type Session struct {
	reg       *Registry
	commands  []Command
	query     string
	filtered  []Command
	selected  int
	catWidth  int
	showIcons bool

	revision  uint64
	dirty     bool
	listeners []func()
	closed    bool
}

// Open starts a session over a snapshot of reg and marks reg open.
//
// It fails with ErrSetupMissing before reg.Configure, ErrNoCommandsConfigured
// when the list is empty, and ErrAlreadyOpen while another session holds reg.
func Open(reg *Registry, opts ...SessionOption) (*Session, error) {
	snapshot, err := reg.acquire()
	if err != nil {
		return nil, err
	}
	s := NewSession(snapshot, opts...)
	s.reg = reg
	return s, nil
}

// NewSession starts a session over cmds without a registry. An empty cmds is
// allowed and yields the "no matches" display state.
func NewSession(cmds []Command, opts ...SessionOption) *Session {
	cmds = slices.Clone(cmds)
	s := &Session{
		commands:  cmds,
		filtered:  cmds,
		selected:  1,
		catWidth:  MaxCategoryWidth(cmds),
		showIcons: true,
		dirty:     true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Query returns the current query.
func (s *Session) Query() string { return s.query }

// Selected returns the 1-based selection index.
func (s *Session) Selected() int { return s.selected }

// Len returns the number of filtered commands.
func (s *Session) Len() int { return len(s.filtered) }

// Closed reports whether the session has ended.
func (s *Session) Closed() bool { return s.closed }

// Revision increases on every visible change.
func (s *Session) Revision() uint64 { return s.revision }

// Dirty reports whether state changed since the last Flush.
func (s *Session) Dirty() bool { return s.dirty }

// Filtered returns a copy of the filtered commands.
func (s *Session) Filtered() []Command {
	out := make([]Command, len(s.filtered))
	copy(out, s.filtered)
	return out
}

// OnChange registers fn to be called after every visible change. Listeners
// must not draw inline; they should schedule a Flush.
func (s *Session) OnChange(fn func()) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

// SetQuery refilters the snapshot and clamps the selection into the new
// range. A selection past the end moves to the last row instead of resetting.
func (s *Session) SetQuery(query string) {
	if s.closed {
		return
	}
	s.query = query
	s.filtered = FilterCommands(s.commands, query)
	s.selected = clamp(s.selected, 1, max(1, len(s.filtered)))
	s.changed()
}

// Move shifts the selection by delta with wraparound in both directions.
// It is a no-op when nothing matches.
func (s *Session) Move(delta int) {
	n := len(s.filtered)
	if s.closed || n == 0 {
		return
	}
	s.selected = mod(s.selected-1+delta, n) + 1
	s.changed()
}

// Next moves the selection down one row.
func (s *Session) Next() { s.Move(1) }

// Prev moves the selection up one row.
func (s *Session) Prev() { s.Move(-1) }

// Current returns the selected command, or false when nothing matches.
func (s *Session) Current() (Command, bool) {
	if len(s.filtered) == 0 {
		return Command{}, false
	}
	return s.filtered[s.selected-1], true
}

// ExecuteSelected returns the selected command and closes the session. When
// nothing matches it returns false and the session stays open.
func (s *Session) ExecuteSelected() (Command, bool) {
	if s.closed {
		return Command{}, false
	}
	cmd, ok := s.Current()
	if !ok {
		return Command{}, false
	}
	s.Close()
	return cmd, true
}

// Close ends the session and clears the registry open flag. Idempotent.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.reg != nil {
		s.reg.release()
	}
	s.changed()
}

// Rows returns the formatted rows of the filtered view, or a single
// NoMatchesText row when it is empty.
func (s *Session) Rows() []string {
	if len(s.filtered) == 0 {
		return []string{NoMatchesText}
	}
	rows := make([]string, len(s.filtered))
	for i, c := range s.filtered {
		rows[i] = FormatRow(c, i+1 == s.selected, s.catWidth, s.showIcons)
	}
	return rows
}

// Description returns the selected command's description or NoDescriptionText.
func (s *Session) Description() string {
	cmd, ok := s.Current()
	if !ok || cmd.Description == "" {
		return NoDescriptionText
	}
	return cmd.Description
}

// View returns the current renderable state.
func (s *Session) View() View {
	return View{
		Query:       s.query,
		Rows:        s.Rows(),
		Selected:    s.selected,
		Description: s.Description(),
		Empty:       len(s.filtered) == 0,
		Revision:    s.revision,
	}
}

// Flush renders the latest View through r if anything changed since the last
// flush, and reports whether it rendered.
func (s *Session) Flush(r Renderer) bool {
	if !s.dirty || r == nil {
		return false
	}
	s.dirty = false
	r.Render(s.View())
	return true
}

func (s *Session) changed() {
	s.revision++
	s.dirty = true
	for _, fn := range s.listeners {
		fn()
	}
}

// mod is the mathematical modulo: the result is in [0, n) for any a.
func mod(a, n int) int {
	return ((a % n) + n) % n
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
